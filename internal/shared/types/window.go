package types

import "time"

// Phase is the derived lifecycle state of an application window
type Phase string

const (
	PhaseClosed     Phase = "closed"
	PhaseNormal     Phase = "normal"
	PhaseMinimized  Phase = "minimized"
	PhaseFullscreen Phase = "fullscreen"
)

// Window is the mutable runtime record of one open application
type Window struct {
	AppID      string `json:"app_id"`
	Position   Point  `json:"position"`
	Size       Size   `json:"size"`
	ZIndex     int64  `json:"z_index"`
	Minimized  bool   `json:"minimized"`
	Fullscreen bool   `json:"fullscreen"`
}

// Phase derives the lifecycle state from the window flags
func (w *Window) Phase() Phase {
	switch {
	case w == nil:
		return PhaseClosed
	case w.Minimized:
		return PhaseMinimized
	case w.Fullscreen:
		return PhaseFullscreen
	default:
		return PhaseNormal
	}
}

// Frame returns the stored geometry
func (w *Window) Frame() Rect {
	return Rect{Point: w.Position, Size: w.Size}
}

// WindowView is one window as seen by a renderer
type WindowView struct {
	AppID  string      `json:"app_id"`
	Title  string      `json:"title"`
	Kind   ContentKind `json:"content_kind"`
	Phase  Phase       `json:"phase"`
	Active bool        `json:"active"`
	ZIndex int64       `json:"z_index"`

	// Frame is the stored geometry. Effective is what gets painted, which
	// differs from Frame only while fullscreen.
	Frame     Rect `json:"frame"`
	Effective Rect `json:"effective"`

	Content RenderProps `json:"content"`
}

// Snapshot is the render model of a desktop session
type Snapshot struct {
	OpenApps      []string     `json:"open_apps"`
	ActiveAppID   *string      `json:"active_app_id"`
	Windows       []WindowView `json:"windows"` // spawn order
	Visible       []string     `json:"visible"` // back-to-front z-order, minimized excluded
	AnyFullscreen bool         `json:"any_fullscreen"`
	Viewport      Size         `json:"viewport"`
	NextZIndex    int64        `json:"next_z_index"`
	SpawnCount    int64        `json:"spawn_count"`
	DarkMode      bool         `json:"dark_mode"`
	Time          time.Time    `json:"time"`
}

// Window returns the view for appID, if open
func (s Snapshot) Window(appID string) (WindowView, bool) {
	for _, w := range s.Windows {
		if w.AppID == appID {
			return w, true
		}
	}
	return WindowView{}, false
}

// Stats contains desktop statistics
type Stats struct {
	OpenWindows      int     `json:"open_windows"`
	MinimizedWindows int     `json:"minimized_windows"`
	FullscreenActive bool    `json:"fullscreen_active"`
	ActiveAppID      *string `json:"active_app_id,omitempty"`
}
