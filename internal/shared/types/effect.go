package types

// Op names a lifecycle operation
type Op string

const (
	OpOpen             Op = "open"
	OpFocus            Op = "focus"
	OpClose            Op = "close"
	OpMinimize         Op = "minimize"
	OpToggleFullscreen Op = "toggle_fullscreen"
	OpDrag             Op = "drag"
	OpResize           Op = "resize"
	OpViewport         Op = "viewport"
	OpReset            Op = "reset"

	// Non-window actions
	OpToggleTheme Op = "toggle_theme"
	OpSpotlight   Op = "spotlight"
	OpPreview     Op = "preview"
	OpMenu        Op = "menu"
	OpTerminal    Op = "terminal"
)

// EffectKind names a side effect requested by a transition
type EffectKind string

const (
	EffectNone     EffectKind = ""
	EffectRedirect EffectKind = "redirect"
)

// Effect is a side effect the caller must perform; transitions never perform I/O
type Effect struct {
	Kind EffectKind `json:"kind,omitempty"`
	URL  string     `json:"url,omitempty"`
}

// Notice levels
const (
	NoticeInfo = "info"
	NoticeWarn = "warn"
)

// Notice is a user-facing message produced by menus, the terminal or spotlight
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Info returns an info notice
func Info(msg string) Notice {
	return Notice{Level: NoticeInfo, Message: msg}
}

// Warn returns a warning notice
func Warn(msg string) Notice {
	return Notice{Level: NoticeWarn, Message: msg}
}

// Outcome reports what a dispatched operation did
type Outcome struct {
	Op      Op       `json:"op"`
	AppID   string   `json:"app_id,omitempty"`
	Changed bool     `json:"changed"`
	Effect  Effect   `json:"effect,omitempty"`
	Notices []Notice `json:"notices,omitempty"`
}
