package desktop

import (
	"fmt"
	"sort"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// State is the desktop session state
type State struct {
	OpenApps    []string                 // spawn order
	Windows     map[string]*types.Window // keyed by app id
	ActiveAppID string                   // empty when nothing is focused
	ZIndex      Sequence
	Spawn       Sequence
	Viewport    types.Size
}

// NewState returns an empty desktop for a container of the given size
func NewState(viewport types.Size) *State {
	return &State{
		OpenApps: []string{},
		Windows:  make(map[string]*types.Window),
		ZIndex:   NewSequence(1),
		Spawn:    NewSequence(0),
		Viewport: viewport,
	}
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	c := *s
	c.OpenApps = append([]string(nil), s.OpenApps...)
	c.Windows = make(map[string]*types.Window, len(s.Windows))
	for id, w := range s.Windows {
		wc := *w
		c.Windows[id] = &wc
	}
	return &c
}

// IsOpen reports whether appID has a window
func (s *State) IsOpen(appID string) bool {
	_, ok := s.Windows[appID]
	return ok
}

// Window returns a copy of the window of appID
func (s *State) Window(appID string) (types.Window, bool) {
	w, ok := s.Windows[appID]
	if !ok {
		return types.Window{}, false
	}
	return *w, true
}

// Visible returns non-minimized app ids back-to-front
func (s *State) Visible() []string {
	visible := make([]string, 0, len(s.OpenApps))
	for _, id := range s.OpenApps {
		if !s.Windows[id].Minimized {
			visible = append(visible, id)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return s.Windows[visible[i]].ZIndex < s.Windows[visible[j]].ZIndex
	})
	return visible
}

// AnyFullscreen reports whether a visible window is fullscreen
func (s *State) AnyFullscreen() bool {
	for _, w := range s.Windows {
		if w.Fullscreen && !w.Minimized {
			return true
		}
	}
	return false
}

// Stats returns window counts
func (s *State) Stats() types.Stats {
	stats := types.Stats{OpenWindows: len(s.OpenApps)}
	for _, w := range s.Windows {
		if w.Minimized {
			stats.MinimizedWindows++
		}
	}
	stats.FullscreenActive = s.AnyFullscreen()
	if s.ActiveAppID != "" {
		id := s.ActiveAppID
		stats.ActiveAppID = &id
	}
	return stats
}

// topVisible returns the open, non-minimized app with the highest z-index
func (s *State) topVisible() string {
	var (
		top  string
		maxZ int64 = -1
	)
	for _, id := range s.OpenApps {
		w := s.Windows[id]
		if w.Minimized {
			continue
		}
		if w.ZIndex > maxZ {
			maxZ = w.ZIndex
			top = id
		}
	}
	return top
}

// CheckInvariants verifies the structural invariants of the state
func (s *State) CheckInvariants() error {
	if len(s.OpenApps) != len(s.Windows) {
		return fmt.Errorf("open apps (%d) and windows (%d) differ", len(s.OpenApps), len(s.Windows))
	}

	seen := make(map[string]bool, len(s.OpenApps))
	zs := make(map[int64]string, len(s.OpenApps))
	fullscreen := 0
	for _, id := range s.OpenApps {
		if seen[id] {
			return fmt.Errorf("app %s opened twice", id)
		}
		seen[id] = true

		w, ok := s.Windows[id]
		if !ok {
			return fmt.Errorf("app %s has no window", id)
		}
		if w.Size.Width < MinWidth || w.Size.Height < MinHeight {
			return fmt.Errorf("app %s below minimum size: %vx%v", id, w.Size.Width, w.Size.Height)
		}
		if w.ZIndex >= s.ZIndex.Peek() {
			return fmt.Errorf("app %s z-index %d not allocated", id, w.ZIndex)
		}
		if w.Fullscreen {
			fullscreen++
		}
		if w.Minimized {
			continue
		}
		if other, dup := zs[w.ZIndex]; dup {
			return fmt.Errorf("apps %s and %s share z-index %d", other, id, w.ZIndex)
		}
		zs[w.ZIndex] = id
	}

	if fullscreen > 1 {
		return fmt.Errorf("%d fullscreen windows", fullscreen)
	}

	if s.ActiveAppID != "" {
		w, ok := s.Windows[s.ActiveAppID]
		if !ok {
			return fmt.Errorf("active app %s is not open", s.ActiveAppID)
		}
		if w.Minimized {
			return fmt.Errorf("active app %s is minimized", s.ActiveAppID)
		}
	}
	return nil
}
