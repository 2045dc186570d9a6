package desktop

import (
	"math"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// Result describes what a transition did
type Result struct {
	Changed bool
	Effect  types.Effect
}

// Transitions never mutate prev. A no-op returns prev itself.

// Open spawns a window for d, or focuses it when already open. External
// apps only produce a redirect effect.
func Open(prev *State, d types.Descriptor) (*State, Result) {
	if d.IsExternal() {
		return prev, Result{Effect: types.Effect{Kind: types.EffectRedirect, URL: d.ExternalURL}}
	}
	if prev.IsOpen(d.ID) {
		return BringToFront(prev, d.ID)
	}

	next := prev.Clone()
	size := d.InitialSize()
	size.Width = math.Max(size.Width, MinWidth)
	size.Height = math.Max(size.Height, MinHeight)

	next.OpenApps = append(next.OpenApps, d.ID)
	next.Windows[d.ID] = &types.Window{
		AppID:    d.ID,
		Position: SpawnPosition(next.Spawn.Next(), size, next.Viewport),
		Size:     size,
	}
	bringToFront(next, d.ID)

	return next, Result{Changed: true}
}

// BringToFront focuses appID, gives it the next z-index and restores it if minimized
func BringToFront(prev *State, appID string) (*State, Result) {
	if !prev.IsOpen(appID) {
		return prev, Result{}
	}
	next := prev.Clone()
	bringToFront(next, appID)
	return next, Result{Changed: true}
}

func bringToFront(s *State, appID string) {
	w := s.Windows[appID]
	s.ActiveAppID = appID
	w.ZIndex = s.ZIndex.Next()
	w.Minimized = false
}

// Close destroys the window of appID and refocuses when it was active
func Close(prev *State, appID string) (*State, Result) {
	if !prev.IsOpen(appID) {
		return prev, Result{}
	}

	next := prev.Clone()
	delete(next.Windows, appID)
	for i, id := range next.OpenApps {
		if id == appID {
			next.OpenApps = append(next.OpenApps[:i], next.OpenApps[i+1:]...)
			break
		}
	}
	if next.ActiveAppID == appID {
		next.ActiveAppID = next.topVisible()
	}

	return next, Result{Changed: true}
}

// Minimize hides appID. A fullscreen window leaves fullscreen first.
func Minimize(prev *State, appID string) (*State, Result) {
	w, ok := prev.Windows[appID]
	if !ok || w.Minimized {
		return prev, Result{}
	}

	next := prev.Clone()
	nw := next.Windows[appID]
	nw.Minimized = true
	nw.Fullscreen = false
	if next.ActiveAppID == appID {
		next.ActiveAppID = next.topVisible()
	}

	return next, Result{Changed: true}
}

// ToggleFullscreen flips fullscreen on appID. Entering focuses the window and
// takes fullscreen away from any other window. Minimized windows are ignored.
func ToggleFullscreen(prev *State, appID string) (*State, Result) {
	w, ok := prev.Windows[appID]
	if !ok || w.Minimized {
		return prev, Result{}
	}

	next := prev.Clone()
	if w.Fullscreen {
		next.Windows[appID].Fullscreen = false
		return next, Result{Changed: true}
	}

	bringToFront(next, appID)
	for id, other := range next.Windows {
		other.Fullscreen = id == appID
	}
	return next, Result{Changed: true}
}

// Drag moves appID by delta, clamped to the viewport
func Drag(prev *State, appID string, delta types.Point) (*State, Result) {
	w, ok := prev.Windows[appID]
	if !ok || w.Fullscreen || w.Minimized || belowThreshold(delta) {
		return prev, Result{}
	}

	pos := ClampPosition(w.Position.Add(delta), w.Size, prev.Viewport)
	if pos == w.Position {
		return prev, Result{}
	}

	next := prev.Clone()
	next.Windows[appID].Position = pos
	return next, Result{Changed: true}
}

// Resize grows or shrinks appID by delta. A resize the container cannot fit
// above the floor is rejected and the size is kept.
func Resize(prev *State, appID string, delta types.Size) (*State, Result) {
	w, ok := prev.Windows[appID]
	if !ok || w.Fullscreen || w.Minimized {
		return prev, Result{}
	}

	target := types.Size{Width: w.Size.Width + delta.Width, Height: w.Size.Height + delta.Height}
	size, ok := ClampSize(target, w.Position, prev.Viewport)
	if !ok || size == w.Size {
		return prev, Result{}
	}

	next := prev.Clone()
	next.Windows[appID].Size = size
	return next, Result{Changed: true}
}

// SetViewport records the container size. Windows keep their geometry and
// are clamped on their next drag or resize.
func SetViewport(prev *State, viewport types.Size) (*State, Result) {
	if viewport.Width <= 0 || viewport.Height <= 0 || viewport == prev.Viewport {
		return prev, Result{}
	}
	next := prev.Clone()
	next.Viewport = viewport
	return next, Result{Changed: true}
}

// Reset returns an empty desktop with the same viewport. The z-order and
// spawn sequences carry over so they never go backwards within a session.
func Reset(prev *State) (*State, Result) {
	next := NewState(prev.Viewport)
	next.ZIndex = prev.ZIndex
	next.Spawn = prev.Spawn
	return next, Result{Changed: true}
}
