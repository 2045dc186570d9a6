package desktop

import "github.com/aadishiv23/aadios/internal/shared/types"

// snapshot builds the render model. Caller holds mu.
func (c *Controller) snapshot(s *State) types.Snapshot {
	dark := c.darkMode()

	snap := types.Snapshot{
		OpenApps:      append([]string(nil), s.OpenApps...),
		Windows:       make([]types.WindowView, 0, len(s.OpenApps)),
		Visible:       s.Visible(),
		AnyFullscreen: s.AnyFullscreen(),
		Viewport:      s.Viewport,
		NextZIndex:    s.ZIndex.Peek(),
		SpawnCount:    s.Spawn.Peek(),
		DarkMode:      dark,
		Time:          c.now(),
	}
	if s.ActiveAppID != "" {
		active := s.ActiveAppID
		snap.ActiveAppID = &active
	}

	for _, id := range s.OpenApps {
		w := s.Windows[id]
		view := types.WindowView{
			AppID:     id,
			Title:     id,
			Phase:     w.Phase(),
			Active:    id == s.ActiveAppID,
			ZIndex:    w.ZIndex,
			Frame:     w.Frame(),
			Effective: w.Frame(),
			Content:   types.RenderProps{DarkMode: dark},
		}
		if d, ok := c.registry.Resolve(id); ok {
			view.Title = d.Name
			view.Kind = d.Kind
			view.Content.Kind = d.Kind
			view.Content.Props = d.Props
		}
		if w.Phase() == types.PhaseFullscreen {
			view.Effective = types.Rect{Size: s.Viewport}
		}
		snap.Windows = append(snap.Windows, view)
	}

	return snap
}
