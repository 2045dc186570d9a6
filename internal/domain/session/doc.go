// Package session manages desktop sessions.
//
// A session is one Workspace: the window controller of a client together
// with its dock, menu bar, keyboard shortcuts, Spotlight, media preview and
// terminal. Sessions live in memory only and are gone after a restart.
// The theme and scratchpad are shared preferences, not session state.
//
// Components:
//   - Workspace: wires the shell and overlays to one window controller
//   - Manager: creates, looks up and closes sessions, bounded by MaxSessions
//
// Example Usage:
//
//	manager := session.NewManager(reg, prefs, session.Config{Viewport: vp, DefaultApp: "projects"})
//	ws, err := manager.Create()
//	ws.Dock.Click("contact")
//	view := ws.View()
package session
