// Package ws serves the desktop over a WebSocket.
//
// Every connection gets its own desktop session, created before the upgrade
// and closed when the socket goes away. Frames are applied in the order they
// are read, so the read loop is the only writer of its session.
//
// Message Types (Client → Server):
//   - open, focus, close, minimize, fullscreen: window lifecycle by app_id
//   - drag, resize: dx/dy deltas for app_id
//   - viewport, reset: desktop geometry
//   - dock_click, dock_hover, dock_unhover
//   - menu_toggle, menu_item, menus_close
//   - key: keyboard shortcut
//   - spotlight_open, spotlight_query, spotlight_activate, spotlight_close
//   - preview_open, preview_next, preview_prev, preview_close
//   - terminal, theme_toggle, ping
//
// Message Types (Server → Client):
//   - hello: desktop id and initial state
//   - state: snapshot after every applied frame
//   - redirect: external URL to open
//   - notice: menu notices and terminal output
//   - error: rejected frame
//   - pong
//
// Example Usage:
//
//	handler := ws.NewHandler(sessions, logger, metrics, tracer)
//	router.GET("/stream", handler.HandleConnection)
package ws
