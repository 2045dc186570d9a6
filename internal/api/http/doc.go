// Package http provides the REST handlers for the desktop service.
//
// Every desktop route is scoped by the session id in the path. Window
// operations answer with the outcome and the resulting snapshot, and an
// unknown app id is a no-op (changed=false) rather than an error.
//
// Example Usage:
//
//	handlers := http.NewHandlers(sessions, registry, prefs, metrics, logger)
//	handlers.Register(router)
package http
