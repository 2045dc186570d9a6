// Package main is the entry point for the AadiOS desktop service.
//
// The service hosts simulated macOS-style desktops for a portfolio site.
// Each browser gets its own desktop session over REST or the /stream
// WebSocket; the appearance and scratchpad preferences are shared.
//
// Configuration:
//   - Environment variables, optionally loaded from a .env file
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server --port 8000 --db /var/lib/aadios/prefs.db
//
//	# Development mode (console logs)
//	./server --dev --log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
