// Package preferences persists the two values that survive a reload: the
// dark mode flag and the Notes scratchpad.
//
// Values are read once when the Service is built and written through on
// every change, last write wins. A failing store never fails a caller: the
// error is logged and the in-memory value stays authoritative.
//
// Storage backends:
//   - SQLiteStore: table kv(key TEXT PRIMARY KEY, value TEXT)
//   - MemoryStore: process-local map, used in tests and as fallback
package preferences
