// Package registry provides the application catalogue of the desktop.
//
// The registry maps an application id to its immutable descriptor: display
// metadata, default window size, content kind and an optional external URL.
// It is built once at startup and never mutated afterwards.
//
// Components:
//   - Registry: read-only lookup, listing and dock layout
//   - Seeder: loads extra catalogue files (YAML/TOML) from disk on startup
//
// Example Usage:
//
//	seeder := registry.NewSeeder(cfg.Desktop.CatalogDir, log)
//	descriptors, err := seeder.Seed()
//	reg, err := registry.New(append(registry.Builtin(), descriptors...)...)
//	desc, ok := reg.Resolve("projects")
package registry
