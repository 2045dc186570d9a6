// Package types provides shared data structures for the desktop service.
//
// This package defines the value types exchanged between the domain
// packages and the API layer, so that handlers and controllers agree on one
// wire shape.
//
// Core Types:
//   - Descriptor: Immutable catalogue entry for an application
//   - Window: Mutable runtime record of one open application
//   - Snapshot: Render model of a desktop session
//   - MediaAsset: Entry shown by the media preview overlay
//   - Effect: Side effect requested by a lifecycle transition
//
// Geometry:
//   - Point, Size, Rect: Layout units in desktop container space
//
// Example Usage:
//
//	desc := types.Descriptor{
//	    ID:          "projects",
//	    Name:        "Projects",
//	    DefaultSize: types.Size{Width: 800, Height: 600},
//	    Kind:        types.KindProjects,
//	}
package types
