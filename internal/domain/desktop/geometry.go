package desktop

import (
	"math"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

// Layout constants in container units
const (
	MenuBarHeight = 28
	DockHeight    = 80

	SpawnOriginX = 60
	SpawnOriginY = MenuBarHeight + 30
	SpawnStep    = 30
	SpawnMinX    = 20
	SpawnMinY    = MenuBarHeight + 10
	spawnPadding = 40

	// Margin keeps dragged and resized windows off the container edge
	Margin = 10

	MinWidth  = 300
	MinHeight = 200

	// DragThreshold filters pointer jitter
	DragThreshold = 0.1
)

// SpawnPosition computes the cascading position of the n-th spawned window
func SpawnPosition(n int64, size, viewport types.Size) types.Point {
	availableHeight := viewport.Height - MenuBarHeight - DockHeight
	safeWidth := math.Max(viewport.Width-size.Width-spawnPadding, 1)
	safeHeight := math.Max(availableHeight-size.Height-spawnPadding, 1)

	offset := float64(n * SpawnStep)
	x := SpawnOriginX + math.Mod(offset, safeWidth)
	y := SpawnOriginY + math.Mod(offset, safeHeight)

	return types.Point{
		X: math.Max(SpawnMinX, x),
		Y: math.Max(SpawnMinY, y),
	}
}

// ClampPosition keeps a window of the given size inside the viewport,
// per axis. A window larger than the viewport is pinned to the margin.
func ClampPosition(p types.Point, size, viewport types.Size) types.Point {
	return types.Point{
		X: clamp(p.X, Margin, viewport.Width-Margin-size.Width),
		Y: clamp(p.Y, Margin, viewport.Height-Margin-size.Height),
	}
}

// ClampSize applies the resize floor and the container ceiling. It reports
// false when the ceiling leaves no room for the floor.
func ClampSize(s types.Size, pos types.Point, viewport types.Size) (types.Size, bool) {
	w := math.Max(MinWidth, s.Width)
	h := math.Max(MinHeight, s.Height)

	w = math.Min(w, viewport.Width-pos.X-Margin)
	h = math.Min(h, viewport.Height-pos.Y-Margin)

	if w < MinWidth || h < MinHeight {
		return s, false
	}
	return types.Size{Width: w, Height: h}, true
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func belowThreshold(delta types.Point) bool {
	return math.Abs(delta.X) < DragThreshold && math.Abs(delta.Y) < DragThreshold
}
