package types

// Point is a top-left position in desktop container coordinates
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Size is a width/height pair in layout units
type Size struct {
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
}

// IsZero reports whether both dimensions are unset
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Rect is a positioned size
type Rect struct {
	Point
	Size
}

// Contains checks if a point is within the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}
