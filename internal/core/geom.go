// Package core provides fundamental types shared by the game and the platform layer.
// It has no external dependencies so that game logic stays pure and testable.
package core

// Size is the width and height of an area in playfield pixels.
type Size struct {
	W, H float64
}

// Empty reports whether the size has no usable area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Span is a closed-open interval [Start, End) along one axis.
type Span struct {
	Start, End float64
}

// SpanOf builds a span from an offset and a length.
func SpanOf(offset, length float64) Span {
	return Span{Start: offset, End: offset + length}
}

// Overlaps reports whether the two spans share a region of nonzero length.
// Touching spans do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.End > other.Start && s.Start < other.End
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// ClampF restricts val to [min, max]. When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
