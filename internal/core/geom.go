// Package core provides fundamental types and utilities for the frogger platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned bounding box in canvas pixels.
// Game entities move by fractional amounts, so positions are real-valued.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a new real-valued rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles overlap.
// Comparisons are strict: rectangles that only share an edge do not overlap.
func (r RectF) Overlaps(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// OverlapWidth returns how far two rectangles overlap horizontally (0 if they don't).
func (r RectF) OverlapWidth(other RectF) float64 {
	left := MaxF(r.X, other.X)
	right := MinF(r.Right(), other.Right())
	if right <= left {
		return 0
	}
	return right - left
}

// Within reports whether r lies entirely inside [0, w] x [0, h].
func (r RectF) Within(w, h float64) bool {
	return r.X >= 0 && r.Right() <= w && r.Y >= 0 && r.Bottom() <= h
}

// Translate returns r moved by (dx, dy).
func (r RectF) Translate(dx, dy float64) RectF {
	r.X += dx
	r.Y += dy
	return r
}

// MinF returns the smaller of two float64 values.
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxF returns the larger of two float64 values.
func MaxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
