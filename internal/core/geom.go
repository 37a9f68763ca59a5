// Package core provides the cell-based drawing surface, geometry and input
// primitives shared by the quiz screens and the terminal platform. It has no
// external dependencies (especially no Bubble Tea) so screens stay testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Grow returns the rectangle expanded by dx columns on each side and dy rows
// above and below. Negative values shrink it; size never drops below zero.
func (r Rect) Grow(dx, dy int) Rect {
	g := Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
	if g.W < 0 {
		g.W = 0
	}
	if g.H < 0 {
		g.H = 0
	}
	return g
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Approach moves current toward target by the given fraction of the gap.
// Used for eased animations (progress bar, button scale).
func Approach(current, target, rate float64) float64 {
	return current + (target-current)*rate
}
