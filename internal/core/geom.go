// Package core provides fundamental types and utilities for the game platform.
// It has no Bubble Tea dependency so that simulation code stays pure and testable.
package core

// Rect is an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap (touching edges do not count).
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Scale maps v from a logical axis of length from onto a cell axis of length to.
// Results are floored toward negative infinity so off-screen values stay off-screen.
func Scale(v float64, from, to int) int {
	if from <= 0 {
		return 0
	}
	f := v * float64(to) / float64(from)
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

// ScaleLen maps a logical length onto cells, never returning less than one cell.
func ScaleLen(n, from, to int) int {
	if from <= 0 {
		return 1
	}
	cells := n * to / from
	if cells < 1 {
		return 1
	}
	return cells
}
