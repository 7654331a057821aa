// Package core provides fundamental types and utilities for the flapper game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer axis-aligned box in screen cells. Used for drawing.
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

// FRect is an axis-aligned bounding box in world units.
// The simulation runs on fractional positions, so collision volumes are
// kept in float64 and only converted to cells when drawing.
type FRect struct {
	X, Y float64
	W, H float64
}

// NewFRect creates a new world-space rectangle.
func NewFRect(x, y, w, h float64) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if the two boxes overlap with positive area.
// Boxes that only share an edge do not intersect.
func (r FRect) Intersects(other FRect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
