// Package core provides fundamental types for the runner simulation: world
// geometry, the fixed-step clock and the screen buffer the presentation layer
// draws into. It has no external dependencies (especially no Bubble Tea) so
// game logic stays pure and testable.
package core

// RectF is an axis-aligned bounding box in world distance-units.
// X/Y is the bottom-left corner; Y grows upward from the ground.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 {
	return r.Y + r.H
}

// Intersects reports whether this rectangle overlaps another.
// Edge-touching rectangles do not count as overlapping.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// ClampF restricts a float64 value to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
