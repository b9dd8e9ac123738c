// Package core provides fundamental types and utilities for the arcade toolkit.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep simulation code pure and testable.
package core

// Rect represents an axis-aligned rectangle in world units.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter builds a rectangle around a centre point from half extents.
func RectFromCenter(center, half Vec2) Rect {
	return Rect{
		X: center.X - half.X,
		Y: center.Y - half.Y,
		W: half.X * 2,
		H: half.Y * 2,
	}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Circle is a hitbox given by a centre and radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// Intersects reports whether two circles overlap (strictly closer than the sum of radii).
func (c Circle) Intersects(other Circle) bool {
	d := c.Center.Sub(other.Center)
	r := c.Radius + other.Radius
	return d.Dot(d) < r*r
}

// Clamp restricts an integer to be within [min, max].
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
