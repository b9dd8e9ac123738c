package entity

import "github.com/vovakirdan/arcade-physics/internal/core"

// Shape exposes the read-only hitboxes used by overlap tests.
type Shape interface {
	Circle() core.Circle
	Rect() core.Rect
}

// CirclesOverlap reports whether the circular hitboxes intersect.
func CirclesOverlap(a, b Shape) bool {
	return a.Circle().Intersects(b.Circle())
}

// RectsOverlap reports whether the bounding rectangles intersect.
func RectsOverlap(a, b Shape) bool {
	return a.Rect().Intersects(b.Rect())
}
