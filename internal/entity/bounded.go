package entity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// Bounded is a positioned rectangle optionally clamped to a boundary.
// Position is the centre; the rectangle is derived from it and the fixed
// half extents after every update.
type Bounded struct {
	id       int
	position core.Vec2
	half     core.Vec2
	radius   float64
	boundary *Boundary
	rect     core.Rect
}

// NewBounded creates an entity of the given size centred on pos. A nil
// boundary disables clamping.
func NewBounded(id int, pos, size core.Vec2, boundary *Boundary) (*Bounded, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("entity: negative size %v", size)
	}
	if boundary != nil {
		if err := boundary.Validate(); err != nil {
			return nil, err
		}
		b := *boundary
		boundary = &b
	}

	e := &Bounded{
		id:       id,
		position: pos,
		half:     size.Scale(0.5),
		boundary: boundary,
	}
	e.rect = core.RectFromCenter(e.position, e.half)
	return e, nil
}

// ID returns the entity id.
func (e *Bounded) ID() int { return e.id }

// Position returns the centre position.
func (e *Bounded) Position() core.Vec2 { return e.position }

// HalfExtents returns half the entity size.
func (e *Bounded) HalfExtents() core.Vec2 { return e.half }

// Boundary returns the configured boundary, if any.
func (e *Bounded) Boundary() (Boundary, bool) {
	if e.boundary == nil {
		return Boundary{}, false
	}
	return *e.boundary, true
}

// Rect returns the bounding rectangle.
func (e *Bounded) Rect() core.Rect { return e.rect }

// SetRadius overrides the hitbox radius. Zero restores the enclosing circle.
func (e *Bounded) SetRadius(r float64) { e.radius = math.Max(0, r) }

// Circle returns the circular hitbox: the explicit radius if set, otherwise
// the circle enclosing the rectangle.
func (e *Bounded) Circle() core.Circle {
	r := e.radius
	if r == 0 {
		r = e.half.Magnitude()
	}
	return core.Circle{Center: e.position, Radius: r}
}

// UpdatePosition moves the entity to newPos (when non-nil) and clamps it to
// the boundary. Each axis is checked independently; the axis callback runs
// before the clamp so it can react to the crossing.
func (e *Bounded) UpdatePosition(newPos *core.Vec2, onXBound, onYBound func()) {
	if newPos != nil {
		e.position = *newPos
	}

	if b := e.boundary; b != nil {
		e.position.X = clampAxis(e.position.X, b.XMin+e.half.X, b.XMax-e.half.X, onXBound)
		e.position.Y = clampAxis(e.position.Y, b.YMin+e.half.Y, b.YMax-e.half.Y, onYBound)
	}

	e.rect = core.RectFromCenter(e.position, e.half)
}

func clampAxis(v, lo, hi float64, onBound func()) float64 {
	switch {
	case v > hi:
		if onBound != nil {
			onBound()
		}
		return hi
	case v < lo:
		if onBound != nil {
			onBound()
		}
		return lo
	}
	return v
}
