// Package entity holds positioned, rectangle-bounded game objects and the
// clamp that keeps them inside a play-field.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// ErrInvalidBoundary is returned when a boundary minimum exceeds its maximum.
var ErrInvalidBoundary = errors.New("entity: invalid boundary")

// Boundary is an axis-aligned play-field rectangle given by its extremes.
type Boundary struct {
	XMax, XMin float64
	YMax, YMin float64
}

// NewBoundary builds a validated boundary.
func NewBoundary(xMin, yMin, xMax, yMax float64) (Boundary, error) {
	b := Boundary{XMax: xMax, XMin: xMin, YMax: yMax, YMin: yMin}
	if err := b.Validate(); err != nil {
		return Boundary{}, err
	}
	return b, nil
}

// BoundaryFromRect converts a rectangle into a boundary.
func BoundaryFromRect(r core.Rect) (Boundary, error) {
	return NewBoundary(r.X, r.Y, r.Right(), r.Bottom())
}

// Validate reports ErrInvalidBoundary if min > max on either axis.
func (b Boundary) Validate() error {
	if b.XMin > b.XMax {
		return fmt.Errorf("%w: x min %v > max %v", ErrInvalidBoundary, b.XMin, b.XMax)
	}
	if b.YMin > b.YMax {
		return fmt.Errorf("%w: y min %v > max %v", ErrInvalidBoundary, b.YMin, b.YMax)
	}
	return nil
}

// Width returns XMax - XMin.
func (b Boundary) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b Boundary) Height() float64 { return b.YMax - b.YMin }

// Rect returns the boundary as a rectangle.
func (b Boundary) Rect() core.Rect {
	return core.NewRect(b.XMin, b.YMin, b.Width(), b.Height())
}
