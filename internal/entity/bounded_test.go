package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/physics"
)

func field(t *testing.T) *Boundary {
	t.Helper()
	b, err := NewBoundary(0, 0, 200, 100)
	if err != nil {
		t.Fatalf("NewBoundary() error = %v", err)
	}
	return &b
}

func TestNewBoundaryRejectsInverted(t *testing.T) {
	tests := []struct {
		name                   string
		xMin, yMin, xMax, yMax float64
	}{
		{"x inverted", 10, 0, 5, 10},
		{"y inverted", 0, 10, 10, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoundary(tt.xMin, tt.yMin, tt.xMax, tt.yMax)
			if !errors.Is(err, ErrInvalidBoundary) {
				t.Errorf("NewBoundary() error = %v, expected %v", err, ErrInvalidBoundary)
			}
		})
	}
}

func TestNewBoundedRejectsInvalidBoundary(t *testing.T) {
	bad := &Boundary{XMin: 5, XMax: 1}
	if _, err := NewBounded(1, core.V(0, 0), core.V(2, 2), bad); !errors.Is(err, ErrInvalidBoundary) {
		t.Errorf("NewBounded() error = %v, expected %v", err, ErrInvalidBoundary)
	}
}

func TestUpdatePositionClampsMaxAndFiresOnce(t *testing.T) {
	b := field(t)
	e, err := NewBounded(1, core.V(50, 50), core.V(20, 10), b)
	if err != nil {
		t.Fatal(err)
	}

	xCalls, yCalls := 0, 0
	pos := core.V(b.XMax+100, 50)
	e.UpdatePosition(&pos, func() { xCalls++ }, func() { yCalls++ })

	if got, want := e.Position().X, b.XMax-10; got != want {
		t.Errorf("Position().X = %v, expected %v", got, want)
	}
	if xCalls != 1 {
		t.Errorf("x callback calls = %d, expected 1", xCalls)
	}
	if yCalls != 0 {
		t.Errorf("y callback calls = %d, expected 0", yCalls)
	}
}

func TestUpdatePositionClampsMin(t *testing.T) {
	e, _ := NewBounded(1, core.V(50, 50), core.V(20, 10), field(t))

	yCalls := 0
	pos := core.V(-30, -30)
	e.UpdatePosition(&pos, nil, func() { yCalls++ })

	if e.Position() != core.V(10, 5) {
		t.Errorf("Position() = %v, expected (10, 5)", e.Position())
	}
	if yCalls != 1 {
		t.Errorf("y callback calls = %d, expected 1", yCalls)
	}
	if r := e.Rect(); r != core.NewRect(0, 0, 20, 10) {
		t.Errorf("Rect() = %+v, expected {0 0 20 10}", r)
	}
}

func TestUpdatePositionCallbackBeforeClamp(t *testing.T) {
	e, _ := NewBounded(1, core.V(50, 50), core.V(10, 10), field(t))

	var seen core.Vec2
	pos := core.V(500, 50)
	e.UpdatePosition(&pos, func() { seen = e.Position() }, nil)

	if seen.X != 500 {
		t.Errorf("position inside callback = %v, expected unclamped x 500", seen)
	}
}

func TestUpdatePositionWithoutBoundary(t *testing.T) {
	e, _ := NewBounded(2, core.V(0, 0), core.V(4, 4), nil)

	pos := core.V(-1000, 1000)
	e.UpdatePosition(&pos, func() { t.Error("unexpected x callback") }, nil)

	if e.Position() != pos {
		t.Errorf("Position() = %v, expected %v", e.Position(), pos)
	}
	if got := e.Rect().Center(); got != pos {
		t.Errorf("Rect().Center() = %v, expected %v", got, pos)
	}
}

func TestUpdatePositionNilKeepsPosition(t *testing.T) {
	e, _ := NewBounded(1, core.V(500, 50), core.V(10, 10), field(t))
	e.UpdatePosition(nil, nil, nil)
	if e.Position() != core.V(195, 50) {
		t.Errorf("Position() = %v, expected (195, 50)", e.Position())
	}
}

func TestCircleHitbox(t *testing.T) {
	e, _ := NewBounded(1, core.V(0, 0), core.V(6, 8), nil)
	if got := e.Circle().Radius; got != 5 {
		t.Errorf("Circle().Radius = %v, expected 5", got)
	}
	e.SetRadius(2)
	if got := e.Circle().Radius; got != 2 {
		t.Errorf("Circle().Radius = %v, expected 2", got)
	}
}

func TestOverlap(t *testing.T) {
	a, _ := NewBounded(1, core.V(0, 0), core.V(10, 10), nil)
	b, _ := NewBounded(2, core.V(9, 0), core.V(10, 10), nil)
	c, _ := NewBounded(3, core.V(30, 0), core.V(10, 10), nil)

	if !RectsOverlap(a, b) || !CirclesOverlap(a, b) {
		t.Error("a and b should overlap")
	}
	if RectsOverlap(a, c) || CirclesOverlap(a, c) {
		t.Error("a and c should not overlap")
	}
}

func TestPhysicalSyncWritesClampBack(t *testing.T) {
	body, err := physics.NewBody(1, physics.WithVelocity(core.V(100, 0)))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewBounded(1, core.V(190, 50), core.V(10, 10), field(t))
	p := NewPhysical(b, body)

	body.Move(1)
	p.Sync(func() { p.Body().SetVelocity(StopX(p.Body().Velocity())) }, nil)

	if p.Body().Velocity().X != 0 {
		t.Error("x callback did not stop the body")
	}
	if got := body.Position(); got != core.V(195, 50) {
		t.Errorf("body Position() = %v, expected (195, 50)", got)
	}
	if got := p.Position(); got != body.Position() {
		t.Errorf("entity Position() = %v, expected %v", got, body.Position())
	}
}
