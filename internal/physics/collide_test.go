package physics

import (
	"testing"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

func TestResolveConservesMomentum(t *testing.T) {
	tests := []struct {
		name   string
		m1, m2 float64
		v1, v2 core.Vec2
	}{
		{"head on", 1, 3, core.V(4, 0), core.V(-2, 0)},
		{"oblique", 2.5, 0.5, core.V(1, 2), core.V(-3, 0.5)},
		{"one at rest", 10, 1, core.V(0, 0), core.V(0, -7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustBody(t, tt.m1, WithVelocity(tt.v1))
			b := mustBody(t, tt.m2, WithVelocity(tt.v2))
			before := a.Momentum().Add(b.Momentum())

			Resolve(a, b)

			after := a.Momentum().Add(b.Momentum())
			if !after.ApproxEqual(before, 1e-9) {
				t.Errorf("momentum after = %v, expected %v", after, before)
			}
		})
	}
}

func TestResolveEqualMassesSwap(t *testing.T) {
	v1, v2 := core.V(3, -1), core.V(-2, 5)
	a := mustBody(t, 4, WithVelocity(v1))
	b := mustBody(t, 4, WithVelocity(v2))

	Resolve(a, b)

	if !a.Velocity().ApproxEqual(v2, 1e-12) {
		t.Errorf("a.Velocity() = %v, expected %v", a.Velocity(), v2)
	}
	if !b.Velocity().ApproxEqual(v1, 1e-12) {
		t.Errorf("b.Velocity() = %v, expected %v", b.Velocity(), v1)
	}
}

func TestOnCollideUsesSnapshot(t *testing.T) {
	// Mutating b before a consumes its snapshot must not change a's result.
	a := mustBody(t, 1, WithVelocity(core.V(1, 0)))
	b := mustBody(t, 1, WithVelocity(core.V(-1, 0)))

	sa, sb := a.Snapshot(), b.Snapshot()
	b.OnCollide(sa)
	a.OnCollide(sb)

	if a.Velocity() != core.V(-1, 0) || b.Velocity() != core.V(1, 0) {
		t.Errorf("velocities = %v, %v, expected swapped", a.Velocity(), b.Velocity())
	}
}

func TestOnCollideScalesByElasticity(t *testing.T) {
	a := mustBody(t, 1, WithVelocity(core.V(2, 0)), WithElasticity(0.5))
	b := mustBody(t, 1, WithVelocity(core.V(-4, 0)))

	Resolve(a, b)

	if got := a.Velocity(); !got.ApproxEqual(core.V(-2, 0), 1e-12) {
		t.Errorf("a.Velocity() = %v, expected (-2, 0)", got)
	}
	if got := b.Velocity(); !got.ApproxEqual(core.V(2, 0), 1e-12) {
		t.Errorf("b.Velocity() = %v, expected (2, 0)", got)
	}
}
