package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

const eps = 1e-9

func mustBody(t *testing.T, mass float64, opts ...Option) *Body {
	t.Helper()
	b, err := NewBody(mass, opts...)
	if err != nil {
		t.Fatalf("NewBody(%v) error = %v", mass, err)
	}
	return b
}

func TestNewBodyRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		mass float64
		opts []Option
		want error
	}{
		{"zero mass", 0, nil, ErrInvalidMass},
		{"negative mass", -1, nil, ErrInvalidMass},
		{"nan mass", math.NaN(), nil, ErrInvalidMass},
		{"negative friction", 1, []Option{WithFriction(-0.1)}, ErrInvalidFriction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(tt.mass, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewBody() error = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestNewBodyDefaults(t *testing.T) {
	b := mustBody(t, 2)
	if b.Elasticity() != 1 {
		t.Errorf("Elasticity() = %v, expected 1", b.Elasticity())
	}
	if !b.Velocity().IsZero() || !b.Position().IsZero() {
		t.Errorf("new body not at rest: %v", b)
	}
	if b.NormalForce() != 2*Gravity {
		t.Errorf("NormalForce() = %v, expected %v", b.NormalForce(), 2*Gravity)
	}
}

func TestBodiesDoNotShareDefaults(t *testing.T) {
	a := mustBody(t, 1)
	b := mustBody(t, 1)
	a.SetVelocity(core.V(5, 5))
	if !b.Velocity().IsZero() {
		t.Errorf("second body velocity = %v, expected zero", b.Velocity())
	}
}

func TestForceWithoutFrictionAlwaysMoves(t *testing.T) {
	forces := []core.Vec2{core.V(1e-6, 0), core.V(0, -3), core.V(100, 100)}
	for _, f := range forces {
		b := mustBody(t, 10)
		got := b.Force(f, 0.5)
		want := f.Scale(0.5)
		if !got.ApproxEqual(want, eps) {
			t.Errorf("Force(%v) = %v, expected %v", f, got, want)
		}
		if !b.Position().ApproxEqual(want.Scale(0.5), eps) {
			t.Errorf("Position() = %v, expected %v", b.Position(), want.Scale(0.5))
		}
	}
}

func TestForceBelowThresholdHolds(t *testing.T) {
	// threshold = 1 * 9.8 * 0.5 = 4.9
	b := mustBody(t, 1,
		WithFriction(0.5),
		WithPosition(core.V(3, 4)),
		WithVelocity(core.V(0.25, 0)),
	)

	got := b.Force(core.V(4.8, 0), 1)
	if got != core.V(0.25, 0) {
		t.Errorf("Force() velocity = %v, expected unchanged", got)
	}
	if b.Position() != core.V(3, 4) {
		t.Errorf("Position() = %v, expected unchanged", b.Position())
	}
	if b.Slipping() {
		t.Error("Slipping() = true, expected false")
	}
}

func TestForceBreaksFreeAndDerivesKinetic(t *testing.T) {
	b := mustBody(t, 1, WithFriction(0.5), WithSlip(0.5), WithSource(FixedSource(-0.1)))

	v := b.Force(core.V(5, 0), 1)
	if !v.ApproxEqual(core.V(5, 0), eps) {
		t.Errorf("Force() = %v, expected (5, 0)", v)
	}
	if !b.Slipping() {
		t.Fatal("Slipping() = false after break-free")
	}
	// 0.5 * (0.5 - 0.1)
	if math.Abs(b.KineticFriction()-0.2) > eps {
		t.Errorf("KineticFriction() = %v, expected 0.2", b.KineticFriction())
	}

	// kinetic threshold = 9.8 * 0.2 = 1.96; 2.0 passes, 1.9 holds.
	v = b.Force(core.V(2, 0), 1)
	if !v.ApproxEqual(core.V(7, 0), eps) {
		t.Errorf("Force() above kinetic = %v, expected (7, 0)", v)
	}
	v = b.Force(core.V(1.9, 0), 1)
	if !v.ApproxEqual(core.V(7, 0), eps) {
		t.Errorf("Force() below kinetic = %v, expected (7, 0)", v)
	}
}

func TestKineticFrictionDrawnOnce(t *testing.T) {
	src := &countingSource{value: 0}
	b := mustBody(t, 1, WithFriction(0.1), WithSource(src))

	for i := 0; i < 5; i++ {
		b.Force(core.V(10, 0), 1)
	}
	if src.calls != 1 {
		t.Errorf("NormFloat64 calls = %d, expected 1", src.calls)
	}

	b.ResetFriction()
	if b.Slipping() || b.KineticFriction() != 0 {
		t.Errorf("ResetFriction() left slipping=%v kinetic=%v", b.Slipping(), b.KineticFriction())
	}
	b.Force(core.V(10, 0), 1)
	if src.calls != 2 {
		t.Errorf("NormFloat64 calls after reset = %d, expected 2", src.calls)
	}
}

func TestKineticFrictionClampedNonNegative(t *testing.T) {
	b := mustBody(t, 1, WithFriction(0.3), WithSource(FixedSource(-5)))
	b.Force(core.V(10, 0), 1)
	if b.KineticFriction() != 0 {
		t.Errorf("KineticFriction() = %v, expected 0", b.KineticFriction())
	}
}

func TestForceDeterministicWithSeed(t *testing.T) {
	run := func() core.Vec2 {
		b := mustBody(t, 2, WithFriction(0.2), WithSource(NewSource(42)))
		for i := 0; i < 30; i++ {
			b.Force(core.V(float64(i%7), float64(i%3)), 1)
		}
		return b.Position()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("seeded runs diverged: %v vs %v", a, b)
	}
}

func TestMove(t *testing.T) {
	b := mustBody(t, 1, WithPosition(core.V(1, 1)), WithVelocity(core.V(2, -4)))
	got := b.Move(0.5)
	if got != core.V(2, -1) {
		t.Errorf("Move() = %v, expected (2, -1)", got)
	}
}

func TestMomentum(t *testing.T) {
	b := mustBody(t, 3, WithVelocity(core.V(1, -2)))
	if got := b.Momentum(); got != core.V(3, -6) {
		t.Errorf("Momentum() = %v, expected (3, -6)", got)
	}
}

type countingSource struct {
	value float64
	calls int
}

func (c *countingSource) NormFloat64() float64 {
	c.calls++
	return c.value
}
