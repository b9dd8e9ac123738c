package entity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

func TestVelocityPolicies(t *testing.T) {
	v := core.V(2, -4)
	tests := []struct {
		name string
		got  core.Vec2
		want core.Vec2
	}{
		{"BounceX", BounceX(v, 1), core.V(-2, -4)},
		{"BounceY", BounceY(v, 0.5), core.V(1, 2)},
		{"StopX", StopX(v), core.V(0, -4)},
		{"StopY", StopY(v), core.V(2, 0)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %v, expected %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want core.Vec2
	}{
		{core.V(105, 50), core.V(0, 50)},
		{core.V(-1, 50), core.V(100, 50)},
		{core.V(50, 50), core.V(50, 50)},
	}
	for _, tt := range tests {
		if got := WrapX(tt.in, 0, 100); got != tt.want {
			t.Errorf("WrapX(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
	if got := WrapY(core.V(3, 120), 10, 110); got != core.V(3, 10) {
		t.Errorf("WrapY() = %v, expected (3, 10)", got)
	}
}

func TestRandomVector(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := RandomVector(rng, 50, true)
		if v.X < 0 || v.Y < 0 || v.X >= 50 || v.Y >= 50 {
			t.Fatalf("RandomVector(nonNegative) = %v out of range", v)
		}
	}

	negative := false
	for i := 0; i < 100; i++ {
		v := RandomVector(rng, 1, false)
		if v.X < 0 || v.Y < 0 {
			negative = true
		}
		if v.X <= -1 || v.X >= 1 {
			t.Fatalf("RandomVector() = %v out of range", v)
		}
	}
	if !negative {
		t.Error("RandomVector() never produced a negative component")
	}
}

func TestRandomVectorDeterministic(t *testing.T) {
	a := RandomVector(rand.New(rand.NewSource(1)), 10, false)
	b := RandomVector(rand.New(rand.NewSource(1)), 10, false)
	if a != b {
		t.Errorf("RandomVector() with same seed = %v and %v", a, b)
	}
}
