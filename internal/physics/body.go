// Package physics implements a minimal point-mass body: force integration
// gated by Coulomb-style static/kinetic friction, explicit position
// integration and a 1-D elastic collision response applied per component.
//
// It is not a rigid-body engine: there is no rotation, no constraint solver
// and no continuous collision detection.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-physics/internal/core"
)

// Gravity scales mass into the normal force used for friction thresholds.
const Gravity = 9.8

var (
	// ErrInvalidMass is returned when a body is created with mass <= 0.
	ErrInvalidMass = errors.New("physics: mass must be positive")
	// ErrInvalidFriction is returned for a negative static friction coefficient.
	ErrInvalidFriction = errors.New("physics: friction must be non-negative")
)

// Body is a point mass with velocity, position, friction and elasticity.
// A body has exactly one owner and is mutated once per tick by it.
type Body struct {
	mass       float64
	velocity   core.Vec2
	position   core.Vec2
	elasticity float64

	staticFriction  float64
	kineticFriction float64
	slip            float64
	slipping        bool // kinetic friction has been derived and engaged

	rng NormalSource
}

// Option configures a Body at construction.
type Option func(*Body)

// WithPosition sets the initial position.
func WithPosition(p core.Vec2) Option {
	return func(b *Body) { b.position = p }
}

// WithVelocity sets the initial velocity.
func WithVelocity(v core.Vec2) Option {
	return func(b *Body) { b.velocity = v }
}

// WithFriction sets the static friction coefficient.
func WithFriction(static float64) Option {
	return func(b *Body) { b.staticFriction = static }
}

// WithElasticity sets the fraction of velocity kept after a collision.
func WithElasticity(e float64) Option {
	return func(b *Body) { b.elasticity = e }
}

// WithSlip sets the mean of the kinetic friction draw.
func WithSlip(slip float64) Option {
	return func(b *Body) { b.slip = slip }
}

// WithSource injects the random source used for the kinetic friction draw.
func WithSource(src NormalSource) Option {
	return func(b *Body) { b.rng = src }
}

// NewBody creates a body with the given mass. Elasticity and slip default to 1.
func NewBody(mass float64, opts ...Option) (*Body, error) {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMass, mass)
	}

	b := &Body{
		mass:       mass,
		elasticity: 1,
		slip:       1,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.staticFriction < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFriction, b.staticFriction)
	}
	if b.rng == nil {
		b.rng = NewSource(0)
	}
	return b, nil
}

// Mass returns the body's mass.
func (b *Body) Mass() float64 { return b.mass }

// Velocity returns the current velocity.
func (b *Body) Velocity() core.Vec2 { return b.velocity }

// SetVelocity replaces the current velocity.
func (b *Body) SetVelocity(v core.Vec2) { b.velocity = v }

// Position returns the current position.
func (b *Body) Position() core.Vec2 { return b.position }

// SetPosition replaces the current position.
func (b *Body) SetPosition(p core.Vec2) { b.position = p }

// Elasticity returns the post-collision velocity retention factor.
func (b *Body) Elasticity() float64 { return b.elasticity }

// StaticFriction returns the static friction coefficient.
func (b *Body) StaticFriction() float64 { return b.staticFriction }

// KineticFriction returns the derived kinetic coefficient, zero until the
// body first breaks free.
func (b *Body) KineticFriction() float64 { return b.kineticFriction }

// Slipping reports whether kinetic friction is engaged.
func (b *Body) Slipping() bool { return b.slipping }

// NormalForce returns mass * Gravity.
func (b *Body) NormalForce() float64 {
	return b.mass * Gravity
}

// Momentum returns velocity * mass.
func (b *Body) Momentum() core.Vec2 {
	return b.velocity.Scale(b.mass)
}

// Force applies acceleration over dt. If the resulting impulse overcomes the
// current friction threshold the velocity is accumulated and the body moves;
// otherwise the body is held in place for this tick. Returns the velocity.
func (b *Body) Force(accel core.Vec2, dt float64) core.Vec2 {
	applied := accel.Scale(dt)
	magnitude := applied.Magnitude()

	coefficient := b.staticFriction
	if b.slipping {
		coefficient = b.kineticFriction
	}
	if magnitude <= b.NormalForce()*coefficient {
		return b.velocity
	}

	if !b.slipping && b.staticFriction > 0 {
		b.engageKinetic()
	}
	b.velocity = b.velocity.Add(applied)
	b.Move(dt)

	return b.velocity
}

// engageKinetic derives the kinetic coefficient once from N(slip, 1).
// Negative draws are clamped to zero.
func (b *Body) engageKinetic() {
	draw := b.slip + b.rng.NormFloat64()
	b.kineticFriction = math.Max(0, b.staticFriction*draw)
	b.slipping = true
}

// ResetFriction discards the derived kinetic coefficient so the next
// break-free draws a new one.
func (b *Body) ResetFriction() {
	b.kineticFriction = 0
	b.slipping = false
}

// Move integrates position by velocity over dt. No clamping is applied.
func (b *Body) Move(dt float64) core.Vec2 {
	b.position = b.position.Add(b.velocity.Scale(dt))
	return b.position
}

func (b *Body) String() string {
	return fmt.Sprintf("body{m=%.2f p=%v v=%v}", b.mass, b.position, b.velocity)
}
