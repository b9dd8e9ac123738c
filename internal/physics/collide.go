package physics

import "github.com/vovakirdan/arcade-physics/internal/core"

// Snapshot is an immutable copy of the state another body contributes to a
// collision. Taking snapshots of both bodies before mutating either keeps the
// response independent of call order.
type Snapshot struct {
	Mass     float64
	Velocity core.Vec2
}

// Snapshot captures the body's pre-collision mass and velocity.
func (b *Body) Snapshot() Snapshot {
	return Snapshot{Mass: b.mass, Velocity: b.velocity}
}

// OnCollide replaces this body's velocity with the 1-D elastic collision
// result against other, applied per component, then scales it by elasticity:
//
//	v' = (v*(m - mo) + vo*2*mo) / (m + mo) * e
//
// Only this body is mutated. Use Resolve to update both sides of a contact.
func (b *Body) OnCollide(other Snapshot) {
	total := b.mass + other.Mass
	v := b.velocity.Scale(b.mass - other.Mass).
		Add(other.Velocity.Scale(2 * other.Mass)).
		Scale(1 / total)
	b.velocity = v.Scale(b.elasticity)
}

// Resolve applies the collision response to both bodies from their
// pre-collision snapshots.
func Resolve(a, b *Body) {
	sa, sb := a.Snapshot(), b.Snapshot()
	a.OnCollide(sb)
	b.OnCollide(sa)
}
