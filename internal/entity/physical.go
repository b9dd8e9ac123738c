package entity

import (
	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/physics"
)

// Physical is a bounded entity driven by a physics body. The body holds the
// authoritative position; Sync mirrors it into the entity and writes the
// clamped result back.
type Physical struct {
	*Bounded
	body *physics.Body
}

// NewPhysical pairs an entity with its body and moves the body to the
// entity's position.
func NewPhysical(b *Bounded, body *physics.Body) *Physical {
	body.SetPosition(b.Position())
	return &Physical{Bounded: b, body: body}
}

// Body returns the owned physics body.
func (p *Physical) Body() *physics.Body { return p.body }

// Sync clamps the body position to the boundary, invoking the axis callbacks
// on a crossing, and stores the clamped position back in the body.
func (p *Physical) Sync(onXBound, onYBound func()) {
	pos := p.body.Position()
	p.UpdatePosition(&pos, onXBound, onYBound)
	p.body.SetPosition(p.Position())
}

// Teleport moves both the entity and the body without firing callbacks.
func (p *Physical) Teleport(pos, velocity core.Vec2) {
	p.body.SetPosition(pos)
	p.body.SetVelocity(velocity)
	p.Sync(nil, nil)
}
