package airhockey

import (
	"image/color"

	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/entity"
	"github.com/vovakirdan/arcade-physics/internal/input"
	"github.com/vovakirdan/arcade-physics/internal/physics"
)

// Entity ids.
const (
	PlayerID = 1
	PuckID   = 2
)

// mallet is the controller-driven player piece. Hitting a wall stops the
// velocity component along that axis.
type mallet struct {
	*entity.Physical
	controller input.Controller
	color      color.RGBA
}

// Update pushes the mallet with the controller direction. A zero push
// never breaks friction, so an idle mallet holds its position and static
// friction re-engages for the next push.
func (m *mallet) Update(dt float64) {
	body := m.Body()
	dir := m.controller.Direction()
	if dir.IsZero() {
		body.ResetFriction()
	}
	body.Force(dir, dt)
	m.Sync(m.stopX, m.stopY)
}

func (m *mallet) stopX() { m.Body().SetVelocity(entity.StopX(m.Body().Velocity())) }
func (m *mallet) stopY() { m.Body().SetVelocity(entity.StopY(m.Body().Velocity())) }

// puck moves freely and reflects off walls, losing energy by elasticity.
type puck struct {
	*entity.Physical
	color color.RGBA
	start core.Vec2
}

func (p *puck) Update(dt float64) {
	p.Body().Move(dt)
	p.Sync(p.bounceX, p.bounceY)
}

func (p *puck) bounceX() {
	b := p.Body()
	b.SetVelocity(entity.BounceX(b.Velocity(), b.Elasticity()))
}

func (p *puck) bounceY() {
	b := p.Body()
	b.SetVelocity(entity.BounceY(b.Velocity(), b.Elasticity()))
}

// serve returns the puck to its start position with a new velocity.
func (p *puck) serve(velocity core.Vec2) {
	p.Teleport(p.start, velocity)
}

func sprite(e *entity.Physical, c color.RGBA) core.Sprite {
	circle := e.Circle()
	return core.Sprite{
		ID:       e.ID(),
		Position: circle.Center,
		Bounds:   e.Rect(),
		Radius:   circle.Radius,
		Color:    c,
	}
}

func newPiece(id int, pos core.Vec2, size float64, field *entity.Boundary, body *physics.Body) (*entity.Physical, error) {
	b, err := entity.NewBounded(id, pos, core.V(size, size), field)
	if err != nil {
		return nil, err
	}
	b.SetRadius(size / 2)
	return entity.NewPhysical(b, body), nil
}
