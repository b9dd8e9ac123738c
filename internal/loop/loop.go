// Package loop drives a fixed-cadence simulation: entity updates in
// registration order, then pairwise collision resolution, then quit checks.
//
// The loop is single-threaded. Nothing inside a tick runs concurrently.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/entity"
	"github.com/vovakirdan/arcade-physics/internal/physics"
)

// State is the loop lifecycle stage.
type State int

const (
	NotStarted State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyStarted is returned by Start unless the loop is NotStarted.
	ErrAlreadyStarted = errors.New("loop: already started")
	// ErrNotRunning is returned by Step outside the Running state.
	ErrNotRunning = errors.New("loop: not running")
	// ErrNotEntity is returned by Add for values that neither update nor collide.
	ErrNotEntity = errors.New("loop: value is neither Updater nor Collider")
)

// Updater advances one entity by dt seconds: force, move, clamp.
type Updater interface {
	Update(dt float64)
}

// Collider participates in pairwise collision checks.
type Collider interface {
	entity.Shape
	ID() int
	Body() *physics.Body
}

// CollisionListener is notified once per contact episode after the
// bodies have been resolved.
type CollisionListener interface {
	OnCollision(other Collider)
}

// OverlapFunc decides whether two colliders touch this frame.
type OverlapFunc func(a, b entity.Shape) bool

// Option configures a Loop.
type Option func(*Loop)

// WithFPS sets the target frame rate passed to the clock.
func WithFPS(fps int) Option {
	return func(l *Loop) { l.fps = fps }
}

// WithClock replaces the default FixedClock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithOverlap replaces the default circle overlap test.
func WithOverlap(f OverlapFunc) Option {
	return func(l *Loop) { l.overlap = f }
}

// WithQuit adds an external quit signal polled once per iteration of Run.
// Several signals may be added; any of them stops the loop.
func WithQuit(f func() bool) Option {
	return func(l *Loop) { l.quit = append(l.quit, f) }
}

// WithCollisionHook registers a callback invoked for every resolved contact.
func WithCollisionHook(f func(a, b Collider)) Option {
	return func(l *Loop) { l.onCollision = f }
}

// WithLogger sets the logger for state transitions and contacts.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

type pairKey struct{ lo, hi int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Loop owns the tick clock and the ordered entity list.
type Loop struct {
	state State
	fps   int
	clock Clock

	updaters  []Updater
	colliders []Collider

	overlap     OverlapFunc
	latched     map[pairKey]bool
	onCollision func(a, b Collider)

	quit          []func() bool
	quitRequested bool

	ticks      uint64
	collisions uint64

	logger *log.Logger
}

// New creates a loop in the NotStarted state.
func New(opts ...Option) *Loop {
	l := &Loop{
		fps:     60,
		clock:   FixedClock{},
		overlap: entity.CirclesOverlap,
		latched: make(map[pairKey]bool),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add registers an entity. Entities are updated in the order they are added.
func (l *Loop) Add(e any) error {
	u, isUpdater := e.(Updater)
	c, isCollider := e.(Collider)
	if !isUpdater && !isCollider {
		return fmt.Errorf("%w: %T", ErrNotEntity, e)
	}
	if isUpdater {
		l.updaters = append(l.updaters, u)
	}
	if isCollider {
		l.colliders = append(l.colliders, c)
	}
	return nil
}

// State returns the current lifecycle stage.
func (l *Loop) State() State { return l.state }

// Ticks returns the number of completed steps.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Collisions returns the number of resolved contacts.
func (l *Loop) Collisions() uint64 { return l.collisions }

// FPS returns the target frame rate.
func (l *Loop) FPS() int { return l.fps }

// Start moves the loop from NotStarted to Running.
func (l *Loop) Start() error {
	if l.state != NotStarted {
		return fmt.Errorf("%w: state %s", ErrAlreadyStarted, l.state)
	}
	l.state = Running
	l.logger.Debug("loop started", "updaters", len(l.updaters), "colliders", len(l.colliders))
	return nil
}

// Stop moves the loop to the terminal Stopped state. Calling it again is a no-op.
func (l *Loop) Stop() {
	if l.state == Stopped {
		return
	}
	l.state = Stopped
	l.logger.Debug("loop stopped", "ticks", l.ticks, "collisions", l.collisions)
}

// RequestQuit sets the cooperative quit flag checked by Run.
func (l *Loop) RequestQuit() { l.quitRequested = true }

// QuitRequested reports whether a quit was requested or signalled.
func (l *Loop) QuitRequested() bool {
	if l.quitRequested {
		return true
	}
	for _, f := range l.quit {
		if f() {
			return true
		}
	}
	return false
}

// Configure applies options before the loop starts.
func (l *Loop) Configure(opts ...Option) error {
	if l.state != NotStarted {
		return fmt.Errorf("%w: state %s", ErrAlreadyStarted, l.state)
	}
	for _, opt := range opts {
		opt(l)
	}
	return nil
}

// Step advances the simulation by dt seconds: every updater in order,
// then collision resolution across all collider pairs.
func (l *Loop) Step(dt float64) error {
	if l.state != Running {
		return fmt.Errorf("%w: state %s", ErrNotRunning, l.state)
	}

	for _, u := range l.updaters {
		u.Update(dt)
	}
	l.collide()
	l.ticks++
	return nil
}

// collide resolves each overlapping pair once per contact episode. The
// latch for a pair re-arms as soon as the pair is seen apart.
func (l *Loop) collide() {
	for i := 0; i < len(l.colliders); i++ {
		for j := i + 1; j < len(l.colliders); j++ {
			a, b := l.colliders[i], l.colliders[j]
			key := keyOf(a.ID(), b.ID())

			if !l.overlap(a, b) {
				delete(l.latched, key)
				continue
			}
			if l.latched[key] {
				continue
			}
			l.latched[key] = true

			if ba, bb := a.Body(), b.Body(); ba != nil && bb != nil {
				physics.Resolve(ba, bb)
			}
			l.collisions++
			l.logger.Debug("collision", "a", a.ID(), "b", b.ID(), "tick", l.ticks)

			if la, ok := a.(CollisionListener); ok {
				la.OnCollision(b)
			}
			if lb, ok := b.(CollisionListener); ok {
				lb.OnCollision(a)
			}
			if l.onCollision != nil {
				l.onCollision(a, b)
			}
		}
	}
}

// Run starts the loop and steps it with the clock until a quit is
// requested or ctx is cancelled, then stops it.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Start(); err != nil {
		return err
	}
	defer l.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.QuitRequested() {
			return nil
		}
		if err := l.Step(l.clock.Tick(l.fps)); err != nil {
			return err
		}
	}
}

// Snapshot returns the render-facing positions of all colliders.
func (l *Loop) Snapshot() []core.Sprite {
	sprites := make([]core.Sprite, 0, len(l.colliders))
	for _, c := range l.colliders {
		circle := c.Circle()
		sprites = append(sprites, core.Sprite{
			ID:       c.ID(),
			Position: circle.Center,
			Bounds:   c.Rect(),
			Radius:   circle.Radius,
		})
	}
	return sprites
}
