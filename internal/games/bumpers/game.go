// Package bumpers implements a field of pucks on a torus: pucks leaving one
// edge re-enter at the opposite edge and every pair collides elastically.
package bumpers

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/vovakirdan/arcade-physics/internal/config"
	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/entity"
	"github.com/vovakirdan/arcade-physics/internal/input"
	"github.com/vovakirdan/arcade-physics/internal/loop"
	"github.com/vovakirdan/arcade-physics/internal/physics"
	"github.com/vovakirdan/arcade-physics/internal/registry"
)

// bumper is a puck that wraps around the field.
type bumper struct {
	*entity.Physical
	color color.RGBA
}

// Update moves the puck and wraps it before the boundary clamp, so the
// clamp only ever sees positions inside the field.
func (b *bumper) Update(dt float64) {
	body := b.Body()
	pos := body.Move(dt)

	bound, _ := b.Boundary()
	half := b.HalfExtents()
	pos = entity.WrapX(pos, bound.XMin+half.X, bound.XMax-half.X)
	pos = entity.WrapY(pos, bound.YMin+half.Y, bound.YMax-half.Y)
	body.SetPosition(pos)

	b.Sync(nil, nil)
}

// Game implements the bumpers demo.
type Game struct {
	cfg        config.BumpersConfig
	configured bool
	difficulty *config.DifficultyManager

	runtime core.RuntimeConfig
	rng     *rand.Rand
	frame   core.InputFrame

	loop       *loop.Loop
	field      entity.Boundary
	pucks      []*bumper
	controller input.Controller
	background color.RGBA

	resetHeld bool
	gameOver  bool
	paused    bool
	err       error
}

// New creates a new bumpers game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bumpers"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bumpers"
}

// Configure loads the YAML config and applies a difficulty preset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadBumpers(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyBumpersPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Reset lays the pucks out on a grid with random velocities.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.configured {
		g.cfg = config.DefaultBumpersConfig()
		g.configured = true
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.frame = core.NewInputFrame()
	g.resetHeld = false
	g.gameOver = false
	g.paused = false
	g.err = g.build()
	if g.err != nil {
		g.gameOver = true
	}
}

func (g *Game) build() error {
	w := float64(g.cfg.Screen.Width)
	h := g.cfg.Screen.Height()
	size := g.cfg.Screen.PieceSize()

	field, err := entity.NewBoundary(0, 0, w, h)
	if err != nil {
		return fmt.Errorf("bumpers: %w", err)
	}
	g.field = field
	g.background = config.ColorOr(g.cfg.Table.Color, color.RGBA{A: 0xff})
	g.controller = input.NewKeyboardController(input.FrameKeyboard{Frame: &g.frame}, 0)

	fps := g.runtime.TickRate
	if fps <= 0 {
		fps = g.cfg.Screen.FPS
	}
	g.loop = loop.New(
		loop.WithFPS(fps),
		loop.WithQuit(func() bool { return g.controller.Action(input.Quit) > 0 }),
	)

	g.pucks = g.pucks[:0]
	cols := int(math.Ceil(math.Sqrt(float64(g.cfg.Pucks))))
	rows := (g.cfg.Pucks + cols - 1) / cols
	pb := g.cfg.Puck.PhysicsBody

	for i := 0; i < g.cfg.Pucks; i++ {
		pos := core.V(
			w*(float64(i%cols)+0.5)/float64(cols),
			h*(float64(i/cols)+0.5)/float64(rows),
		)
		body, err := physics.NewBody(pb.Mass,
			physics.WithFriction(pb.Friction),
			physics.WithElasticity(pb.Elasticity),
			physics.WithSlip(pb.Slip),
			physics.WithSource(physics.NewSource(g.runtime.Seed+int64(i))),
		)
		if err != nil {
			return fmt.Errorf("bumpers: puck %d: %w", i, err)
		}
		b, err := entity.NewBounded(i+1, pos, core.V(size, size), &g.field)
		if err != nil {
			return fmt.Errorf("bumpers: puck %d: %w", i, err)
		}
		b.SetRadius(size / 2)

		p := &bumper{Physical: entity.NewPhysical(b, body), color: g.colorFor(i)}
		g.pucks = append(g.pucks, p)
		if err := g.loop.Add(p); err != nil {
			return err
		}
	}
	g.scatter()
	return nil
}

func (g *Game) colorFor(i int) color.RGBA {
	fallback := config.ColorOr(g.cfg.Puck.Color, color.RGBA{0xff, 0xff, 0xff, 0xff})
	if len(g.cfg.Colors) == 0 {
		return fallback
	}
	return config.ColorOr(g.cfg.Colors[i%len(g.cfg.Colors)], fallback)
}

// scatter gives every puck a fresh random velocity.
func (g *Game) scatter() {
	speed := g.difficulty.Speed(g.cfg.Puck.Speed, g.score(), g.loop.Ticks())
	for _, p := range g.pucks {
		p.Body().SetVelocity(entity.RandomVector(g.rng, speed, false))
	}
}

func (g *Game) score() int {
	if g.loop == nil {
		return 0
	}
	return int(g.loop.Collisions())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frame = in

	if g.loop.State() == loop.NotStarted {
		if err := g.loop.Start(); err != nil {
			g.err = err
			g.gameOver = true
			return core.StepResult{State: g.State()}
		}
	}

	if g.loop.QuitRequested() {
		g.loop.Stop()
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	reset := g.controller.Action(input.Reset) > 0
	if reset && !g.resetHeld {
		g.scatter()
	}
	g.resetHeld = reset

	if err := g.loop.Step(g.runtime.TickSeconds()); err != nil {
		g.err = err
		g.gameOver = true
	}
	return core.StepResult{State: g.State()}
}

// Scene returns all pucks for rendering.
func (g *Game) Scene() core.Scene {
	scene := core.Scene{
		Width:      g.field.Width(),
		Height:     g.field.Height(),
		Background: g.background,
		Sprites:    make([]core.Sprite, 0, len(g.pucks)),
	}
	for _, p := range g.pucks {
		circle := p.Circle()
		scene.Sprites = append(scene.Sprites, core.Sprite{
			ID:       p.ID(),
			Position: circle.Center,
			Bounds:   p.Rect(),
			Radius:   circle.Radius,
			Color:    p.color,
		})
	}

	scene.HUD = []string{g.Title(), fmt.Sprintf("Collisions: %d", g.score())}
	switch {
	case g.err != nil:
		scene.HUD = append(scene.HUD, fmt.Sprintf("error: %v", g.err))
	case g.paused:
		scene.HUD = append(scene.HUD, "PAUSED")
	case g.gameOver:
		scene.HUD = append(scene.HUD, "GAME OVER")
	}
	return scene
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Loop exposes the physics loop for headless runs.
func (g *Game) Loop() *loop.Loop {
	return g.loop
}

// Register the game with the registry
func init() {
	registry.Register("bumpers", func() registry.Game {
		return New()
	})
}
