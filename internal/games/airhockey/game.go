// Package airhockey implements the air hockey demo: a controller-driven
// mallet and a puck bouncing around a table, resolved by the physics loop.
package airhockey

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/vovakirdan/arcade-physics/internal/config"
	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/entity"
	"github.com/vovakirdan/arcade-physics/internal/input"
	"github.com/vovakirdan/arcade-physics/internal/loop"
	"github.com/vovakirdan/arcade-physics/internal/physics"
	"github.com/vovakirdan/arcade-physics/internal/registry"
)

// Game implements the air hockey demo.
type Game struct {
	cfg        config.AirHockeyConfig
	configured bool
	difficulty *config.DifficultyManager

	runtime core.RuntimeConfig
	rng     *rand.Rand
	frame   core.InputFrame // Input for the current tick, read by the controllers

	loop   *loop.Loop
	field  entity.Boundary
	player *mallet
	puck   *puck

	keyboard  input.Controller
	joysticks []input.Controller

	table      color.RGBA
	hits       int
	serves     int
	resetHeld  bool
	gameOver   bool
	paused     bool
	setupError error
}

// New creates a new air hockey game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "airhockey"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Air Hockey"
}

// Configure loads the YAML config and applies a difficulty preset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadAirHockey(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyAirHockeyPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.AirHockeyConfig {
	return g.cfg
}

// Reset builds a fresh table, pieces and loop.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.configured {
		g.cfg = config.DefaultAirHockeyConfig()
		g.configured = true
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.frame = core.NewInputFrame()
	g.hits = 0
	g.serves = 0
	g.resetHeld = false
	g.gameOver = false
	g.paused = false
	g.joysticks = nil
	g.setupError = g.build()
	if g.setupError != nil {
		g.gameOver = true
	}
}

func (g *Game) build() error {
	w := float64(g.cfg.Screen.Width)
	h := g.cfg.Screen.Height()
	size := g.cfg.Screen.PieceSize()

	field, err := entity.NewBoundary(0, 0, w, h)
	if err != nil {
		return fmt.Errorf("airhockey: %w", err)
	}
	g.field = field
	g.table = config.ColorOr(g.cfg.Table.Color, color.RGBA{0x2f, 0x4f, 0x4f, 0xff})

	kb := input.FrameKeyboard{Frame: &g.frame}
	g.keyboard = input.Combine(
		input.NewKeyboardController(kb, g.cfg.Controller.Speed),
		input.NewKeyboardController(kb, g.cfg.Controller.Speed, input.WASDBindings()...),
	)

	pb := g.cfg.Player.PhysicsBody
	playerBody, err := physics.NewBody(pb.Mass,
		physics.WithFriction(pb.Friction),
		physics.WithElasticity(pb.Elasticity),
		physics.WithSlip(pb.Slip),
		physics.WithSource(physics.NewSource(g.runtime.Seed)),
	)
	if err != nil {
		return fmt.Errorf("airhockey: player: %w", err)
	}
	playerPiece, err := newPiece(PlayerID, core.V(w/2, h/2), size, &g.field, playerBody)
	if err != nil {
		return fmt.Errorf("airhockey: player: %w", err)
	}
	g.player = &mallet{
		Physical:   playerPiece,
		controller: g.keyboard,
		color:      config.ColorOr(g.cfg.Player.Color, color.RGBA{0x4b, 0x00, 0x82, 0xff}),
	}

	pk := g.cfg.Puck.PhysicsBody
	puckBody, err := physics.NewBody(pk.Mass,
		physics.WithFriction(pk.Friction),
		physics.WithElasticity(pk.Elasticity),
		physics.WithSlip(pk.Slip),
		physics.WithSource(physics.NewSource(g.runtime.Seed+1)),
	)
	if err != nil {
		return fmt.Errorf("airhockey: puck: %w", err)
	}
	start := core.V(w/4, h/4)
	puckPiece, err := newPiece(PuckID, start, size, &g.field, puckBody)
	if err != nil {
		return fmt.Errorf("airhockey: puck: %w", err)
	}
	g.puck = &puck{
		Physical: puckPiece,
		color:    config.ColorOr(g.cfg.Puck.Color, color.RGBA{0x00, 0x00, 0xff, 0xff}),
		start:    start,
	}

	fps := g.runtime.TickRate
	if fps <= 0 {
		fps = g.cfg.Screen.FPS
	}
	g.loop = loop.New(
		loop.WithFPS(fps),
		loop.WithQuit(func() bool { return g.player.controller.Action(input.Quit) > 0 }),
		loop.WithCollisionHook(func(a, b loop.Collider) { g.hits++ }),
	)
	if err := g.loop.Add(g.player); err != nil {
		return err
	}
	if err := g.loop.Add(g.puck); err != nil {
		return err
	}
	// Serve against the new loop so a replay starts at tick zero.
	g.serve()
	return nil
}

// serve re-launches the puck from its start position. The speed grows
// with difficulty.
func (g *Game) serve() {
	speed := g.cfg.Puck.Speed
	if g.difficulty != nil {
		speed = g.difficulty.Speed(speed, g.hits, g.ticks())
	}
	g.puck.serve(entity.RandomVector(g.rng, speed, false))
	g.serves++
}

func (g *Game) ticks() uint64 {
	if g.loop == nil {
		return 0
	}
	return g.loop.Ticks()
}

// attachJoystick binds the first connected pad to the player once one
// shows up in the input frame.
func (g *Game) attachJoystick() {
	if g.joysticks != nil {
		return
	}
	bindings := input.DefaultJoystickBindings(input.MappingByName(g.cfg.Controller.Mapping), g.cfg.Controller.Deadzone)
	g.joysticks = input.Joysticks(input.FrameDevices{Frame: &g.frame}, 1, g.cfg.Controller.Speed, bindings...)
	if len(g.joysticks) > 0 {
		g.player.controller = input.Combine(g.keyboard, g.joysticks[0])
	}
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
	g.attachJoystick()

	if g.loop.State() == loop.NotStarted {
		if err := g.loop.Start(); err != nil {
			g.setupError = err
			g.gameOver = true
			return core.StepResult{State: g.State()}
		}
	}

	if g.loop.QuitRequested() {
		g.loop.Stop()
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	reset := g.player.controller.Action(input.Reset) > 0
	if reset && !g.resetHeld {
		g.serve()
	}
	g.resetHeld = reset

	if err := g.loop.Step(g.runtime.TickSeconds()); err != nil {
		g.setupError = err
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Scene returns the table, mallet and puck for rendering.
func (g *Game) Scene() core.Scene {
	scene := core.Scene{
		Width:      g.field.Width(),
		Height:     g.field.Height(),
		Background: g.table,
	}
	if g.player == nil || g.puck == nil {
		scene.HUD = []string{g.Title(), fmt.Sprintf("error: %v", g.setupError)}
		return scene
	}

	scene.Sprites = []core.Sprite{
		sprite(g.player.Physical, g.player.color),
		sprite(g.puck.Physical, g.puck.color),
	}
	scene.HUD = []string{
		g.Title(),
		fmt.Sprintf("Hits: %d", g.hits),
		fmt.Sprintf("Serve: %d", g.serves),
		fmt.Sprintf("Level: %.0f%%", g.difficulty.Level(g.hits, g.ticks())*100),
	}
	switch {
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
		Score:    g.hits,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Loop exposes the physics loop for headless runs.
func (g *Game) Loop() *loop.Loop {
	return g.loop
}

// Err returns the error that ended the game, if any.
func (g *Game) Err() error {
	return g.setupError
}

// Register the game with the registry
func init() {
	registry.Register("airhockey", func() registry.Game {
		return New()
	})
}
