// Package window runs a game in a desktop window through Ebitengine.
// Keyboard keys and standard gamepads are sampled each tick into a
// core.InputFrame; the game's Scene is drawn with vector shapes.
package window

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/registry"
	"github.com/vovakirdan/arcade-physics/internal/storage"
)

// Options tunes the window frontend.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Scale  float64 // Window size relative to the scene size, default 1
}

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game   registry.Game
	config core.RuntimeConfig
	store  *storage.Store
	logger *log.Logger

	frame core.InputFrame
	pads  []ebiten.GamepadID
	state core.GameState
	scene core.Scene
	saved bool
}

// New creates the window adapter and resets the game.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	a := &App{
		game:   game,
		config: cfg,
		store:  opts.Store,
		logger: opts.Logger,
		frame:  core.NewInputFrame(),
	}
	a.game.Reset(cfg)
	a.scene = a.game.Scene()
	return a
}

// Update samples input and advances the game by one tick.
func (a *App) Update() error {
	a.frame.Clear()
	pollKeys(&a.frame)
	a.pads = pollPads(&a.frame, a.pads)

	if a.frame.Has(core.ActionQuit) {
		a.saveRun()
		return ebiten.Termination
	}
	if a.frame.Has(core.ActionRestart) && a.state.GameOver {
		a.saveRun()
		a.config.Seed = time.Now().UnixNano()
		a.game.Reset(a.config)
		a.state = a.game.State()
		a.saved = false
		a.logger.Info("restarted", "game", a.game.ID(), "seed", a.config.Seed)
		return nil
	}

	a.state = a.game.Step(a.frame).State
	if a.state.GameOver {
		a.saveRun()
	}
	return nil
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.scene = a.game.Scene()
	screen.Fill(a.scene.Background)

	for _, sp := range a.scene.Sprites {
		if sp.Radius > 0 {
			vector.DrawFilledCircle(screen,
				float32(sp.Position.X), float32(sp.Position.Y), float32(sp.Radius), sp.Color, true)
			continue
		}
		vector.FillRect(screen,
			float32(sp.Bounds.X), float32(sp.Bounds.Y), float32(sp.Bounds.W), float32(sp.Bounds.H), sp.Color, false)
	}

	hud := strings.Join(a.scene.HUD, "  ")
	if len(a.pads) > 0 {
		hud += fmt.Sprintf("  Pads: %d", len(a.pads))
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

// Layout keeps the logical screen in world units.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := int(a.scene.Width), int(a.scene.Height)
	if w <= 0 || h <= 0 {
		return outsideWidth, outsideHeight
	}
	return w, h
}

func (a *App) saveRun() {
	if a.saved || a.store == nil {
		return
	}
	run := registry.Record(a.game, a.config.Seed)
	if run.Ticks == 0 && run.Score == 0 {
		return
	}
	if _, err := a.store.SaveRun(run); err != nil {
		a.logger.Warn("could not save run", "game", run.GameID, "error", err)
	}
	a.saved = true
}

// Run opens a window and blocks until it is closed or Q is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	app := New(game, cfg, opts)
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	w, h := app.Layout(1280, 720)
	ebiten.SetWindowSize(int(float64(w)*opts.Scale), int(float64(h)*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	app.saveRun()
	return nil
}
