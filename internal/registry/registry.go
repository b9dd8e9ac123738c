// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-physics/internal/config"
	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/loop"
	"github.com/vovakirdan/arcade-physics/internal/storage"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea or Ebiten).
// The platform handles input sampling, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "airhockey").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Air Hockey").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides the tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Held keys and pads feed the controllers; actions drive pause/quit/restart.
	Step(in core.InputFrame) core.StepResult

	// Scene returns a read-only snapshot of the play-field for renderers.
	Scene() core.Scene

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Simulation is implemented by games driven by a physics loop.
type Simulation interface {
	Loop() *loop.Loop
}

// Configurable is implemented by games that load a YAML config.
// It is called before Reset; an empty path uses the default search order.
type Configurable interface {
	Configure(path string, preset config.DifficultyPreset) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// CreateConfigured instantiates a game and applies a config path and
// difficulty preset when the game supports them.
func CreateConfigured(id, path string, preset config.DifficultyPreset) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(path, preset); err != nil {
			return nil, fmt.Errorf("registry: configure %q: %w", id, err)
		}
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Record summarizes a game's current state as a storage run.
// Tick and collision counts come from the physics loop when there is one.
func Record(g Game, seed int64) storage.Run {
	run := storage.Run{
		GameID: g.ID(),
		Score:  g.State().Score,
		Seed:   seed,
	}
	if sim, ok := g.(Simulation); ok && sim.Loop() != nil {
		run.Ticks = sim.Loop().Ticks()
		run.Collisions = sim.Loop().Collisions()
	}
	return run
}
