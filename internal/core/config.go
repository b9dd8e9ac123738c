package core

import "image/color"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for window frontends)
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the fixed timestep implied by TickRate.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Sprite is the render-facing view of one entity.
type Sprite struct {
	ID       int
	Position Vec2 // Centre in world units
	Bounds   Rect
	Radius   float64 // Zero for rectangular sprites
	Color    color.RGBA
}

// Scene is a read-only snapshot handed to renderers each frame.
// Renderers must not mutate it; games build a fresh one per call.
type Scene struct {
	Width, Height float64 // Play-field size in world units
	Background    color.RGBA
	Sprites       []Sprite
	HUD           []string
}
