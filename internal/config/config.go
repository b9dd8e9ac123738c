// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade toolkit.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// AirHockeyConfig contains all configuration for the air hockey demo.
type AirHockeyConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Table      TableConfig      `yaml:"table"`
	Controller ControllerConfig `yaml:"controller"`
	Player     PieceConfig      `yaml:"player"`
	Puck       PuckConfig       `yaml:"puck"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the play-field. Height is derived as width * 9 / 16.
type ScreenConfig struct {
	Width int `yaml:"width"`
	FPS   int `yaml:"fps"`
}

// Height returns the 16:9 play-field height.
func (s ScreenConfig) Height() float64 {
	return float64(s.Width) / 16 * 9
}

// PieceSize returns the side of a piece's bounding square.
func (s ScreenConfig) PieceSize() float64 {
	return s.Height() / 9 / 2
}

// TableConfig defines the table appearance.
type TableConfig struct {
	Color string `yaml:"color"`
}

// ControllerConfig defines how input is turned into force.
type ControllerConfig struct {
	Speed    float64 `yaml:"speed"`    // Force magnitude per unit of input
	Deadzone float64 `yaml:"deadzone"` // Joystick axis deadzone
	Mapping  string  `yaml:"mapping"`  // "xbox" or "switch"
}

// BodyConfig defines the physics parameters of one body.
type BodyConfig struct {
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Slip       float64 `yaml:"slip"`
}

// PieceConfig defines a coloured physics piece.
type PieceConfig struct {
	Color       string     `yaml:"color"`
	PhysicsBody BodyConfig `yaml:"physics_body"`
}

// PuckConfig defines the puck and its serve speed.
type PuckConfig struct {
	PieceConfig `yaml:",inline"`
	Speed       float64 `yaml:"speed"`
}

// BumpersConfig contains all configuration for the bumpers demo.
type BumpersConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Table      TableConfig      `yaml:"table"`
	Pucks      int              `yaml:"pucks"`
	Colors     []string         `yaml:"colors"`
	Puck       PuckConfig       `yaml:"puck"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config for a preset.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}

// Validate checks the screen and body parameters.
func (c AirHockeyConfig) Validate() error {
	if err := c.Screen.validate(); err != nil {
		return err
	}
	if err := c.Player.PhysicsBody.validate("player"); err != nil {
		return err
	}
	if err := c.Puck.PhysicsBody.validate("puck"); err != nil {
		return err
	}
	if c.Controller.Deadzone < 0 || c.Controller.Deadzone >= 1 {
		return fmt.Errorf("%w: controller deadzone %v not in [0, 1)", ErrInvalidConfig, c.Controller.Deadzone)
	}
	return nil
}

// Validate checks the screen, puck count and body parameters.
func (c BumpersConfig) Validate() error {
	if err := c.Screen.validate(); err != nil {
		return err
	}
	if c.Pucks < 1 {
		return fmt.Errorf("%w: pucks %d < 1", ErrInvalidConfig, c.Pucks)
	}
	return c.Puck.PhysicsBody.validate("puck")
}

func (s ScreenConfig) validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: screen width %d", ErrInvalidConfig, s.Width)
	}
	if s.FPS <= 0 {
		return fmt.Errorf("%w: screen fps %d", ErrInvalidConfig, s.FPS)
	}
	return nil
}

func (b BodyConfig) validate(name string) error {
	if b.Mass <= 0 {
		return fmt.Errorf("%w: %s mass %v must be positive", ErrInvalidConfig, name, b.Mass)
	}
	if b.Friction < 0 {
		return fmt.Errorf("%w: %s friction %v must be non-negative", ErrInvalidConfig, name, b.Friction)
	}
	return nil
}
