package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadAirHockey loads air hockey configuration.
// Search order: customPath -> ~/.arcade/configs/airhockey.yaml -> ./configs/airhockey.yaml -> embedded default
func LoadAirHockey(customPath string) (AirHockeyConfig, error) {
	return load("airhockey", customPath, defaultAirHockeyYAML, DefaultAirHockeyConfig)
}

// LoadBumpers loads bumpers configuration.
// Search order: customPath -> ~/.arcade/configs/bumpers.yaml -> ./configs/bumpers.yaml -> embedded default
func LoadBumpers(customPath string) (BumpersConfig, error) {
	return load("bumpers", customPath, defaultBumpersYAML, DefaultBumpersConfig)
}

// load resolves a config through the search order. Files are decoded over
// the hardcoded defaults so partial files only override what they set.
func load[T validator](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath, fallback())
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path, fallback()); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T any](path string, cfg T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyAirHockeyPreset modifies the config based on a difficulty preset.
func ApplyAirHockeyPreset(cfg *AirHockeyConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Puck.Speed *= 0.75
		cfg.Puck.PhysicsBody.Elasticity = 0.85
	case DifficultyHard:
		cfg.Puck.Speed *= 1.5
		cfg.Puck.PhysicsBody.Elasticity = 1
	}
}

// ApplyBumpersPreset modifies the config based on a difficulty preset.
func ApplyBumpersPreset(cfg *BumpersConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Pucks = max(2, cfg.Pucks-2)
	case DifficultyHard:
		cfg.Pucks += 4
	}
}
