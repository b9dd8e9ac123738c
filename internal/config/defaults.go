package config

import (
	_ "embed"
)

//go:embed defaults/airhockey.yaml
var defaultAirHockeyYAML []byte

//go:embed defaults/bumpers.yaml
var defaultBumpersYAML []byte

// DefaultAirHockeyConfig returns the default air hockey configuration.
func DefaultAirHockeyConfig() AirHockeyConfig {
	return AirHockeyConfig{
		Screen: ScreenConfig{
			Width: 1280,
			FPS:   60,
		},
		Table: TableConfig{
			Color: "darkslategray",
		},
		Controller: ControllerConfig{
			Speed:    1500,
			Deadzone: 0.15,
			Mapping:  "xbox",
		},
		Player: PieceConfig{
			Color: "indigo",
			PhysicsBody: BodyConfig{
				Mass:       10,
				Friction:   0.1,
				Elasticity: 0.9,
				Slip:       0.5,
			},
		},
		Puck: PuckConfig{
			PieceConfig: PieceConfig{
				Color: "blue",
				PhysicsBody: BodyConfig{
					Mass:       1,
					Friction:   0,
					Elasticity: 0.95,
					Slip:       1,
				},
			},
			Speed: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultBumpersConfig returns the default bumpers configuration.
func DefaultBumpersConfig() BumpersConfig {
	return BumpersConfig{
		Screen: ScreenConfig{
			Width: 1280,
			FPS:   60,
		},
		Table: TableConfig{
			Color: "black",
		},
		Pucks:  6,
		Colors: []string{"crimson", "gold", "limegreen", "deepskyblue", "orchid", "orange"},
		Puck: PuckConfig{
			PieceConfig: PieceConfig{
				Color: "white",
				PhysicsBody: BodyConfig{
					Mass:       1,
					Friction:   0,
					Elasticity: 1,
					Slip:       1,
				},
			},
			Speed: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "airhockey":
		return defaultAirHockeyYAML
	case "bumpers":
		return defaultBumpersYAML
	default:
		return nil
	}
}
