package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{5, 0.6},
		{10, 1.0},
		{100, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.want)
		}
	}

	if got := dm.Speed(100, 10, 0); math.Abs(got-200) > 1e-9 {
		t.Errorf("Speed() = %v, expected 200", got)
	}
}

func TestDifficultyTimeAndDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := dm.Level(0, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.3})
	if got := fixed.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled Level() = %v, expected 0.3", got)
	}
	if fixed.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
}
