package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultAirHockeyConfig().Validate(); err != nil {
		t.Errorf("DefaultAirHockeyConfig().Validate() = %v", err)
	}
	if err := DefaultBumpersConfig().Validate(); err != nil {
		t.Errorf("DefaultBumpersConfig().Validate() = %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var ah AirHockeyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("airhockey"), &ah); err != nil {
		t.Fatalf("embedded airhockey.yaml: %v", err)
	}
	if ah.Player.PhysicsBody != DefaultAirHockeyConfig().Player.PhysicsBody {
		t.Errorf("embedded player body = %+v, expected %+v", ah.Player.PhysicsBody, DefaultAirHockeyConfig().Player.PhysicsBody)
	}
	if ah.Puck.Speed != DefaultAirHockeyConfig().Puck.Speed {
		t.Errorf("embedded puck speed = %v, expected %v", ah.Puck.Speed, DefaultAirHockeyConfig().Puck.Speed)
	}
	if len(GetDefaultYAML("bumpers")) == 0 {
		t.Error("GetDefaultYAML(bumpers) is empty")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML(unknown) should be nil")
	}
}

func TestScreenDerivedSizes(t *testing.T) {
	s := ScreenConfig{Width: 1600, FPS: 60}
	if got := s.Height(); got != 900 {
		t.Errorf("Height() = %v, expected 900", got)
	}
	if got := s.PieceSize(); got != 50 {
		t.Errorf("PieceSize() = %v, expected 50", got)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airhockey.yaml")
	data := []byte("puck:\n  speed: 42\n  physics_body:\n    mass: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAirHockey(path)
	if err != nil {
		t.Fatalf("LoadAirHockey() error = %v", err)
	}
	if cfg.Puck.Speed != 42 || cfg.Puck.PhysicsBody.Mass != 3 {
		t.Errorf("puck = %+v, expected speed 42 mass 3", cfg.Puck)
	}
	if cfg.Screen.Width != 1280 {
		t.Errorf("Screen.Width = %d, expected default 1280", cfg.Screen.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBumpers(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBumpers(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("pucks: [oops"), 0o644)
	if _, err := LoadBumpers(bad); err == nil {
		t.Error("LoadBumpers(malformed) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	_ = os.WriteFile(invalid, []byte("puck:\n  physics_body:\n    mass: 0\n"), 0o644)
	if _, err := LoadBumpers(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadBumpers(mass 0) error = %v, expected %v", err, ErrInvalidConfig)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AirHockeyConfig)
	}{
		{"zero width", func(c *AirHockeyConfig) { c.Screen.Width = 0 }},
		{"zero fps", func(c *AirHockeyConfig) { c.Screen.FPS = 0 }},
		{"negative friction", func(c *AirHockeyConfig) { c.Player.PhysicsBody.Friction = -1 }},
		{"negative mass", func(c *AirHockeyConfig) { c.Puck.PhysicsBody.Mass = -1 }},
		{"deadzone too large", func(c *AirHockeyConfig) { c.Controller.Deadzone = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAirHockeyConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected %v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultAirHockeyConfig()
	ApplyAirHockeyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Puck.Speed != 450 {
		t.Errorf("hard puck speed = %v, expected 450", cfg.Puck.Speed)
	}

	ApplyAirHockeyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	b := DefaultBumpersConfig()
	ApplyBumpersPreset(&b, DifficultyEasy)
	if b.Pucks != 4 {
		t.Errorf("easy pucks = %d, expected 4", b.Pucks)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"indigo", color.RGBA{0x4b, 0x00, 0x82, 0xff}, false},
		{" Blue ", color.RGBA{0x00, 0x00, 0xff, 0xff}, false},
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}, false},
		{"not-a-colour", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}

	fallback := color.RGBA{1, 2, 3, 255}
	if got := ColorOr("nope", fallback); got != fallback {
		t.Errorf("ColorOr() = %v, expected fallback", got)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airhockey.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  width: 800\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored.
	_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644)
	if err := os.WriteFile(path, []byte("screen:\n  width: 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event path = %q, expected %q", got, w.Path())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bumpers.yaml")
	_ = os.WriteFile(path, nil, 0o644)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	_ = w.Close()
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
}
