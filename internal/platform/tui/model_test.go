package tui

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/storage"
)

// recorder is a game that remembers the frames it was stepped with.
type recorder struct {
	frames []core.InputFrame
	state  core.GameState
	resets int
}

func (r *recorder) ID() string               { return "recorder" }
func (r *recorder) Title() string            { return "Recorder" }
func (r *recorder) Reset(core.RuntimeConfig) { r.resets++; r.state = core.GameState{} }
func (r *recorder) Scene() core.Scene        { return core.Scene{Width: 10, Height: 10} }
func (r *recorder) State() core.GameState    { return r.state }
func (r *recorder) Step(in core.InputFrame) core.StepResult {
	r.frames = append(r.frames, in.Clone())
	if in.Keyboard()[core.KeyEscape] {
		r.state.GameOver = true
	}
	r.state.Score++
	return core.StepResult{State: r.state}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		held   core.Key
		action core.Action
		quit   bool
	}{
		{"up", core.KeyUp, core.ActionNone, false},
		{"a", core.KeyA, core.ActionNone, false},
		{"esc", core.KeyEscape, core.ActionNone, false},
		{"p", core.KeyUnknown, core.ActionPause, false},
		{"r", core.KeyUnknown, core.ActionRestart, false},
		{"q", core.KeyUnknown, core.ActionQuit, true},
		{"ctrl+c", core.KeyUnknown, core.ActionQuit, true},
		{"x", core.KeyUnknown, core.ActionNone, false},
	}

	for _, tt := range tests {
		held, action, quit := km.MapKey(keyMsg(tt.key))
		if held != tt.held || action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v, %v, expected %v, %v, %v",
				tt.key, held, action, quit, tt.held, tt.action, tt.quit)
		}
	}
}

func TestHeldKeyDecays(t *testing.T) {
	game := &recorder{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, Options{HoldTicks: 3})
	m.Init()

	m = step(t, m, keyMsg("up"))
	for range 5 {
		m = step(t, m, TickMsg{})
	}

	if len(game.frames) != 5 {
		t.Fatalf("game stepped %d times, expected 5", len(game.frames))
	}
	for i, f := range game.frames {
		held := f.Keyboard()[core.KeyUp]
		if expected := i < 3; held != expected {
			t.Errorf("tick %d: KeyUp held = %v, expected %v", i, held, expected)
		}
	}
}

func TestActionsLastOneTick(t *testing.T) {
	game := &recorder{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	m = step(t, m, keyMsg("p"))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if !game.frames[0].Has(core.ActionPause) {
		t.Error("first frame should carry ActionPause")
	}
	if game.frames[1].Has(core.ActionPause) {
		t.Error("second frame should not carry ActionPause")
	}
}

func TestGameOverSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	game := &recorder{}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 7}, Options{Store: store})
	m.Init()

	m = step(t, m, TickMsg{})
	m = step(t, m, keyMsg("esc"))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if !m.GameState().GameOver {
		t.Fatal("expected game over after escape")
	}
	runs, err := store.TopRuns("recorder", 10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("TopRuns() returned %d runs, expected 1", len(runs))
	}
	if runs[0].Seed != 7 {
		t.Errorf("run seed = %d, expected 7", runs[0].Seed)
	}

	m = step(t, m, keyMsg("r"))
	m = step(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if m.GameState().GameOver {
		t.Error("restart should clear game over")
	}
}

func TestBackToMenuOnlyWhenEmbedded(t *testing.T) {
	game := &recorder{state: core.GameState{GameOver: true}}

	m := NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1}, Options{})
	m.gameState = game.state
	m = step(t, m, keyMsg("b"))
	if m.BackToMenu() {
		t.Error("standalone model should ignore B")
	}

	m = NewModel(game, core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1}, Options{Embedded: true})
	m.gameState = game.state
	m = step(t, m, keyMsg("b"))
	if !m.BackToMenu() {
		t.Error("embedded model should go back to menu on B after game over")
	}
}

func TestHexColor(t *testing.T) {
	got := hexColor(color.RGBA{0x4b, 0x00, 0x82, 0xff})
	if got != "#4b0082" {
		t.Errorf("hexColor() = %q, expected %q", got, "#4b0082")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab")
	s.SetCell(3, 0, core.Cell{Rune: 'x', Color: color.RGBA{0xff, 0, 0, 0xff}})

	out := RenderScreen(s)
	for _, want := range []string{"ab", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, expected it to contain %q", out, want)
		}
	}
}

