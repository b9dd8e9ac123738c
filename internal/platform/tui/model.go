package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-physics/internal/config"
	"github.com/vovakirdan/arcade-physics/internal/core"
	"github.com/vovakirdan/arcade-physics/internal/registry"
	"github.com/vovakirdan/arcade-physics/internal/storage"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHoldTicks = 8

// Options tunes a game model.
type Options struct {
	Store     *storage.Store
	Watcher   *config.Watcher // Reloads the game config on change when set
	Preset    config.DifficultyPreset
	Logger    *log.Logger
	HoldTicks int
	Embedded  bool // B returns to the menu instead of being ignored
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	held       map[core.Key]int
	holdTicks  int
	inputFrame core.InputFrame
	gameState  core.GameState
	watcher    *config.Watcher
	preset     config.DifficultyPreset
	logger     *log.Logger
	status     string
	embedded   bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      opts.Store,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		held:       make(map[core.Key]int),
		holdTicks:  opts.HoldTicks,
		inputFrame: core.NewInputFrame(),
		watcher:    opts.Watcher,
		preset:     opts.Preset,
		logger:     opts.Logger,
		embedded:   opts.Embedded,
	}
}

// playHeight leaves the last terminal row for the help footer.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.watcher))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	case ConfigChangedMsg:
		return m.handleConfigChange(msg)
	case WatchErrorMsg:
		m.logger.Warn("config watcher", "error", msg.Err)
		return m, watchCmd(m.watcher)
	}
	return m, nil
}

// handleKey records held keys and one-shot actions for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.embedded && key.Matches(msg, m.keys.Keys().Back) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	held, action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	if held != core.KeyUnknown {
		m.held[held] = m.holdTicks
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The simulation keeps its own
// world units, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick builds the input frame and advances the game one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	for k, n := range m.held {
		m.inputFrame.Press(k)
		if n <= 1 {
			delete(m.held, k)
			continue
		}
		m.held[k] = n - 1
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleConfigChange reloads the game config and restarts the game.
func (m Model) handleConfigChange(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	c, ok := m.game.(registry.Configurable)
	if !ok {
		return m, watchCmd(m.watcher)
	}
	if err := c.Configure(msg.Path, m.preset); err != nil {
		m.logger.Warn("config reload failed", "path", msg.Path, "error", err)
		m.status = "config error"
		return m, watchCmd(m.watcher)
	}
	m.logger.Info("config reloaded", "path", msg.Path)
	m.status = "config reloaded"
	m.restart()
	return m, watchCmd(m.watcher)
}

func (m *Model) restart() {
	m.saveRun()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	clear(m.held)
}

// saveRun records the current run once. Runs that never ticked are skipped.
func (m *Model) saveRun() {
	if m.scoreSaved || m.store == nil {
		return
	}
	run := registry.Record(m.game, m.config.Seed)
	if run.Ticks == 0 && run.Score == 0 {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "error", err)
	}
	m.scoreSaved = true
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the game.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.DrawScene(m.game.Scene())
	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = fmt.Sprintf("%s  %s", statusStyle.Render(m.status), footer)
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
