package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-physics/internal/config"
	"github.com/vovakirdan/arcade-physics/internal/platform/tui"
	"github.com/vovakirdan/arcade-physics/internal/registry"
	"github.com/vovakirdan/arcade-physics/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD - Move
  Space       - Serve / reset the puck
  Esc         - End the run
  P           - Pause
  R           - Restart (after the run ended)
  Q/Ctrl+C    - Quit

Terminals report key presses but not releases, so a key counts as held
for a few ticks after each press or auto-repeat.

Difficulty options:
  easy   - Slower pieces, softer walls
  normal - Config defaults
  hard   - Faster pieces, perfectly elastic walls
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play airhockey
  arcade play bumpers --difficulty hard
  arcade play airhockey --config ./my-airhockey.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --config file when it changes")
}

// addGameFlags registers the flags shared by the commands that build a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// createGame checks the id and builds a configured game.
func createGame(gameID string) registry.Game {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	game, err := registry.CreateConfigured(gameID, flagConfig, config.DifficultyPreset(flagDifficulty))
	if err != nil {
		exitf("creating game: %v", err)
	}
	return game
}

// openStore opens the runs database, or returns nil so games still work.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	game := createGame(args[0])

	logger, closeLog, err := newLogger("arcade", true)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	var watcher *config.Watcher
	if flagWatch {
		if flagConfig == "" {
			exitf("--watch needs --config")
		}
		watcher, err = config.NewWatcher(flagConfig)
		if err != nil {
			exitf("watching config: %v", err)
		}
		defer watcher.Close()
		logger.Info("watching config", "path", watcher.Path())
	}

	store := openStore()

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:   store,
		Watcher: watcher,
		Preset:  config.DifficultyPreset(flagDifficulty),
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
