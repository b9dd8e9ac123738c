package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-physics/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a desktop window.

Unlike the terminal, a window reports key releases and standard gamepads.
The first connected gamepad drives the player alongside the keyboard.

Controls:
  Arrows/WASD, left stick - Move
  Space, A button         - Serve / reset the puck
  Esc, Start              - End the run
  P                       - Pause
  R                       - Restart (after the run ended)
  Q                       - Quit

Examples:
  arcade window airhockey
  arcade window bumpers --scale 0.75 --fps 120`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the play-field")
}

func runWindow(_ *cobra.Command, args []string) {
	game := createGame(args[0])

	logger, closeLog, err := newLogger("arcade-window", false)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	if err := window.Run(game, cfg, window.Options{
		Store:  store,
		Logger: logger,
		Scale:  flagScale,
	}); err != nil {
		logger.Error("window closed with error", "error", err)
	}
}
