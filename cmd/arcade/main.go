// arcade is a 2D physics arcade: air hockey and bumper pucks driven by a
// fixed-timestep loop, played in the terminal, in a window, or headless.
//
// Usage:
//
//	arcade list                - List available games
//	arcade play <game>         - Play a game in the terminal
//	arcade window <game>       - Play a game in a desktop window
//	arcade simulate <game>     - Run a game headless for a number of ticks
//	arcade menu                - Start menu to pick games interactively
//	arcade serve               - Start SSH server for remote play
//	arcade scores [game]       - Show best runs
//	arcade config <game>       - Print the default config for a game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-physics/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-physics/internal/games/airhockey"
	_ "github.com/vovakirdan/arcade-physics/internal/games/bumpers"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Physics Arcade - air hockey and bumpers on a fixed-timestep loop",
	Long: `Physics Arcade runs small 2D physics games: bodies with mass, friction
and elastic collisions, clamped to a play-field and driven by keyboard or
gamepad controllers.

Available commands:
  list      - Show all available games
  play      - Play a game in the terminal
  window    - Play a game in a desktop window
  simulate  - Run a game headless and print the result
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View best runs
  config    - Print or write a game's default config

Examples:
  arcade list
  arcade play airhockey
  arcade window bumpers
  arcade simulate bumpers --ticks 600 --seed 42
  arcade serve --ssh :2222
  arcade scores airhockey`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger. Terminal frontends pass quiet=true so
// that nothing is written over the alt screen unless --log-file is set.
// The returned closer must be called when the command ends.
func newLogger(prefix string, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
