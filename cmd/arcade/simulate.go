package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-physics/internal/loop"
	"github.com/vovakirdan/arcade-physics/internal/registry"
)

var (
	flagTicks    uint64
	flagRealtime bool
	flagNoSave   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless for a number of ticks",
	Long: `Run the specified game without a frontend. The physics loop is
driven by its own clock until --ticks steps have run or Ctrl+C is pressed,
then the final positions are logged and the run is saved.

With the same --seed and --fps, a simulation is fully reproducible.

Examples:
  arcade simulate bumpers --ticks 3600 --seed 42
  arcade simulate airhockey --ticks 600 --realtime --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks with the wall clock instead of running flat out")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the scores database")
}

func runSimulate(_ *cobra.Command, args []string) {
	game := createGame(args[0])

	logger, closeLog, err := newLogger("arcade-sim", false)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	sim, ok := game.(registry.Simulation)
	if !ok {
		exitf("game %q has no physics loop to simulate", game.ID())
	}

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	lp := sim.Loop()
	if lp == nil {
		exitf("game %q failed to set up", game.ID())
	}

	var clock loop.Clock = loop.FixedClock{}
	if flagRealtime {
		clock = loop.NewFrameClock()
	}
	if err := lp.Configure(
		loop.WithFPS(cfg.TickRate),
		loop.WithClock(clock),
		loop.WithLogger(logger),
		loop.WithQuit(func() bool { return lp.Ticks() >= flagTicks }),
	); err != nil {
		exitf("configuring loop: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "game", game.ID(), "ticks", flagTicks, "fps", cfg.TickRate, "seed", cfg.Seed)
	start := time.Now()
	err = lp.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation failed", "error", err)
	}

	state := game.State()
	logger.Info("simulation done",
		"ticks", lp.Ticks(),
		"collisions", lp.Collisions(),
		"score", state.Score,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	for _, sp := range lp.Snapshot() {
		logger.Info("final", "id", sp.ID, "position", sp.Position, "radius", sp.Radius)
	}

	if flagNoSave {
		return
	}
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()
	id, err := store.SaveRun(registry.Record(game, cfg.Seed))
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
