package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

var (
	flagSimRuns    int
	flagSimTicks   int
	flagSimWidth   float64
	flagSimHeight  float64
	flagSimVariant string
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games steered by the autopilot",
	Long: `Run games without a terminal. A simple autopilot steers toward the
highest reachable platform; every run logs its score, length and how it
ended. Useful for tuning configs and difficulty presets.

Run i uses seed --seed + i, so a batch is reproducible when --seed is set.

Examples:
  doodle sim
  doodle sim --runs 50 --seed 7
  doodle sim --variant doodle_classic --difficulty hard --verbose`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Tick limit per run")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 400, "Viewport width in world units")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 800, "Viewport height in world units")
	simCmd.Flags().StringVar(&flagSimVariant, "variant", config.VariantDoodle, "Variant config to simulate")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log run lifecycle and every game over")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "doodle-sim",
	})
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadDoodle(flagConfig, flagSimVariant)
	if err != nil {
		logger.Warn("using default config", "variant", flagSimVariant, "err", err)
		cfg = config.DefaultFor(flagSimVariant)
	}
	config.ApplyDoodlePreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := doodle.HeadlessOptions{
		Width:    flagSimWidth,
		Height:   flagSimHeight,
		TickRate: flagFPS,
		MaxTicks: flagSimTicks,
	}
	if flagSimVerbose {
		opts.Logger = logger
	}

	var total, best, ended int
	for i := 0; i < flagSimRuns; i++ {
		res, err := doodle.RunHeadless(cfg, seed+int64(i), opts)
		if err != nil {
			logger.Error("run failed", "seed", seed+int64(i), "err", err)
			os.Exit(1)
		}
		logger.Info("run finished",
			"seed", res.Seed,
			"score", res.Score,
			"ticks", res.Ticks,
			"cause", res.Cause,
			"jumps", res.Events[doodle.EventJump],
			"bounces", res.Events[doodle.EventBounce],
			"breaks", res.Events[doodle.EventBreak],
			"pickups", res.Events[doodle.EventPickup],
		)
		total += res.Score
		best = max(best, res.Score)
		if res.Cause != doodle.CauseNone {
			ended++
		}
	}

	if flagSimRuns == 0 {
		return
	}
	fmt.Printf("runs: %d  ended: %d  best: %d  mean: %.1f\n",
		flagSimRuns, ended, best, float64(total)/float64(flagSimRuns))
}
