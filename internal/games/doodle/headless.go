package doodle

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// RunResult summarises one headless run.
type RunResult struct {
	Seed   int64
	Score  int
	Ticks  int
	Cause  EndCause // CauseNone when the tick limit was hit first
	Events map[EventKind]int
}

// HeadlessOptions configures RunHeadless.
type HeadlessOptions struct {
	Width, Height float64
	TickRate      int
	MaxTicks      int
	Logger        *log.Logger // Optional
}

// RunHeadless plays one run steered by the autopilot, without a terminal,
// until it ends or MaxTicks ticks have passed.
func RunHeadless(cfg config.DoodleConfig, seed int64, opts HeadlessOptions) (RunResult, error) {
	result := RunResult{Seed: seed, Events: make(map[EventKind]int)}

	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	clock := core.NewManualClock(time.Unix(0, 0))
	sched := NewFrameScheduler()

	ctlOpts := []Option{
		WithClock(clock),
		WithScheduler(sched),
		WithTickObserver(func(tr TickResult) {
			for _, ev := range tr.Events {
				result.Events[ev.Kind]++
			}
		}),
	}
	if opts.Logger != nil {
		ctlOpts = append(ctlOpts, WithLogger(opts.Logger.With("seed", seed)))
	}

	ctl, err := NewController(cfg, opts.Width, opts.Height, seed, ctlOpts...)
	if err != nil {
		return result, err
	}

	pilot := Autopilot{Gravity: cfg.Physics.Gravity, Speed: cfg.Player.Speed}
	frame := time.Second / time.Duration(tickRate)

	ctl.Start()
	for i := 0; i < opts.MaxTicks && ctl.State() == StateRunning; i++ {
		ctl.HandleInput(pilot.Decide(ctl.Snapshot()))
		clock.Advance(frame)
		sched.Fire()
	}

	snap := ctl.Snapshot()
	result.Score = snap.Score
	result.Ticks = snap.Ticks
	result.Cause = snap.Cause
	ctl.Stop()
	return result, nil
}
