// Package doodle implements a Doodle Jump-style vertical platformer.
// The player bounces between procedurally generated platforms while the
// world scrolls down, avoiding monsters and collecting power-ups.
package doodle

import (
	"time"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Controller to the registry Game interface: it maps input
// frames to steering, advances a frame clock and projects the world onto
// a terminal screen.
type Game struct {
	variant string
	runtime core.RuntimeConfig
	cfg     config.DoodleConfig

	ctl   *Controller
	sched *FrameScheduler
	clock *core.ManualClock
	frame time.Duration

	steering  bool // Moving because of a steer key
	idleTicks int  // Ticks since the last steer key
}

// New creates the full game.
func New() *Game {
	return &Game{variant: config.VariantDoodle}
}

// NewClassic creates the classic variant: plain platforms only.
func NewClassic() *Game {
	return &Game{variant: config.VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Doodle Jump (Classic)"
	}
	return "Doodle Jump"
}

// Reset loads the configuration and starts a new run sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDoodle(configPath, g.variant)
	if err != nil {
		cfg = config.DefaultFor(g.variant)
	}
	config.ApplyDoodlePreset(&cfg, difficultyPreset)
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.clock = core.NewManualClock(time.Unix(0, 0))
	g.sched = NewFrameScheduler()
	g.steering = false
	g.idleTicks = 0

	w, h := g.viewport(runtime.ScreenW, runtime.ScreenH)
	// The viewport is always finite, so construction cannot fail.
	g.ctl, _ = NewController(cfg, w, h, runtime.Seed,
		WithClock(g.clock),
		WithScheduler(g.sched),
	)
	g.ctl.Start()
}

// Resize adapts the running game to a new screen size without restarting.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	w, h := g.viewport(screenW, screenH)
	_ = g.ctl.HandleResize(w, h)
}

// viewport converts a screen size in cells to world units.
func (g *Game) viewport(screenW, screenH int) (float64, float64) {
	rows := max(screenH-hudRows, 0)
	return float64(screenW) * g.cfg.Render.CellWidth, float64(rows) * g.cfg.Render.CellHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.ctl.State() == StateGameOver {
		g.ctl.Start()
		g.steering = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.ctl.State() == StateRunning {
		g.ctl.SetPaused(!g.ctl.Paused())
	}
	if g.ctl.Paused() {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)

	g.clock.Advance(g.frame)
	g.sched.Fire()

	return core.StepResult{State: g.State()}
}

// steer forwards steering actions. Terminals report key presses but not
// releases, so a steer key counts as held until it stops repeating.
func (g *Game) steer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionStop):
		g.ctl.HandleInput(InputStop)
		g.steering = false
	case in.Has(core.ActionLeft):
		g.ctl.HandleInput(InputLeft)
		g.steering = true
		g.idleTicks = 0
	case in.Has(core.ActionRight):
		g.ctl.HandleInput(InputRight)
		g.steering = true
		g.idleTicks = 0
	case g.steering && g.cfg.Input.ReleaseTicks > 0:
		g.idleTicks++
		if g.idleTicks >= g.cfg.Input.ReleaseTicks {
			g.ctl.HandleInput(InputStop)
			g.steering = false
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctl.Score(),
		GameOver: g.ctl.State() == StateGameOver,
		Paused:   g.ctl.Paused(),
	}
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.ctl.Snapshot()
}

// Register the game variants with the registry
func init() {
	registry.Register(config.VariantDoodle, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantClassic, func() registry.Game {
		return NewClassic()
	})
}
