package doodle

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// RunState is the lifecycle state of a game.
type RunState int

const (
	StateIdle     RunState = iota // Not ticking
	StateRunning                  // Ticks are scheduled
	StateGameOver                 // Terminal until the next Start
)

// String returns the name of the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is a horizontal steering command.
type Input int

const (
	InputLeft Input = iota
	InputRight
	InputStop
)

// ErrUnknownInput is returned by ParseInput for unrecognised actions.
var ErrUnknownInput = errors.New("doodle: unknown input")

// ParseInput maps "left", "right" and "stop" to an Input.
func ParseInput(s string) (Input, error) {
	switch s {
	case "left":
		return InputLeft, nil
	case "right":
		return InputRight, nil
	case "stop":
		return InputStop, nil
	default:
		return InputStop, fmt.Errorf("%w: %q", ErrUnknownInput, s)
	}
}

// String returns the wire name of the input.
func (i Input) String() string {
	switch i {
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Scheduler runs a frame callback once per display frame until cancelled.
type Scheduler interface {
	Schedule(frame func())
	Cancel()
}

// FrameScheduler holds a frame callback and runs it whenever Fire is
// called. The TUI fires it from tick messages; tests fire it by hand.
type FrameScheduler struct {
	frame func()
}

// NewFrameScheduler creates a scheduler with nothing scheduled.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule registers the frame callback, replacing any previous one.
func (f *FrameScheduler) Schedule(frame func()) {
	f.frame = frame
}

// Cancel deregisters the frame callback.
func (f *FrameScheduler) Cancel() {
	f.frame = nil
}

// Scheduled reports whether a callback is registered.
func (f *FrameScheduler) Scheduled() bool {
	return f.frame != nil
}

// Fire runs the registered callback once. It returns false when nothing
// is scheduled.
func (f *FrameScheduler) Fire() bool {
	if f.frame == nil {
		return false
	}
	f.frame()
	return true
}

// Controller is the entry point for everything outside the simulation:
// lifecycle, input, resize and the per-frame tick.
type Controller struct {
	sim        *Simulation
	sched      Scheduler
	clock      core.Clock
	logger     *log.Logger
	onGameOver func(score int)
	onTick     func(TickResult)

	state    RunState
	paused   bool
	reported bool // onGameOver already fired for this run
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for power-up expiry.
func WithClock(c core.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithScheduler sets the frame scheduler.
func WithScheduler(s Scheduler) Option {
	return func(ctl *Controller) { ctl.sched = s }
}

// WithLogger sets the logger for lifecycle and tick events.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithGameOver sets the callback invoked once per run with the final score.
func WithGameOver(fn func(score int)) Option {
	return func(ctl *Controller) { ctl.onGameOver = fn }
}

// WithTickObserver sets a callback that sees the result of every tick.
func WithTickObserver(fn func(TickResult)) Option {
	return func(ctl *Controller) { ctl.onTick = fn }
}

// NewController creates an idle controller around a new simulation.
func NewController(cfg config.DoodleConfig, width, height float64, seed int64, opts ...Option) (*Controller, error) {
	sim, err := NewSimulation(cfg, width, height, seed)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		sim:    sim,
		sched:  NewFrameScheduler(),
		clock:  core.SystemClock{},
		logger: log.New(io.Discard),
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start begins a fresh run. It does nothing while a run is in progress.
func (c *Controller) Start() {
	if c.state == StateRunning {
		return
	}
	c.sim.Reset()
	c.reported = false
	c.paused = false
	c.state = StateRunning
	c.sched.Schedule(c.frame)

	w, h := c.sim.Viewport()
	c.logger.Info("run started", "width", w, "height", h, "platforms", len(c.sim.platforms))
}

// Stop cancels tick scheduling and returns to idle.
func (c *Controller) Stop() {
	c.sched.Cancel()
	if c.state != StateIdle {
		c.logger.Info("run stopped", "score", c.sim.Score(), "ticks", c.sim.Ticks())
	}
	c.state = StateIdle
}

// Reset reinitialises player, level and score without touching the run
// state. Effects and entities from the previous run are discarded.
func (c *Controller) Reset() {
	c.sim.Reset()
	c.reported = false
	c.logger.Debug("simulation reset", "state", c.state)
}

// HandleInput applies a steering command to the player. It is accepted in
// any state.
func (c *Controller) HandleInput(in Input) {
	switch in {
	case InputLeft:
		c.sim.player.MoveLeft()
	case InputRight:
		c.sim.player.MoveRight()
	case InputStop:
		c.sim.player.Stop()
	}
}

// HandleResize adapts the game to new viewport dimensions. Sizes below the
// minimum viewport are clamped; non-finite sizes are rejected.
func (c *Controller) HandleResize(width, height float64) error {
	if err := c.sim.Resize(width, height); err != nil {
		c.logger.Warn("resize rejected", "width", width, "height", height, "error", err)
		return err
	}
	w, h := c.sim.Viewport()
	if w != width || h != height {
		c.logger.Warn("viewport clamped", "requested_width", width, "requested_height", height, "width", w, "height", h)
	}
	return nil
}

// SetPaused freezes or resumes ticking without leaving the running state.
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
}

// Paused reports whether ticking is frozen.
func (c *Controller) Paused() bool {
	return c.paused
}

// State returns the lifecycle state.
func (c *Controller) State() RunState {
	return c.state
}

// Score returns the current score.
func (c *Controller) Score() int {
	return c.sim.Score()
}

// Snapshot returns a read-only copy of the current game state.
func (c *Controller) Snapshot() Snapshot {
	snap := c.sim.Snapshot(c.clock.Now())
	snap.State = c.state
	snap.Paused = c.paused
	return snap
}

// frame is the scheduled per-frame callback.
func (c *Controller) frame() {
	if c.state != StateRunning || c.paused {
		return
	}

	res := c.sim.Tick(c.clock.Now())
	if c.onTick != nil {
		c.onTick(res)
	}
	for _, ev := range res.Events {
		c.logger.Debug("tick event", "tick", c.sim.Ticks(), "event", ev.Kind, "platform", ev.Platform, "powerup", ev.PowerUp)
	}

	if !res.Over {
		return
	}

	c.state = StateGameOver
	c.sched.Cancel()
	c.logger.Info("game over", "score", c.sim.Score(), "ticks", c.sim.Ticks(), "cause", res.Cause)
	if !c.reported {
		c.reported = true
		if c.onGameOver != nil {
			c.onGameOver(c.sim.Score())
		}
	}
}
