package doodle

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

type testRig struct {
	ctl      *Controller
	sched    *FrameScheduler
	clock    *core.ManualClock
	gameOver []int
}

func newTestRig(t *testing.T, opts ...Option) *testRig {
	t.Helper()
	r := &testRig{
		sched: NewFrameScheduler(),
		clock: core.NewManualClock(epoch),
	}
	opts = append([]Option{
		WithClock(r.clock),
		WithScheduler(r.sched),
		WithGameOver(func(score int) { r.gameOver = append(r.gameOver, score) }),
	}, opts...)

	ctl, err := NewController(config.DefaultDoodleConfig(), 400, 800, 42, opts...)
	if err != nil {
		t.Fatalf("NewController() failed: %v", err)
	}
	r.ctl = ctl
	return r
}

func (r *testRig) frame() bool {
	r.clock.Advance(time.Second / 60)
	return r.sched.Fire()
}

func TestControllerLifecycle(t *testing.T) {
	r := newTestRig(t)

	if r.ctl.State() != StateIdle {
		t.Fatalf("initial state = %v, expected idle", r.ctl.State())
	}
	if r.frame() {
		t.Error("idle controller scheduled a frame")
	}

	r.ctl.Start()
	if r.ctl.State() != StateRunning || !r.sched.Scheduled() {
		t.Fatalf("after Start: state=%v scheduled=%v", r.ctl.State(), r.sched.Scheduled())
	}
	for i := 0; i < 5; i++ {
		r.frame()
	}
	if got := r.ctl.Snapshot().Ticks; got != 5 {
		t.Errorf("ticks = %d, expected 5", got)
	}

	// Start while running changes nothing
	r.ctl.Start()
	if got := r.ctl.Snapshot().Ticks; got != 5 {
		t.Errorf("Start while running reset the run: ticks = %d", got)
	}

	r.ctl.Stop()
	if r.ctl.State() != StateIdle || r.sched.Scheduled() {
		t.Errorf("after Stop: state=%v scheduled=%v", r.ctl.State(), r.sched.Scheduled())
	}
	if r.frame() {
		t.Error("stopped controller still ticks")
	}
}

func TestControllerGameOverOnce(t *testing.T) {
	r := newTestRig(t)
	r.ctl.Start()
	r.frame()

	r.ctl.sim.player.Y = 5000
	r.frame()

	if r.ctl.State() != StateGameOver {
		t.Fatalf("state = %v, expected game_over", r.ctl.State())
	}
	if r.sched.Scheduled() {
		t.Error("ticks still scheduled after game over")
	}
	for i := 0; i < 3; i++ {
		r.frame()
	}
	if len(r.gameOver) != 1 {
		t.Errorf("game over callback fired %d times, expected 1", len(r.gameOver))
	}
	if snap := r.ctl.Snapshot(); snap.State != StateGameOver || snap.Cause != CauseFell {
		t.Errorf("snapshot state=%v cause=%v", snap.State, snap.Cause)
	}

	r.ctl.Start()
	if r.ctl.State() != StateRunning || r.ctl.Score() != 0 {
		t.Errorf("restart: state=%v score=%d", r.ctl.State(), r.ctl.Score())
	}
	if r.ctl.sim.player.Y != 700 {
		t.Errorf("restart did not reset the player: Y = %v", r.ctl.sim.player.Y)
	}
}

func TestControllerPause(t *testing.T) {
	r := newTestRig(t)
	r.ctl.Start()
	r.frame()

	r.ctl.SetPaused(true)
	for i := 0; i < 10; i++ {
		r.frame()
	}
	snap := r.ctl.Snapshot()
	if snap.Ticks != 1 || !snap.Paused {
		t.Errorf("paused: ticks=%d paused=%v", snap.Ticks, snap.Paused)
	}
	if r.ctl.State() != StateRunning {
		t.Errorf("pause left the running state: %v", r.ctl.State())
	}

	r.ctl.SetPaused(false)
	r.frame()
	if got := r.ctl.Snapshot().Ticks; got != 2 {
		t.Errorf("ticks = %d after resume, expected 2", got)
	}
}

func TestControllerResetKeepsState(t *testing.T) {
	r := newTestRig(t)
	r.ctl.Start()
	for i := 0; i < 3; i++ {
		r.frame()
	}

	r.ctl.Reset()
	if r.ctl.State() != StateRunning {
		t.Errorf("state = %v after Reset, expected running", r.ctl.State())
	}
	if got := r.ctl.Snapshot().Ticks; got != 0 {
		t.Errorf("ticks = %d after Reset, expected 0", got)
	}
}

func TestControllerHandleInput(t *testing.T) {
	r := newTestRig(t)

	// Accepted before the first Start
	r.ctl.HandleInput(InputLeft)
	if vx := r.ctl.Snapshot().Player.VX; vx != -8 {
		t.Errorf("VX = %v after left, expected -8", vx)
	}

	r.ctl.Start()
	r.ctl.HandleInput(InputRight)
	if vx := r.ctl.Snapshot().Player.VX; vx != 8 {
		t.Errorf("VX = %v after right, expected 8", vx)
	}
	r.ctl.HandleInput(InputStop)
	if vx := r.ctl.Snapshot().Player.VX; vx != 0 {
		t.Errorf("VX = %v after stop, expected 0", vx)
	}
}

func TestControllerHandleResize(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	r := newTestRig(t, WithLogger(logger))
	r.ctl.Start()

	if err := r.ctl.HandleResize(600, 900); err != nil {
		t.Fatalf("HandleResize() failed: %v", err)
	}
	if snap := r.ctl.Snapshot(); snap.Width != 600 || snap.Height != 900 {
		t.Errorf("viewport = %vx%v, expected 600x900", snap.Width, snap.Height)
	}

	if err := r.ctl.HandleResize(10, 10); err != nil {
		t.Fatalf("HandleResize() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "viewport clamped") {
		t.Errorf("clamp not logged: %q", buf.String())
	}

	if err := r.ctl.HandleResize(math.NaN(), 900); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("HandleResize(NaN) error = %v, expected ErrInvalidViewport", err)
	}
	if snap := r.ctl.Snapshot(); snap.Width != MinViewportW || snap.Height != MinViewportH {
		t.Errorf("rejected resize changed the viewport to %vx%v", snap.Width, snap.Height)
	}
}

func TestControllerLogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRig(t, WithLogger(log.New(&buf)))

	r.ctl.Start()
	r.ctl.sim.player.Y = 5000
	r.frame()

	out := buf.String()
	for _, want := range []string{"run started", "game over", "cause=fell"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestControllerTickObserver(t *testing.T) {
	var results []TickResult
	r := newTestRig(t, WithTickObserver(func(res TickResult) { results = append(results, res) }))
	r.ctl.Start()
	r.frame()
	r.frame()

	if len(results) != 2 {
		t.Errorf("observer saw %d ticks, expected 2", len(results))
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		in      string
		want    Input
		wantErr bool
	}{
		{"left", InputLeft, false},
		{"right", InputRight, false},
		{"stop", InputStop, false},
		{"jump", InputStop, true},
		{"", InputStop, true},
	}

	for _, tt := range tests {
		got, err := ParseInput(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownInput) {
				t.Errorf("ParseInput(%q) error = %v, expected ErrUnknownInput", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseInput(%q) = %v, %v; expected %v", tt.in, got, err, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("%v.String() = %q, expected %q", got, got.String(), tt.in)
		}
	}
}
