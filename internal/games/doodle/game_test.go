package doodle

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for id, title := range map[string]string{
		config.VariantDoodle:  "Doodle Jump",
		config.VariantClassic: "Doodle Jump (Classic)",
	} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("game %q has ID=%q Title=%q", id, g.ID(), g.Title())
		}
	}
}

func TestGameViewportFromScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	snap := g.Snapshot()
	if snap.Width != 400 || snap.Height != 780 {
		t.Errorf("viewport = %vx%v, expected 400x780", snap.Width, snap.Height)
	}
	if snap.State != StateRunning {
		t.Errorf("state = %v after Reset, expected running", snap.State)
	}

	g.Resize(100, 60)
	snap = g.Snapshot()
	if snap.Width != 500 || snap.Height != 1180 {
		t.Errorf("viewport = %vx%v after resize, expected 500x1180", snap.Width, snap.Height)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 20:
			inputs[i].Set(core.ActionLeft)
		case i%90 < 40:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (core.GameState, Snapshot) {
		g := New()
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
		}
		return state, g.Snapshot()
	}

	state1, snap1 := run()
	state2, snap2 := run()
	if state1 != state2 {
		t.Errorf("states differ: %+v vs %+v", state1, state2)
	}
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ: ticks %d vs %d", snap1.Ticks, snap2.Ticks)
	}
}

func TestGameSteerRelease(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime(1))

	g.Step(frameWith(core.ActionLeft))
	if vx := g.Snapshot().Player.VX; vx != -8 {
		t.Fatalf("VX = %v after left, expected -8", vx)
	}

	empty := core.NewInputFrame()
	for i := 0; i < 35; i++ {
		g.Step(empty)
	}
	if vx := g.Snapshot().Player.VX; vx != -8 {
		t.Errorf("VX = %v before the release timeout, expected -8", vx)
	}
	g.Step(empty)
	if vx := g.Snapshot().Player.VX; vx != 0 {
		t.Errorf("VX = %v after the release timeout, expected 0", vx)
	}

	g.Step(frameWith(core.ActionRight))
	g.Step(frameWith(core.ActionStop))
	if vx := g.Snapshot().Player.VX; vx != 0 {
		t.Errorf("VX = %v after stop, expected 0", vx)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	state := g.Step(frameWith(core.ActionPause)).State
	if !state.Paused {
		t.Fatal("pause key did not pause")
	}
	ticks := g.Snapshot().Ticks
	for i := 0; i < 10; i++ {
		g.Step(frameWith(core.ActionLeft))
	}
	if g.Snapshot().Ticks != ticks {
		t.Error("game ticked while paused")
	}
	if g.Snapshot().Player.VX != 0 {
		t.Error("steering applied while paused")
	}

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay not rendered")
	}

	state = g.Step(frameWith(core.ActionPause)).State
	if state.Paused || g.Snapshot().Ticks != ticks+1 {
		t.Errorf("resume: paused=%v ticks=%d", state.Paused, g.Snapshot().Ticks)
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	// Restart is ignored while running
	g.Step(frameWith(core.ActionRestart))
	if g.Snapshot().Ticks != 2 {
		t.Errorf("ticks = %d, restart must not interrupt a running game", g.Snapshot().Ticks)
	}

	g.ctl.sim.player.Y = 5000
	if state := g.Step(core.NewInputFrame()).State; !state.GameOver {
		t.Fatal("falling off the bottom did not end the game")
	}

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay not rendered")
	}

	state := g.Step(frameWith(core.ActionRestart)).State
	if state.GameOver || state.Score != 0 {
		t.Errorf("after restart: %+v", state)
	}
	if g.Snapshot().State != StateRunning {
		t.Errorf("state = %v after restart, expected running", g.Snapshot().State)
	}
}

func TestGameRestartGeneratesOneLevel(t *testing.T) {
	endRun := func() *Game {
		g := New()
		g.Reset(testRuntime(3))
		g.Step(core.NewInputFrame())
		g.ctl.sim.player.Y = 5000
		g.Step(core.NewInputFrame())
		if g.ctl.State() != StateGameOver {
			t.Fatalf("state = %v, expected game over", g.ctl.State())
		}
		return g
	}

	restarted := endRun()
	restarted.Step(frameWith(core.ActionRestart))

	started := endRun()
	started.ctl.Start()

	got, want := restarted.Snapshot(), started.Snapshot()
	if !reflect.DeepEqual(got.Platforms, want.Platforms) {
		t.Error("restart built a different level than a single Start")
	}
	if got.Ticks != 0 || got.Player != want.Player {
		t.Errorf("after restart: ticks=%d player=%+v, expected 0 and %+v", got.Ticks, got.Player, want.Player)
	}
}

func TestGameCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doodle.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g := New()
	g.Reset(testRuntime(1))
	g.Step(frameWith(core.ActionRight))

	if vx := g.Snapshot().Player.VX; vx != 12 {
		t.Errorf("VX = %v, expected configured speed 12", vx)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), " Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	players, platforms := 0, 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			switch screen.Get(x, y) {
			case PlayerChar:
				players++
			case PlatformChar:
				platforms++
			}
		}
	}
	if players == 0 {
		t.Error("player not drawn")
	}
	if platforms == 0 {
		t.Error("no normal platforms drawn")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Need 20x11") {
		t.Errorf("expected size hint, got:\n%s", screen.String())
	}
}

func TestEffectsString(t *testing.T) {
	snap := Snapshot{Effects: []EffectView{
		{Kind: PowerUpShield, Remaining: 4200 * time.Millisecond},
		{Kind: PowerUpJetpack, Remaining: time.Second},
	}}
	if got := effectsString(snap); got != "SHIELD(5) JETPACK(1)" {
		t.Errorf("effectsString() = %q", got)
	}
	if got := effectsString(Snapshot{}); got != "" {
		t.Errorf("effectsString() with no effects = %q", got)
	}
}
