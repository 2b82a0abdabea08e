package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets  int
	resized [2]int
	inputs  []core.InputFrame
	state   core.GameState
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState       { return g.state }
func (g *stubGame) Resize(screenW, screenH int) { g.resized = [2]int{screenW, screenH} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.state}
}

func newStubModel() (*stubGame, Model) {
	g := &stubGame{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	return g, NewModel(g, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelKeysReachNextTick(t *testing.T) {
	g, m := newStubModel()
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init reset the game %d times, expected 1", g.resets)
	}

	m, _ = update(t, m, runeKey('a'))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if len(g.inputs) != 1 || !g.inputs[0].Has(core.ActionLeft) {
		t.Fatalf("first step input = %+v, expected Left", g.inputs)
	}

	update(t, m, TickMsg{})
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("input frame was not cleared after the tick")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	g, m := newStubModel()
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	if g.resized != [2]int{100, 50} {
		t.Errorf("game resized to %v, expected [100 50]", g.resized)
	}
	if g.resets != 1 {
		t.Error("resizable game was reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 50 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBackToMenu(t *testing.T) {
	g, m := newStubModel()

	// Ignored while playing
	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back accepted during play")
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() || cmd == nil {
		t.Error("back not accepted after game over")
	}
}

func TestModelQuit(t *testing.T) {
	_, m := newStubModel()
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestModelView(t *testing.T) {
	_, m := newStubModel()
	if !strings.HasPrefix(m.View(), "stub") {
		t.Errorf("View() = %q", m.View())
	}
}
