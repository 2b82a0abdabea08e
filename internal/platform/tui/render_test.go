package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.SetColored(5, 1, '█', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("unknown color dropped the cell: %q", lines[1])
	}
}
