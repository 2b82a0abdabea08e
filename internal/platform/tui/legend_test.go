package tui

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

func TestLegendRows(t *testing.T) {
	rows := legendRows(config.DefaultDoodleConfig())

	want := map[string]string{
		"Platform":  "60%",
		"Breakable": "15%",
		"Moving":    "15%",
		"Bouncy":    "10%",
		"Monster":   "20%",
		"Shield":    "5%",
		"Jetpack":   "5%",
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, expected %d", len(rows), len(want))
	}
	for _, row := range rows {
		chance, ok := want[row[1]]
		if !ok {
			t.Errorf("unexpected row %v", row)
			continue
		}
		if row[2] != chance {
			t.Errorf("%s chance = %s, expected %s", row[1], row[2], chance)
		}
	}
	if rows[0][0] != string(doodle.PlatformChar) {
		t.Errorf("platform glyph = %q", rows[0][0])
	}
	if rows[6][3] != "jumps x1.5 for 5s" {
		t.Errorf("jetpack effect = %q", rows[6][3])
	}
}

func TestLegendRowsClassic(t *testing.T) {
	rows := legendRows(config.DefaultClassicConfig())
	if len(rows) != 1 || rows[0][1] != "Platform" || rows[0][2] != "100%" {
		t.Errorf("classic legend = %v, expected only plain platforms", rows)
	}
}
