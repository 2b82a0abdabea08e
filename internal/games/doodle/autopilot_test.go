package doodle

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func TestAutopilotDecide(t *testing.T) {
	left := PlatformView{Box: core.Box{X: 0, Y: 750, W: 80, H: 15}}
	high := PlatformView{Box: core.Box{X: 300, Y: 600, W: 80, H: 15}}
	guard := MonsterView{Box: core.Box{X: 325, Y: 570, W: 30, H: 30}}
	under := PlatformView{Box: core.Box{X: 160, Y: 750, W: 80, H: 15}}

	player := func(vy float64, shield bool) PlayerView {
		return PlayerView{Box: core.Box{X: 185, Y: 700, W: 30, H: 30}, VY: vy, HasShield: shield}
	}

	tests := []struct {
		name string
		snap Snapshot
		want Input
	}{
		{
			name: "falling ignores platforms above the feet",
			snap: Snapshot{Player: player(2, false), Platforms: []PlatformView{left, high}},
			want: InputLeft,
		},
		{
			name: "rising aims below the apex",
			snap: Snapshot{Player: player(-18, false), Platforms: []PlatformView{left, high}},
			want: InputRight,
		},
		{
			name: "avoids guarded platforms",
			snap: Snapshot{Player: player(-18, false), Platforms: []PlatformView{left, high}, Monsters: []MonsterView{guard}},
			want: InputLeft,
		},
		{
			name: "shield ignores monsters",
			snap: Snapshot{Player: player(-18, true), Platforms: []PlatformView{left, high}, Monsters: []MonsterView{guard}},
			want: InputRight,
		},
		{
			name: "aligned stops",
			snap: Snapshot{Player: player(2, false), Platforms: []PlatformView{under}},
			want: InputStop,
		},
		{
			name: "skips broken platforms",
			snap: Snapshot{Player: player(2, false), Platforms: []PlatformView{{Box: under.Box, Broken: true}, left}},
			want: InputLeft,
		},
		{
			name: "nothing reachable",
			snap: Snapshot{Player: player(2, false)},
			want: InputStop,
		},
	}

	pilot := Autopilot{Gravity: 0.5, Speed: 8}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pilot.Decide(tt.snap); got != tt.want {
				t.Errorf("Decide() = %v, expected %v", got, tt.want)
			}
		})
	}
}
