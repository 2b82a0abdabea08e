package doodle

import "math"

// Autopilot picks steering commands from snapshots. It aims for the highest
// platform the player can still land on from the top of the current jump.
type Autopilot struct {
	Gravity float64 // Must match the simulation's gravity
	Speed   float64 // Player horizontal speed, used as the dead zone
}

// Decide returns the steering command for the next tick.
func (a Autopilot) Decide(snap Snapshot) Input {
	target, ok := a.target(snap)
	if !ok {
		return InputStop
	}

	dx := target.Box.CenterX() - snap.Player.Box.CenterX()
	switch {
	case dx < -a.Speed:
		return InputLeft
	case dx > a.Speed:
		return InputRight
	default:
		return InputStop
	}
}

// target finds the landing platform. While rising, only platforms below the
// apex of the jump are reachable.
func (a Autopilot) target(snap Snapshot) (PlatformView, bool) {
	feet := snap.Player.Box.Bottom()
	if vy := snap.Player.VY; vy < 0 && a.Gravity > 0 {
		feet -= vy * vy / (2 * a.Gravity)
	}

	var best PlatformView
	found := false
	for _, p := range snap.Platforms {
		if p.Broken || p.Box.Y < feet {
			continue
		}
		if !snap.Player.HasShield && guarded(p, snap.Monsters) {
			continue
		}
		if !found || p.Box.Y < best.Box.Y {
			best = p
			found = true
		}
	}
	return best, found
}

// guarded reports whether a monster patrols the platform.
func guarded(p PlatformView, monsters []MonsterView) bool {
	for _, m := range monsters {
		if math.Abs(m.Box.Bottom()-p.Box.Y) < 1 && m.Box.Right() > p.Box.X && m.Box.X < p.Box.Right() {
			return true
		}
	}
	return false
}
