package doodle

import (
	"time"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It shares no memory with the simulation.
type Snapshot struct {
	Width, Height float64
	Score         int
	Ticks         int
	State         RunState
	Paused        bool
	Cause         EndCause
	Difficulty    float64

	Player    PlayerView
	Platforms []PlatformView
	Monsters  []MonsterView
	PowerUps  []PowerUpView
	Effects   []EffectView
}

// PlayerView is the drawable state of the player.
type PlayerView struct {
	Box        core.Box
	VX, VY     float64
	HasShield  bool
	HasJetpack bool
}

// PlatformView is the drawable state of a platform.
type PlatformView struct {
	Box    core.Box
	Kind   PlatformKind
	Broken bool
}

// MonsterView is the drawable state of a monster.
type MonsterView struct {
	Box core.Box
}

// PowerUpView is the drawable state of an uncollected power-up.
type PowerUpView struct {
	Box  core.Box
	Kind PowerUpKind
}

// EffectView describes a running effect and how long it has left.
type EffectView struct {
	Kind      PowerUpKind
	Remaining time.Duration
}

// Snapshot copies the current state. now is used to compute the remaining
// time of running effects.
func (s *Simulation) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Width:      s.width,
		Height:     s.height,
		Score:      s.score,
		Ticks:      s.ticks,
		Cause:      s.cause,
		Difficulty: s.DifficultyLevel(),
		Player: PlayerView{
			Box:        s.player.Box(),
			VX:         s.player.VX,
			VY:         s.player.VY,
			HasShield:  s.player.HasShield,
			HasJetpack: s.player.HasJetpack,
		},
		Platforms: make([]PlatformView, 0, len(s.platforms)),
		Monsters:  make([]MonsterView, 0, len(s.monsters)),
		PowerUps:  make([]PowerUpView, 0, len(s.powerUps)),
		Effects:   make([]EffectView, 0, len(s.effects)),
	}

	for _, p := range s.platforms {
		snap.Platforms = append(snap.Platforms, PlatformView{Box: p.Box, Kind: p.Kind, Broken: p.State.Broken})
	}
	for _, m := range s.monsters {
		snap.Monsters = append(snap.Monsters, MonsterView{Box: m.Box})
	}
	for _, pu := range s.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{Box: pu.Box, Kind: pu.Kind})
	}
	for _, e := range s.effects {
		snap.Effects = append(snap.Effects, EffectView{Kind: e.Kind, Remaining: max(0, e.Expiry.Sub(now))})
	}
	return snap
}

// EffectRemaining returns the longest remaining time among running effects
// of a kind, or 0.
func (snap Snapshot) EffectRemaining(kind PowerUpKind) time.Duration {
	var longest time.Duration
	for _, e := range snap.Effects {
		if e.Kind == kind {
			longest = max(longest, e.Remaining)
		}
	}
	return longest
}
