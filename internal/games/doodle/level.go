package doodle

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Band is a batch of freshly generated entities.
type Band struct {
	Platforms []Platform
	Monsters  []Monster
	PowerUps  []PowerUp
}

// Generator places platforms and decides what spawns on them.
type Generator struct {
	rng        *rand.Rand
	cfg        *config.DoodleConfig
	thresholds [4]float64 // Cumulative kind probabilities: normal, breakable, moving, bouncy

	// SpeedScale multiplies moving platform and monster speeds at spawn time.
	SpeedScale float64
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, cfg *config.DoodleConfig) *Generator {
	g := &Generator{
		cfg:        cfg,
		SpeedScale: 1,
	}
	g.Reset(seed)
	return g
}

// Reset reseeds the RNG and recomputes the kind thresholds from the config.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))

	w := g.cfg.Platforms.Weights
	total := w.Total()
	if total <= 0 {
		g.thresholds = [4]float64{1, 1, 1, 1}
		return
	}
	g.thresholds[0] = w.Normal / total
	g.thresholds[1] = (w.Normal + w.Breakable) / total
	g.thresholds[2] = (w.Normal + w.Breakable + w.Moving) / total
	g.thresholds[3] = 1
}

// PlatformCount returns how many platforms a viewport of the given height holds.
func (g *Generator) PlatformCount(viewportHeight float64) int {
	return int(math.Floor(viewportHeight / g.cfg.Platforms.RowHeight))
}

// StartPosition returns where the player starts in a viewport.
func (g *Generator) StartPosition(viewportWidth, viewportHeight float64) (float64, float64) {
	return viewportWidth / 2, viewportHeight - g.cfg.Player.StartOffset
}

// GenerateBand creates count platforms spaced downward from topY, each with
// its own monster and power-up rolls. Unless excludeStart is set, the lowest
// slot holds the start platform: Normal, centered under the player's start
// position and free of spawns.
func (g *Generator) GenerateBand(viewportWidth, topY float64, count int, excludeStart bool) Band {
	var band Band
	if count <= 0 {
		return band
	}

	pc := g.cfg.Platforms
	band.Platforms = make([]Platform, 0, count)

	for i := 0; i < count; i++ {
		y := topY + float64(i)*pc.Spacing

		if i == count-1 && !excludeStart {
			band.Platforms = append(band.Platforms, g.startPlatform(viewportWidth, y))
			continue
		}

		y += (g.rng.Float64()*2 - 1) * pc.Jitter
		x := g.rng.Float64() * max(0, viewportWidth-pc.Width)
		p := g.newPlatform(g.rollKind(), x, y)
		band.Platforms = append(band.Platforms, p)
		g.spawnOn(&band, p)
	}
	return band
}

// startPlatform builds the guaranteed first foothold.
func (g *Generator) startPlatform(viewportWidth, y float64) Platform {
	pc := g.cfg.Platforms
	playerX := viewportWidth / 2
	x := playerX + g.cfg.Player.Width/2 - pc.Width/2
	x = core.ClampF(x, 0, viewportWidth-pc.Width)
	return g.newPlatform(PlatformNormal, x, y)
}

func (g *Generator) newPlatform(kind PlatformKind, x, y float64) Platform {
	pc := g.cfg.Platforms
	p := Platform{
		Box:  core.Box{X: x, Y: y, W: pc.Width, H: pc.Height},
		Kind: kind,
		State: PlatformState{
			BounceStrength: 1,
			MoveDirection:  1,
		},
	}
	switch kind {
	case PlatformBouncy:
		p.State.BounceStrength = pc.BounceStrength
	case PlatformMoving:
		p.State.MoveSpeed = pc.MoveSpeed * g.SpeedScale
		p.State.MoveDirection = g.rollDirection()
	}
	return p
}

// rollKind draws a platform kind from the configured weights.
func (g *Generator) rollKind() PlatformKind {
	roll := g.rng.Float64()
	switch {
	case roll < g.thresholds[0]:
		return PlatformNormal
	case roll < g.thresholds[1]:
		return PlatformBreakable
	case roll < g.thresholds[2]:
		return PlatformMoving
	default:
		return PlatformBouncy
	}
}

func (g *Generator) rollDirection() int {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// spawnOn rolls for a monster and a power-up on a new platform. Monsters
// only stand on Normal platforms so their home never breaks or slides away.
func (g *Generator) spawnOn(band *Band, p Platform) {
	mc := g.cfg.Monsters
	if g.rng.Float64() < mc.SpawnChance && p.Kind == PlatformNormal {
		band.Monsters = append(band.Monsters, Monster{
			Box: core.Box{
				X: p.X + (p.W-mc.Width)/2,
				Y: p.Y - mc.Height,
				W: mc.Width,
				H: mc.Height,
			},
			Speed:     mc.Speed * g.SpeedScale,
			Direction: g.rollDirection(),
			HomeX:     p.X,
			HomeW:     p.W,
		})
	}

	pu := g.cfg.PowerUps
	if g.rng.Float64() < pu.SpawnChance {
		kind := PowerUpShield
		duration := time.Duration(pu.ShieldDurationMS) * time.Millisecond
		if g.rng.Intn(2) == 1 {
			kind = PowerUpJetpack
			duration = time.Duration(pu.JetpackDurationMS) * time.Millisecond
		}
		band.PowerUps = append(band.PowerUps, PowerUp{
			Box: core.Box{
				X: p.X + (p.W-pu.Width)/2,
				Y: p.Y - pu.Height - pu.Lift,
				W: pu.Width,
				H: pu.Height,
			},
			Kind:     kind,
			Duration: duration,
		})
	}
}
