package doodle

import (
	"time"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Player is the character the user steers.
type Player struct {
	Motion
	W, H       float64
	Speed      float64 // Horizontal move magnitude
	JumpForce  float64 // Base jump velocity, negative = upward
	HasShield  bool
	HasJetpack bool
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// MoveLeft sets horizontal velocity to the left.
func (p *Player) MoveLeft() {
	p.VX = -p.Speed
}

// MoveRight sets horizontal velocity to the right.
func (p *Player) MoveRight() {
	p.VX = p.Speed
}

// Stop cancels horizontal movement.
func (p *Player) Stop() {
	p.VX = 0
}

// PlatformKind selects how a platform reacts when landed on.
type PlatformKind int

const (
	PlatformNormal PlatformKind = iota
	PlatformBreakable
	PlatformMoving
	PlatformBouncy
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformBreakable:
		return "breakable"
	case PlatformMoving:
		return "moving"
	case PlatformBouncy:
		return "bouncy"
	default:
		return "unknown"
	}
}

// PlatformState is the mutable part of a platform.
type PlatformState struct {
	Broken         bool
	BounceStrength float64
	MoveDirection  int // -1 or +1
	MoveSpeed      float64
}

// Platform is a surface the player bounces off.
type Platform struct {
	core.Box
	Kind  PlatformKind
	State PlatformState
}

// Active reports whether the platform can still be landed on and is drawn.
func (p *Platform) Active() bool {
	return !p.State.Broken
}

// Monster patrols the platform it spawned on and ends the run on contact.
type Monster struct {
	core.Box
	Speed     float64
	Direction int     // -1 or +1
	HomeX     float64 // Left edge of the patrolled span
	HomeW     float64 // Width of the patrolled span
}

// advance moves the monster one step, reversing at the ends of its span.
func (m *Monster) advance() {
	minX := m.HomeX
	maxX := max(m.HomeX, m.HomeX+m.HomeW-m.W)

	m.X += m.Speed * float64(m.Direction)
	if m.X <= minX {
		m.X = minX
		m.Direction = 1
	} else if m.X >= maxX {
		m.X = maxX
		m.Direction = -1
	}
}

// PowerUpKind identifies a collectible effect.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpJetpack
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpJetpack:
		return "jetpack"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible lying above a platform.
type PowerUp struct {
	core.Box
	Kind     PowerUpKind
	Duration time.Duration
}

// Effect is a collected power-up that is still running.
type Effect struct {
	Kind   PowerUpKind
	Expiry time.Time
}
