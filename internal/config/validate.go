package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c DoodleConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.terminal_velocity", c.Physics.TerminalVelocity},
		{"physics.jetpack_multiplier", c.Physics.JetpackMultiplier},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"platforms.width", c.Platforms.Width},
		{"platforms.height", c.Platforms.Height},
		{"platforms.row_height", c.Platforms.RowHeight},
		{"platforms.spacing", c.Platforms.Spacing},
		{"platforms.bounce_strength", c.Platforms.BounceStrength},
		{"monsters.width", c.Monsters.Width},
		{"monsters.height", c.Monsters.Height},
		{"powerups.width", c.PowerUps.Width},
		{"powerups.height", c.PowerUps.Height},
		{"render.cell_width", c.Render.CellWidth},
		{"render.cell_height", c.Render.CellHeight},
	}
	for _, p := range positives {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if !(c.Player.JumpForce < 0) {
		return fmt.Errorf("%w: player.jump_force must be negative (upward), got %v", ErrInvalidConfig, c.Player.JumpForce)
	}

	w := c.Platforms.Weights
	if w.Normal < 0 || w.Breakable < 0 || w.Moving < 0 || w.Bouncy < 0 {
		return fmt.Errorf("%w: platforms.weights must not be negative", ErrInvalidConfig)
	}
	if w.Total() <= 0 {
		return fmt.Errorf("%w: platforms.weights must not all be zero", ErrInvalidConfig)
	}

	chances := []struct {
		name  string
		value float64
	}{
		{"monsters.spawn_chance", c.Monsters.SpawnChance},
		{"powerups.spawn_chance", c.PowerUps.SpawnChance},
	}
	for _, ch := range chances {
		if ch.value < 0 || ch.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %v", ErrInvalidConfig, ch.name, ch.value)
		}
	}

	if c.Physics.FallMargin < 0 || c.Platforms.Jitter < 0 || c.Platforms.MoveSpeed < 0 || c.Monsters.Speed < 0 {
		return fmt.Errorf("%w: margins, jitter and speeds must not be negative", ErrInvalidConfig)
	}
	if c.PowerUps.ShieldDurationMS < 0 || c.PowerUps.JetpackDurationMS < 0 {
		return fmt.Errorf("%w: power-up durations must not be negative", ErrInvalidConfig)
	}
	if c.Input.ReleaseTicks < 0 {
		return fmt.Errorf("%w: input.release_ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}
