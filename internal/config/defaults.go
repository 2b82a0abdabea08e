package config

import (
	_ "embed"
)

// Variant names with an embedded default configuration.
const (
	VariantDoodle  = "doodle"
	VariantClassic = "doodle_classic"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

//go:embed defaults/doodle_classic.yaml
var defaultClassicYAML []byte

// DefaultDoodleConfig returns the built-in configuration of the full game.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Physics: DoodlePhysics{
			Gravity:           0.5,
			TerminalVelocity:  10,
			JetpackMultiplier: 1.5,
			FallMargin:        100,
		},
		Player: DoodlePlayer{
			Width:       30,
			Height:      30,
			Speed:       8,
			JumpForce:   -18,
			StartOffset: 100,
		},
		Platforms: DoodlePlatforms{
			Width:          80,
			Height:         15,
			RowHeight:      80,
			Spacing:        80,
			Jitter:         20,
			StartOffset:    30,
			BounceStrength: 1.5,
			MoveSpeed:      2,
			Weights: PlatformWeights{
				Normal:    60,
				Breakable: 15,
				Moving:    15,
				Bouncy:    10,
			},
		},
		Monsters: DoodleMonsters{
			Width:       30,
			Height:      30,
			Speed:       1.5,
			SpawnChance: 0.2,
		},
		PowerUps: DoodlePowerUps{
			Width:             20,
			Height:            20,
			SpawnChance:       0.1,
			Lift:              5,
			ShieldDurationMS:  10000,
			JetpackDurationMS: 5000,
		},
		Scroll: DoodleScroll{
			ScoreRate: 0.1,
		},
		Input: DoodleInput{
			ReleaseTicks: 36, // ~0.6s at 60 FPS, longer than the usual key repeat delay
		},
		Render: DoodleRender{
			CellWidth:  5,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultClassicConfig returns the built-in configuration of the classic
// variant: plain platforms, no monsters, no power-ups.
func DefaultClassicConfig() DoodleConfig {
	cfg := DefaultDoodleConfig()
	cfg.Platforms.Weights = PlatformWeights{Normal: 1}
	cfg.Monsters.SpawnChance = 0
	cfg.PowerUps.SpawnChance = 0
	cfg.Difficulty = DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "none"},
	}
	return cfg
}

// DefaultFor returns the hard-coded configuration of a variant.
func DefaultFor(variant string) DoodleConfig {
	if variant == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultDoodleConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantDoodle:
		return defaultDoodleYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
