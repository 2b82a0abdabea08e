// Package config provides YAML-based game configuration loading and
// difficulty management for the doodle jumper.
package config

// DoodleConfig contains all configuration for one game variant.
type DoodleConfig struct {
	Physics    DoodlePhysics    `yaml:"physics"`
	Player     DoodlePlayer     `yaml:"player"`
	Platforms  DoodlePlatforms  `yaml:"platforms"`
	Monsters   DoodleMonsters   `yaml:"monsters"`
	PowerUps   DoodlePowerUps   `yaml:"powerups"`
	Scroll     DoodleScroll     `yaml:"scroll"`
	Input      DoodleInput      `yaml:"input"`
	Render     DoodleRender     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DoodlePhysics defines the integration constants, in world units per tick.
type DoodlePhysics struct {
	Gravity           float64 `yaml:"gravity"`
	TerminalVelocity  float64 `yaml:"terminal_velocity"`
	JetpackMultiplier float64 `yaml:"jetpack_multiplier"`
	FallMargin        float64 `yaml:"fall_margin"` // How far below the viewport the player may fall before the run ends
}

// DoodlePlayer defines the player body.
type DoodlePlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	JumpForce   float64 `yaml:"jump_force"`   // Negative = upward
	StartOffset float64 `yaml:"start_offset"` // Start Y is viewport height minus this
}

// DoodlePlatforms defines platform geometry, placement and behavior mix.
type DoodlePlatforms struct {
	Width          float64         `yaml:"width"`
	Height         float64         `yaml:"height"`
	RowHeight      float64         `yaml:"row_height"` // Viewport height per platform when sizing the level
	Spacing        float64         `yaml:"spacing"`
	Jitter         float64         `yaml:"jitter"`
	StartOffset    float64         `yaml:"start_offset"` // Start platform Y is viewport height minus this
	BounceStrength float64         `yaml:"bounce_strength"`
	MoveSpeed      float64         `yaml:"move_speed"`
	Weights        PlatformWeights `yaml:"weights"`
}

// PlatformWeights are relative weights of each platform behavior.
type PlatformWeights struct {
	Normal    float64 `yaml:"normal"`
	Breakable float64 `yaml:"breakable"`
	Moving    float64 `yaml:"moving"`
	Bouncy    float64 `yaml:"bouncy"`
}

// Total returns the sum of all weights.
func (w PlatformWeights) Total() float64 {
	return w.Normal + w.Breakable + w.Moving + w.Bouncy
}

// DoodleMonsters defines monster spawning and patrol speed.
type DoodleMonsters struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per Normal platform, 0..1
}

// DoodlePowerUps defines power-up spawning and effect durations.
type DoodlePowerUps struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	SpawnChance       float64 `yaml:"spawn_chance"` // Per platform, 0..1
	Lift              float64 `yaml:"lift"`         // Gap between platform top and power-up bottom
	ShieldDurationMS  int     `yaml:"shield_duration_ms"`
	JetpackDurationMS int     `yaml:"jetpack_duration_ms"`
}

// DoodleScroll defines how ascending converts into score.
type DoodleScroll struct {
	ScoreRate float64 `yaml:"score_rate"`
}

// DoodleInput defines terminal input behavior.
type DoodleInput struct {
	// ReleaseTicks stops horizontal movement after this many ticks without a
	// repeated steer key. Terminals report no key release. 0 keeps moving
	// until an explicit stop.
	ReleaseTicks int `yaml:"release_ticks"`
}

// DoodleRender defines how world units map onto terminal cells.
type DoodleRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to moving platform and monster speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
