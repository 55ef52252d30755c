// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Collision  CollisionConfig  `yaml:"collision"`
	Coins      CoinsConfig      `yaml:"coins"`
	View       ViewConfig       `yaml:"view"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines hero motion. Speeds are pixels per delta unit, where
// delta is elapsed milliseconds divided by speed_divisor.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	HeroSpeed         float64 `yaml:"hero_speed"`
	JumpVelocity      float64 `yaml:"jump_velocity"`
	JumpDecayPer100ms float64 `yaml:"jump_decay_per_100ms"`
	JumpDurationMs    float64 `yaml:"jump_duration_ms"`
	SpeedDivisor      float64 `yaml:"speed_divisor"`
}

// EnemiesConfig defines gumba behavior.
type EnemiesConfig struct {
	Speed float64 `yaml:"speed"`
}

// CollisionConfig defines hitbox padding in pixels.
type CollisionConfig struct {
	HeroPadding float64 `yaml:"hero_padding"`
	CoinPadding float64 `yaml:"coin_padding"`
}

// CoinsConfig defines the rising coin animation.
type CoinsConfig struct {
	RiseDurationMs    float64 `yaml:"rise_duration_ms"`
	RiseDistanceTiles float64 `yaml:"rise_distance_tiles"`
}

// ViewConfig defines the visible area in tiles. Zero means fit the screen
// (width) or the level (height).
type ViewConfig struct {
	WidthTiles  int `yaml:"width_tiles"`
	HeightTiles int `yaml:"height_tiles"`
}

// GameplayConfig defines campaign rules.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"` // level id, 0 = first
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Coin       int `yaml:"coin"`
	BlockCoin  int `yaml:"block_coin"`
	Stomp      int `yaml:"stomp"`
	LevelClear int `yaml:"level_clear"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// HoldMs keeps a key held this long after its last press, since terminals
	// report no key releases.
	HoldMs int `yaml:"hold_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // levels cleared or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemySpeedMultiplier float64 `yaml:"enemy_speed_multiplier"` // added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
