package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:           2,
			HeroSpeed:         1,
			JumpVelocity:      2,
			JumpDecayPer100ms: 0.01,
			JumpDurationMs:    500,
			SpeedDivisor:      10,
		},
		Enemies: EnemiesConfig{
			Speed: 0.4,
		},
		Collision: CollisionConfig{
			HeroPadding: 2,
			CoinPadding: 4,
		},
		Coins: CoinsConfig{
			RiseDurationMs:    500,
			RiseDistanceTiles: 3,
		},
		View: ViewConfig{
			WidthTiles:  0,
			HeightTiles: 0,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			StartLevel: 0,
		},
		Scoring: ScoringConfig{
			Coin:       200,
			BlockCoin:  200,
			Stomp:      100,
			LevelClear: 1000,
		},
		Input: InputConfig{
			HoldMs: 150,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				EnemySpeedMultiplier: 1.0,
			},
		},
	}
}
