package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// TuningFromConfig maps the YAML configuration onto engine constants.
// Non-positive values keep the engine defaults. The viewport is left to the
// caller.
func TuningFromConfig(cfg config.PlatformerConfig) engine.Tuning {
	t := engine.DefaultTuning()

	set := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	p := cfg.Physics
	set(&t.Gravity, p.Gravity)
	set(&t.HeroSpeed, p.HeroSpeed)
	set(&t.JumpVelocity, p.JumpVelocity)
	set(&t.JumpDuration, p.JumpDurationMs)
	set(&t.SpeedDivisor, p.SpeedDivisor)
	if p.JumpDecayPer100ms >= 0 {
		t.JumpDecayPer100ms = p.JumpDecayPer100ms
	}

	set(&t.GumbaSpeed, cfg.Enemies.Speed)
	if cfg.Collision.HeroPadding >= 0 {
		t.HeroPadding = cfg.Collision.HeroPadding
	}
	if cfg.Collision.CoinPadding >= 0 {
		t.CoinPadding = cfg.Collision.CoinPadding
	}
	set(&t.RiseDuration, cfg.Coins.RiseDurationMs)
	set(&t.RiseDistance, cfg.Coins.RiseDistanceTiles*level.TileSize)

	return t
}
