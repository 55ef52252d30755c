package engine

import "github.com/vovakirdan/tui-platformer/internal/games/platformer/level"

// CoinOffset returns the vertical rise of a coin elapsed ms after spawn. The
// coin rises for the first half of the duration and falls back for the second,
// so the curve is symmetric. active is false once the duration has passed.
func CoinOffset(elapsed, duration, distance float64) (offset float64, active bool) {
	if duration <= 0 || elapsed >= duration {
		return 0, false
	}
	p := max(0, elapsed/duration)
	up := p * 2
	if p > 0.5 {
		up = (1 - p) * 2
	}
	return up * distance, true
}

// PruneRisingCoins drops coins whose animation has finished.
func PruneRisingCoins(c *Context) {
	kept := c.RisingCoins[:0]
	for _, rc := range c.RisingCoins {
		if c.Timestamp-rc.Start < c.Tuning.RiseDuration {
			kept = append(kept, rc)
		}
	}
	c.RisingCoins = kept
}

// CollectCoins marks every coin overlapping the hero as collected and returns
// their positions.
func CollectCoins(c *Context) []level.GridPos {
	hero := entityRect(c.Hero.Pos).Inset(c.Tuning.HeroPadding, 0)
	pad := c.Tuning.CoinPadding

	var got []level.GridPos
	for i, it := range c.Level.Items {
		if it.Kind != level.TileCoin {
			continue
		}
		if !hero.Overlaps(c.Level.Rect(it).Inset(pad, pad)) {
			continue
		}
		c.Level.SetKind(i, level.TileCollected)
		got = append(got, level.GridPos{Col: it.Col, Row: it.Row})
	}
	return got
}
