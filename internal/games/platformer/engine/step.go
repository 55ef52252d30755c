package engine

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// DeathCause tells why a life ended.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathFell
	DeathBeaten
)

// String returns a short label for logs and stats.
func (d DeathCause) String() string {
	switch d {
	case DeathFell:
		return "fell"
	case DeathBeaten:
		return "beaten"
	default:
		return "none"
	}
}

// Events reports what happened during one Step.
type Events struct {
	Coins   []level.GridPos
	Struck  []level.GridPos
	Stomped []int
	Death   DeathCause
	// Reset is set when the step ended in a level reset.
	Reset bool
}

// Step advances the simulation to timestamp ts (milliseconds, positive and
// non-decreasing). The first step after a reset has zero delta.
//
// Order: hero, gumbas, camera, coins, gumba contact, block strikes, coin
// animation, death. A death resets the level within the same call and sets
// Events.Reset; the next step advances from the reset state with zero delta,
// so it is the first step of the fresh attempt.
func Step(c *Context, in Input, ts float64) Events {
	c.FormerTimestamp = c.Timestamp
	c.Timestamp = ts
	c.Delta = 0
	if c.FormerTimestamp != 0 {
		c.Delta = (ts - c.FormerTimestamp) / c.Tuning.SpeedDivisor
	}
	c.Beaten = false
	c.FellOff = false

	var ev Events

	MoveHero(c, in)
	MoveGumbas(c)
	updateCamera(c)

	ev.Coins = CollectCoins(c)
	if ct, ok := ResolveGumbaContact(c); ok && ct.Stomped {
		ev.Stomped = append(ev.Stomped, ct.Index)
	}
	if pos, ok := CheckHitQuestionMark(c); ok {
		ev.Struck = append(ev.Struck, pos)
	}
	PruneRisingCoins(c)

	c.FellOff = c.Hero.Pos.Y > c.ViewHeight
	switch {
	case c.FellOff:
		ev.Death = DeathFell
	case c.Beaten:
		ev.Death = DeathBeaten
	}
	if ev.Death != DeathNone {
		Reset(c)
		ev.Reset = true
	}
	return ev
}

// updateCamera keeps the hero centered while clamping the scroll to the level.
func updateCamera(c *Context) {
	c.MaxOffset = math.Max(0, c.Level.WidthPx()-c.ViewWidth)
	off := c.Hero.Pos.X - c.ViewWidth/2 + tile/2
	c.ScrollOffset = math.Min(math.Max(off, 0), c.MaxOffset)
	c.RenderX = c.Hero.Pos.X - c.ScrollOffset
}

// AtLevelEnd reports whether the hero reached the right edge of the level.
func AtLevelEnd(c *Context) bool {
	return c.Hero.Pos.X >= c.Level.WidthPx()-tile
}
