package engine

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// StrikeRegistry records the question blocks struck since the last reset.
type StrikeRegistry struct {
	struck map[level.GridPos]struct{}
}

// NewStrikeRegistry returns an empty registry.
func NewStrikeRegistry() *StrikeRegistry {
	return &StrikeRegistry{struck: make(map[level.GridPos]struct{})}
}

// Has reports whether the block at pos was struck.
func (r *StrikeRegistry) Has(pos level.GridPos) bool {
	_, ok := r.struck[pos]
	return ok
}

// Add records a strike and reports whether it is new.
func (r *StrikeRegistry) Add(pos level.GridPos) bool {
	if r.Has(pos) {
		return false
	}
	r.struck[pos] = struct{}{}
	return true
}

// Len returns the number of struck blocks.
func (r *StrikeRegistry) Len() int { return len(r.struck) }

// Clear forgets every strike.
func (r *StrikeRegistry) Clear() {
	clear(r.struck)
}

// StrikeAt strikes the question block at pos: it becomes empty and spawns a
// rising coin. Repeated strikes on the same position do nothing.
func StrikeAt(c *Context, pos level.GridPos, ts float64) bool {
	if c.Strikes.Has(pos) {
		return false
	}
	for i, it := range c.Level.Items {
		if it.Kind != level.TileQuestionMark || it.Col != pos.Col || it.Row != pos.Row {
			continue
		}
		c.Strikes.Add(pos)
		c.Level.SetKind(i, level.TileEmpty)
		c.RisingCoins = append(c.RisingCoins, RisingCoin{Col: pos.Col, Row: pos.Row, Start: ts})
		return true
	}
	return false
}

// CheckHitQuestionMark resolves a pending head hit against the question
// blocks directly above the hero. When the hero spans two blocks the one with
// the larger horizontal overlap is struck.
func CheckHitQuestionMark(c *Context) (level.GridPos, bool) {
	if c.HitTopAt == 0 {
		return level.GridPos{}, false
	}
	ts := c.HitTopAt
	c.HitTopAt = 0

	hero := entityRect(c.Hero.Pos).Inset(c.Tuning.HeroPadding, 0)
	best, bestOverlap := -1, 0.0
	for i, it := range c.Level.Items {
		if it.Kind != level.TileQuestionMark {
			continue
		}
		r := c.Level.Rect(it)
		if r.Bottom != hero.Top {
			continue
		}
		overlap := math.Min(r.Right, hero.Right) - math.Max(r.Left, hero.Left)
		if overlap > bestOverlap {
			best, bestOverlap = i, overlap
		}
	}
	if best < 0 {
		return level.GridPos{}, false
	}

	it := c.Level.Items[best]
	pos := level.GridPos{Col: it.Col, Row: it.Row}
	if !StrikeAt(c, pos, ts) {
		return level.GridPos{}, false
	}
	return pos, true
}
