package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

const frameMs = 16.0

// ground is the resting y on a floor at row 10.
const ground = 9 * tile

// newLevel builds a level with a floor across row 10 plus extra items.
func newLevel(cols int, start level.GridPos, gumbas []level.GumbaStart, extra ...level.Item) *level.Level {
	items := []level.Item{{Kind: level.TileFloor, Col: 0, Row: 10, RepeatCol: cols}}
	items = append(items, extra...)
	lv := &level.Level{
		ID:         1,
		Background: "#5c94fc",
		Items:      items,
		Gumbas:     gumbas,
		Start:      start,
	}
	lv.Init(level.DefaultTileSet())
	return lv
}

func newContext(lv *level.Level) *Context {
	return NewContext(lv, DefaultTuning())
}

// clock hands out 16ms frame timestamps.
type clock struct{ ts float64 }

func (k *clock) next() float64 {
	k.ts += frameMs
	return k.ts
}

// settle steps without input until the hero rests on the ground.
func settle(t *testing.T, c *Context, k *clock) {
	t.Helper()
	for i := 0; i < 500; i++ {
		Step(c, Input{}, k.next())
		if c.Hero.Pos.Y == c.query().MaxY(c.Hero.Pos) {
			return
		}
	}
	require.Fail(t, "hero never landed")
}
