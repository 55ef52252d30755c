package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

func TestQueryVertical(t *testing.T) {
	lv := newLevel(20, level.GridPos{Col: 1}, nil,
		level.Item{Kind: level.TileBrick, Col: 1, Row: 6},
	)
	q := Query{Grid: lv.Grid, Padding: 2}

	// Under the brick.
	assert.Equal(t, ground, q.MaxY(Vec{X: 16, Y: ground}))
	assert.Equal(t, 7*tile, q.MinY(Vec{X: 16, Y: ground}))

	// On top of the brick.
	assert.Equal(t, 5*tile, q.MaxY(Vec{X: 16, Y: 0}))

	// Straddling columns 3 and 4, nothing overhead.
	assert.Equal(t, ground, q.MaxY(Vec{X: 56, Y: 0}))
	assert.True(t, math.IsInf(q.MinY(Vec{X: 56, Y: ground}), -1))

	// Padding keeps a 2px overlap from counting.
	assert.True(t, math.IsInf(q.MinY(Vec{X: 16 + 14, Y: ground}), -1))
	assert.Equal(t, 7*tile, q.MinY(Vec{X: 16 + 13, Y: ground}))
}

func TestQueryHorizontalIsSymmetric(t *testing.T) {
	lv := newLevel(20, level.GridPos{Col: 1}, nil,
		level.Item{Kind: level.TileBrick, Col: 5, Row: 9},
	)
	q := Query{Grid: lv.Grid, Padding: 2}

	assert.Equal(t, 4*tile, q.MaxX(Vec{X: 16, Y: ground}))
	assert.Equal(t, 6*tile, q.MinX(Vec{X: 150, Y: ground}))

	// Touching the wall on either side still finds it.
	assert.Equal(t, 4*tile, q.MaxX(Vec{X: 4 * tile, Y: ground}))
	assert.Equal(t, 6*tile, q.MinX(Vec{X: 6 * tile, Y: ground}))

	// A row above the wall is clear both ways.
	assert.True(t, math.IsInf(q.MaxX(Vec{X: 16, Y: 8 * tile}), 1))
	assert.True(t, math.IsInf(q.MinX(Vec{X: 150, Y: 8 * tile}), -1))
}

func TestQueryLeavesGrid(t *testing.T) {
	lv := newLevel(4, level.GridPos{Col: 1}, nil)
	q := Query{Grid: lv.Grid, Padding: 2}

	_, ok := q.Below(Vec{X: 200, Y: 0})
	assert.False(t, ok)
	_, ok = q.Below(Vec{X: 16, Y: 11 * tile})
	assert.False(t, ok)
	c, ok := q.Below(Vec{X: 16, Y: -40})
	require.True(t, ok)
	assert.Equal(t, level.GridPos{Col: 1, Row: 10}, c.Pos())
}

// solidOverlap returns the first solid cell intersecting the padded hero box.
func solidOverlap(c *Context) (level.Cell, bool) {
	box := entityRect(c.Hero.Pos).Inset(c.Tuning.HeroPadding, 0)
	var hit level.Cell
	found := false
	g := c.Level.Grid
	for row := 0; row < g.Rows() && !found; row++ {
		for col := 0; col < g.Cols(); col++ {
			cell := g.At(col, row)
			if !level.IsSolid(cell.Kind) {
				continue
			}
			r := level.Rect{Left: cell.Left(), Top: cell.Top(), Right: cell.Right(), Bottom: cell.Bottom()}
			if box.Overlaps(r) {
				hit, found = cell, true
				break
			}
		}
	}
	return hit, found
}

func TestHeroNeverEntersSolid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		var extra []level.Item
		for i := 0; i < 25; i++ {
			kind := level.TileBrick
			if rng.Intn(3) == 0 {
				kind = level.TileQuestionMark
			}
			extra = append(extra, level.Item{
				Kind: kind,
				Col:  3 + rng.Intn(35),
				Row:  4 + rng.Intn(6),
			})
		}
		lv := newLevel(40, level.GridPos{Col: 1}, nil, extra...)
		c := newContext(lv)

		var in Input
		ts := 0.0
		for frame := 0; frame < 1500; frame++ {
			if frame%12 == 0 {
				in = Input{
					Up:    rng.Intn(2) == 0,
					Left:  rng.Intn(4) == 0,
					Right: rng.Intn(2) == 0,
				}
			}
			ts += float64(8 + rng.Intn(40))
			Step(c, in, ts)
			if cell, hit := solidOverlap(c); hit {
				require.Failf(t, "hero inside solid", "round %d frame %d hero %+v cell %+v", round, frame, c.Hero.Pos, cell.Pos())
			}
		}
	}
}
