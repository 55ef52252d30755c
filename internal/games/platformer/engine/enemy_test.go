package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

func TestSpawnGumbas(t *testing.T) {
	gs := SpawnGumbas([]level.GumbaStart{{Col: 3, Row: 9}, {Col: 7, Row: 2}})
	require.Len(t, gs, 2)
	assert.Equal(t, Gumba{Pos: Vec{X: 48, Y: 144}, Direction: DirLeft, Alive: true}, gs[0])
	assert.Equal(t, Vec{X: 112, Y: 32}, gs[1].Pos)
}

func TestGumbaPatrolStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	lv := newLevel(30, level.GridPos{Col: 1}, []level.GumbaStart{{Col: 6, Row: 9}, {Col: 20, Row: 9}, {Col: 27, Row: 9}},
		level.Item{Kind: level.TileBrick, Col: 3, Row: 9},
		level.Item{Kind: level.TilePipeTop, Col: 12, Row: 8},
	)
	c := newContext(lv)

	ts := 0.0
	flips := 0
	for frame := 0; frame < 3000; frame++ {
		type bounds struct{ lo, hi float64 }
		before := make([]bounds, len(c.Gumbas))
		dirs := make([]Direction, len(c.Gumbas))
		for i, g := range c.Gumbas {
			lo, hi := PatrolBounds(c, g.Pos)
			before[i] = bounds{lo, hi}
			dirs[i] = g.Direction
		}

		ts += float64(5 + rng.Intn(60))
		c.FormerTimestamp, c.Timestamp = c.Timestamp, ts
		c.Delta = 0
		if c.FormerTimestamp != 0 {
			c.Delta = (ts - c.FormerTimestamp) / c.Tuning.SpeedDivisor
		}
		MoveGumbas(c)

		for i, g := range c.Gumbas {
			assert.GreaterOrEqual(t, g.Pos.X, before[i].lo)
			assert.LessOrEqual(t, g.Pos.X, before[i].hi)
			assert.Equal(t, float64(9*tile), g.Pos.Y)
			if g.Direction != dirs[i] {
				flips++
			}
		}
	}
	assert.Greater(t, flips, 6)

	// Between the brick and the pipe.
	lo, hi := PatrolBounds(c, c.Gumbas[0].Pos)
	assert.Equal(t, 4*tile, lo)
	assert.Equal(t, 11*tile, hi)
	// The last gumba stops at the level's right edge.
	_, hi = PatrolBounds(c, c.Gumbas[2].Pos)
	assert.Equal(t, 29*tile, hi)
}

func TestGumbaContact(t *testing.T) {
	lv := newLevel(20, level.GridPos{Col: 1, Row: 9}, []level.GumbaStart{{Col: 1, Row: 9}})

	t.Run("falling hero stomps", func(t *testing.T) {
		c := newContext(lv)
		c.IsFalling = true
		ct, ok := ResolveGumbaContact(c)
		require.True(t, ok)
		assert.True(t, ct.Stomped)
		assert.False(t, c.Gumbas[0].Alive)
		assert.False(t, c.Beaten)

		_, ok = ResolveGumbaContact(c)
		assert.False(t, ok, "dead gumbas are ignored")
	})

	t.Run("grounded hero is beaten", func(t *testing.T) {
		c := newContext(lv)
		ct, ok := ResolveGumbaContact(c)
		require.True(t, ok)
		assert.False(t, ct.Stomped)
		assert.True(t, c.Gumbas[0].Alive)
		assert.True(t, c.Beaten)
	})

	t.Run("padding keeps edge contact apart", func(t *testing.T) {
		c := newContext(lv)
		c.Gumbas[0].Pos.X = 16 + 14
		_, ok := ResolveGumbaContact(c)
		assert.False(t, ok)
	})
}

func TestStompDuringStep(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 7}, []level.GumbaStart{{Col: 1, Row: 9}}))
	k := &clock{}

	stomped := false
	for i := 0; i < 30; i++ {
		ev := Step(c, Input{}, k.next())
		require.False(t, ev.Reset, "hero died at frame %d", i)
		if len(ev.Stomped) > 0 {
			assert.Equal(t, []int{0}, ev.Stomped)
			stomped = true
			break
		}
	}
	require.True(t, stomped)
	assert.False(t, c.Gumbas[0].Alive)
}

func TestBeatenDuringStepResets(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 9}, []level.GumbaStart{{Col: 5, Row: 9}}))
	k := &clock{}

	var last Events
	for i := 0; i < 200; i++ {
		last = Step(c, Input{}, k.next())
		if last.Reset {
			break
		}
	}
	require.True(t, last.Reset)
	assert.Equal(t, DeathBeaten, last.Death)
	assert.Equal(t, Vec{X: 16, Y: ground}, c.Hero.Pos)
	assert.Equal(t, Vec{X: 80, Y: ground}, c.Gumbas[0].Pos)
	assert.True(t, c.Gumbas[0].Alive)
	assert.Zero(t, c.Timestamp)
}
