package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

func TestHeroFallsToGround(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1}, nil))
	k := &clock{}

	ev := Step(c, Input{}, k.next())
	assert.Zero(t, c.Delta, "first frame has zero delta")
	assert.Zero(t, c.Hero.Pos.Y)
	assert.False(t, ev.Reset)

	Step(c, Input{}, k.next())
	assert.InDelta(t, 1.6, c.Delta, 1e-9)
	assert.InDelta(t, 3.2, c.Hero.Pos.Y, 1e-9)
	assert.True(t, c.IsFalling)

	settle(t, c, k)
	assert.Equal(t, ground, c.Hero.Pos.Y)
}

func TestHeroJumpReturnsToGround(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 9}, nil))
	k := &clock{}
	settle(t, c, k)
	require.Equal(t, ground, c.Hero.Pos.Y)

	// First held frame starts the jump from the ground.
	Step(c, Input{Up: true}, k.next())
	start := c.Hero.JumpStart
	require.NotZero(t, start)

	peak := c.Hero.Pos.Y
	for k.ts+frameMs-start < 500 {
		ev := Step(c, Input{Up: true}, k.next())
		assert.Empty(t, ev.Struck)
		assert.NotZero(t, c.Hero.JumpStart, "jump ended early at %v", k.ts)
		peak = min(peak, c.Hero.Pos.Y)
	}
	assert.Less(t, peak, ground-64)

	landed := false
	for i := 0; i < 200; i++ {
		Step(c, Input{}, k.next())
		assert.Zero(t, c.Hero.JumpStart)
		if c.Hero.Pos.Y == ground {
			landed = true
			break
		}
	}
	require.True(t, landed)
	assert.Equal(t, ground, c.Hero.Pos.Y)
	assert.Equal(t, float64(16), c.Hero.Pos.X)
}

func TestHeroReleaseEndsJump(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 9}, nil))
	k := &clock{}
	settle(t, c, k)

	Step(c, Input{Up: true}, k.next())
	Step(c, Input{Up: true}, k.next())
	require.NotZero(t, c.Hero.JumpStart)
	y := c.Hero.Pos.Y

	Step(c, Input{}, k.next())
	assert.Zero(t, c.Hero.JumpStart)
	assert.Greater(t, c.Hero.Pos.Y, y)
}

func TestHeroHorizontal(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 9}, nil,
		level.Item{Kind: level.TileBrick, Col: 4, Row: 9},
	))
	k := &clock{}
	settle(t, c, k)

	Step(c, Input{Right: true, Left: true}, k.next())
	assert.InDelta(t, 17.6, c.Hero.Pos.X, 1e-9, "right wins over left")
	assert.Equal(t, DirRight, c.Direction)
	assert.Equal(t, k.ts, c.Hero.RunStart)

	for i := 0; i < 100; i++ {
		Step(c, Input{Right: true}, k.next())
	}
	assert.Equal(t, 3*tile, c.Hero.Pos.X, "stopped by the wall")

	for i := 0; i < 100; i++ {
		Step(c, Input{Left: true}, k.next())
	}
	assert.Zero(t, c.Hero.Pos.X, "clamped at the level's left edge")
	assert.Equal(t, DirLeft, c.Direction)

	Step(c, Input{}, k.next())
	assert.Zero(t, c.Hero.RunStart)
}

func TestHeadHitStrikesQuestionBlock(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 8}, nil,
		level.Item{Kind: level.TileQuestionMark, Col: 1, Row: 7},
	))
	k := &clock{}
	settle(t, c, k)
	require.Equal(t, ground, c.Hero.Pos.Y)

	var struck []level.GridPos
	for i := 0; i < 40 && len(struck) == 0; i++ {
		ev := Step(c, Input{Up: true}, k.next())
		struck = append(struck, ev.Struck...)
	}
	require.Equal(t, []level.GridPos{{Col: 1, Row: 7}}, struck)
	assert.Equal(t, 8*tile, c.Hero.Pos.Y, "clamped under the block")
	assert.Zero(t, c.Hero.JumpStart)
	assert.Equal(t, level.TileEmpty, c.Level.Grid.At(1, 7).Kind)
	require.Len(t, c.RisingCoins, 1)
	assert.Equal(t, RisingCoin{Col: 1, Row: 7, Start: k.ts}, c.RisingCoins[0])

	// Land, wait out the coin, and hit the now empty block again.
	for i := 0; i < 60; i++ {
		Step(c, Input{}, k.next())
	}
	assert.Empty(t, c.RisingCoins)
	for i := 0; i < 40; i++ {
		ev := Step(c, Input{Up: true}, k.next())
		assert.Empty(t, ev.Struck)
	}
	assert.Empty(t, c.RisingCoins)
	assert.Equal(t, 1, c.Strikes.Len())
	assert.Equal(t, level.TileEmpty, c.Level.Grid.At(1, 7).Kind)
}
