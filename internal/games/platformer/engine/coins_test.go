package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

func TestCoinOffsetIsSymmetric(t *testing.T) {
	const dur, dist = 500.0, 48.0
	for ms := 0.0; ms <= dur; ms += 5 {
		a, _ := CoinOffset(ms, dur, dist)
		b, _ := CoinOffset(dur-ms, dur, dist)
		assert.InDelta(t, a, b, 1e-9, "t=%v", ms)
	}

	peak, ok := CoinOffset(dur/2, dur, dist)
	assert.True(t, ok)
	assert.InDelta(t, dist, peak, 1e-9)

	start, ok := CoinOffset(0, dur, dist)
	assert.True(t, ok)
	assert.Zero(t, start)

	_, ok = CoinOffset(dur, dur, dist)
	assert.False(t, ok)
}

func TestStrikeIsIdempotent(t *testing.T) {
	c := newContext(newLevel(10, level.GridPos{Col: 1}, nil,
		level.Item{Kind: level.TileQuestionMark, Col: 4, Row: 6, RepeatCol: 2},
	))
	pos := level.GridPos{Col: 5, Row: 6}

	assert.True(t, StrikeAt(c, pos, 100))
	for i := 0; i < 5; i++ {
		assert.False(t, StrikeAt(c, pos, float64(200+i)))
	}
	require.Len(t, c.RisingCoins, 1)
	assert.Equal(t, RisingCoin{Col: 5, Row: 6, Start: 100}, c.RisingCoins[0])
	assert.Equal(t, 1, c.Strikes.Len())
	assert.Equal(t, level.TileEmpty, c.Level.Grid.At(5, 6).Kind)
	assert.Equal(t, level.TileQuestionMark, c.Level.Grid.At(4, 6).Kind, "neighbour untouched")

	assert.False(t, StrikeAt(c, level.GridPos{Col: 2, Row: 2}, 300), "no block there")
}

func TestCollectCoins(t *testing.T) {
	c := newContext(newLevel(20, level.GridPos{Col: 1, Row: 9}, nil,
		level.Item{Kind: level.TileCoin, Col: 3, Row: 9, RepeatCol: 2},
	))
	k := &clock{}
	settle(t, c, k)

	var got []level.GridPos
	for i := 0; i < 60; i++ {
		ev := Step(c, Input{Right: true}, k.next())
		got = append(got, ev.Coins...)
	}
	assert.Equal(t, []level.GridPos{{Col: 3, Row: 9}, {Col: 4, Row: 9}}, got)
	assert.Equal(t, level.TileCollected, c.Level.Grid.At(3, 9).Kind)
	assert.Equal(t, level.TileCollected, c.Level.Grid.At(4, 9).Kind)
	assert.True(t, c.Level.Dirty())
}

func TestRisingCoinsArePruned(t *testing.T) {
	c := newContext(newLevel(10, level.GridPos{Col: 1, Row: 9}, nil))
	c.RisingCoins = []RisingCoin{{Col: 1, Row: 1, Start: 100}, {Col: 2, Row: 1, Start: 400}}
	c.Timestamp = 700
	PruneRisingCoins(c)
	assert.Equal(t, []RisingCoin{{Col: 2, Row: 1, Start: 400}}, c.RisingCoins)
}
