package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

type drawCall struct {
	fill   string
	sprite string
	x, y   float64
}

type recorder struct {
	calls []drawCall
}

func (r *recorder) FillRect(x, y, w, h float64, color string) {
	r.calls = append(r.calls, drawCall{fill: color, x: x, y: y})
}

func (r *recorder) DrawSprite(s *level.Sprite, x, y float64) {
	r.calls = append(r.calls, drawCall{sprite: s.Name, x: x, y: y})
}

func (r *recorder) sprites(name string) []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.sprite == name {
			out = append(out, c)
		}
	}
	return out
}

func TestDrawOrderAndCulling(t *testing.T) {
	c := newContext(newLevel(40, level.GridPos{Col: 1, Row: 9}, []level.GumbaStart{{Col: 30, Row: 9}, {Col: 5, Row: 9}},
		level.Item{Kind: level.TileCoin, Col: 3, Row: 5},
	))
	c.RisingCoins = []RisingCoin{{Col: 6, Row: 4, Start: 1}}
	c.Timestamp = 126

	var r recorder
	Draw(c, &r, DefaultSprites())
	require.NotEmpty(t, r.calls)

	assert.Equal(t, drawCall{fill: "#5c94fc"}, r.calls[0])
	last := r.calls[len(r.calls)-1]
	assert.Equal(t, "heroStandRight", last.sprite)
	assert.Equal(t, c.RenderX, last.x)

	// Only the 17 visible floor columns are drawn.
	assert.Len(t, r.sprites("floor"), 17)

	coins := r.sprites("coin")
	require.Len(t, coins, 2)
	assert.Equal(t, drawCall{sprite: "coin", x: 48, y: 80}, coins[0])
	assert.Equal(t, 6*tile, coins[1].x)
	assert.InDelta(t, 4*tile-24, coins[1].y, 1e-9)

	// The gumba at column 30 is off screen but still emitted.
	assert.Len(t, r.sprites("gumba1"), 2)
}

func TestHeroSpriteSelection(t *testing.T) {
	c := newContext(newLevel(10, level.GridPos{Col: 1, Row: 9}, nil))
	sp := DefaultSprites().Hero

	assert.Equal(t, "heroStandRight", HeroSprite(c, sp).Name)

	c.Direction = DirLeft
	assert.Equal(t, "heroStandLeft", HeroSprite(c, sp).Name)

	c.Hero.RunStart = 100
	c.Timestamp = 350
	assert.Equal(t, "heroRunLeft3", HeroSprite(c, sp).Name)

	c.MovedVertically = true
	assert.Equal(t, "heroJumpLeft", HeroSprite(c, sp).Name)
}

func TestGumbaSprite(t *testing.T) {
	sp := DefaultSprites().Gumba
	assert.Equal(t, "gumba1", GumbaSprite(0, sp).Name)
	assert.Equal(t, "gumba2", GumbaSprite(250, sp).Name)
	assert.Equal(t, "gumba1", GumbaSprite(400, sp).Name)
}
