package engine

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// Surface is a drawing target. Coordinates are view-relative pixels.
type Surface interface {
	FillRect(x, y, w, h float64, color string)
	DrawSprite(s *level.Sprite, x, y float64)
}

// HeroSprites are the hero animation frames per facing.
type HeroSprites struct {
	StandRight, StandLeft *level.Sprite
	JumpRight, JumpLeft   *level.Sprite
	RunRight, RunLeft     []*level.Sprite
}

// Sprites bundles the entity sprites a frontend resolves by name.
type Sprites struct {
	Hero  HeroSprites
	Gumba [2]*level.Sprite
	Coin  *level.Sprite
}

// Animation frame lengths in ms.
const (
	runFrameMs   = 100
	gumbaFrameMs = 200
)

// DefaultSprites names every entity frame.
func DefaultSprites() Sprites {
	s := func(name string) *level.Sprite { return &level.Sprite{Name: name} }
	return Sprites{
		Hero: HeroSprites{
			StandRight: s("heroStandRight"),
			StandLeft:  s("heroStandLeft"),
			JumpRight:  s("heroJumpRight"),
			JumpLeft:   s("heroJumpLeft"),
			RunRight:   []*level.Sprite{s("heroRunRight1"), s("heroRunRight2"), s("heroRunRight3")},
			RunLeft:    []*level.Sprite{s("heroRunLeft1"), s("heroRunLeft2"), s("heroRunLeft3")},
		},
		Gumba: [2]*level.Sprite{s("gumba1"), s("gumba2")},
		Coin:  s(string(level.TileCoin)),
	}
}

// HeroSprite selects the hero frame for the current state.
func HeroSprite(c *Context, sp HeroSprites) *level.Sprite {
	left := c.Direction == DirLeft
	switch {
	case c.MovedVertically:
		if left {
			return sp.JumpLeft
		}
		return sp.JumpRight
	case c.Hero.RunStart != 0:
		frames := sp.RunRight
		if left {
			frames = sp.RunLeft
		}
		if len(frames) > 0 {
			i := int((c.Timestamp-c.Hero.RunStart)/runFrameMs) % len(frames)
			return frames[i]
		}
	}
	if left {
		return sp.StandLeft
	}
	return sp.StandRight
}

// GumbaSprite selects the walking frame for a timestamp.
func GumbaSprite(ts float64, sp [2]*level.Sprite) *level.Sprite {
	return sp[int(ts/gumbaFrameMs)%2]
}

// Draw renders the visible part of the level, rising coins, live gumbas and
// the hero onto the surface.
func Draw(c *Context, s Surface, sp Sprites) {
	s.FillRect(0, 0, c.ViewWidth, c.ViewHeight, c.Level.Background)

	g := c.Level.Grid
	first := max(0, cellIndex(c.ScrollOffset))
	last := min(g.Cols()-1, int(math.Ceil((c.ScrollOffset+c.ViewWidth)/tile)))
	for row := 0; row < g.Rows(); row++ {
		for col := first; col <= last; col++ {
			cell := g.At(col, row)
			if cell.Sprite == nil || cell.Kind == level.TileAir || cell.Kind == level.TileCollected {
				continue
			}
			s.DrawSprite(cell.Sprite, cell.Left()-c.ScrollOffset, cell.Top())
		}
	}

	for _, rc := range c.RisingCoins {
		off, ok := CoinOffset(c.Timestamp-rc.Start, c.Tuning.RiseDuration, c.Tuning.RiseDistance)
		if !ok {
			continue
		}
		s.DrawSprite(sp.Coin, float64(rc.Col)*tile-c.ScrollOffset, float64(rc.Row)*tile-off)
	}

	for _, gb := range c.Gumbas {
		if !gb.Alive {
			continue
		}
		s.DrawSprite(GumbaSprite(c.Timestamp, sp.Gumba), gb.Pos.X-c.ScrollOffset, gb.Pos.Y)
	}

	s.DrawSprite(HeroSprite(c, sp.Hero), c.RenderX, c.Hero.Pos.Y)
}
