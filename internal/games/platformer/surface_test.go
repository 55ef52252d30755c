package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

func TestScreenSurfaceFillRect(t *testing.T) {
	dst := core.NewScreen(10, 4)
	s := NewScreenSurface(dst, 1)

	s.FillRect(0, 0, 32, 16, "#000000")

	for x := range 4 {
		assert.Equal(t, core.ColorBlack, dst.GetCell(x, 1).Bg, "col %d", x)
	}
	assert.Equal(t, core.ColorDefault, dst.GetCell(4, 1).Bg)
	assert.Equal(t, core.ColorDefault, dst.GetCell(0, 0).Bg, "offset row is untouched")
}

func TestScreenSurfaceDrawSprite(t *testing.T) {
	dst := core.NewScreen(10, 4)
	s := NewScreenSurface(dst, 1)
	s.FillRect(0, 0, 80, 48, "#000000")

	s.DrawSprite(&level.Sprite{Name: "coin"}, 8, 16)
	assert.Equal(t, '(', dst.GetCell(1, 2).Rune)
	assert.Equal(t, ')', dst.GetCell(2, 2).Rune)
	assert.Equal(t, core.ColorBrightYellow, dst.GetCell(1, 2).Color)
	assert.Equal(t, core.ColorBlack, dst.GetCell(1, 2).Bg, "transparent glyph keeps background")

	s.DrawSprite(&level.Sprite{Name: "questionMark"}, 0, 0)
	assert.Equal(t, core.ColorBrightYellow, dst.GetCell(0, 1).Bg)

	s.DrawSprite(&level.Sprite{Name: "air"}, 64, 0)
	assert.Equal(t, ' ', dst.GetCell(8, 1).Rune)

	// partially off screen
	s.DrawSprite(&level.Sprite{Name: "coin"}, -8, 0)
	assert.Equal(t, ')', dst.GetCell(0, 1).Rune)
}

func TestGlyphFor(t *testing.T) {
	assert.Equal(t, GlyphFor("pipeTopLeft"), GlyphFor("pipeTopRight"))
	assert.NotEqual(t, GlyphFor("pipeTopLeft"), GlyphFor("pipeLeft"))
	assert.Equal(t, GlyphFor("cloudTopLeft"), GlyphFor("cloudBottomRight"))
	assert.Equal(t, unknownGlyph, GlyphFor("nope"))
	assert.Equal(t, core.ColorRed, GlyphFor("heroRunLeft2").Fg)
}

func TestRenderDrawsLevelAndHUD(t *testing.T) {
	isolate(t)

	g := New(ModeCampaign)
	cfg := runtimeConfig()
	g.Reset(cfg)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "World 1-1")
	assert.Contains(t, hud, "Score 000000")
	assert.Contains(t, hud, "♥♥♥")

	// floor occupies level rows 12 and 13, screen rows 13 and 14
	assert.Equal(t, '▓', screen.Get(0, 13))
	assert.Equal(t, core.ColorBrown, screen.GetCell(0, 13).Color)

	hx := int(g.Context().RenderX / 8)
	hy := int(g.Context().Hero.Pos.Y/16) + 1
	assert.Equal(t, '▶', screen.Get(hx+1, hy))
}

func TestRenderOverlays(t *testing.T) {
	isolate(t)

	g := New(ModeCampaign)
	g.Reset(runtimeConfig())
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(40, 16)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
