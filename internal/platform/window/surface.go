package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// ImageSurface draws engine output as flat colored tiles.
type ImageSurface struct {
	dst     *ebiten.Image
	offsetY float32
}

// NewImageSurface creates a surface whose pixel origin is offsetY pixels down.
func NewImageSurface(dst *ebiten.Image, offsetY float32) *ImageSurface {
	return &ImageSurface{dst: dst, offsetY: offsetY}
}

// FillRect fills a rectangle with a "#rrggbb" color. Malformed colors are black.
func (s *ImageSurface) FillRect(x, y, w, h float64, hex string) {
	vector.FillRect(s.dst, float32(x), float32(y)+s.offsetY, float32(w), float32(h), hexColor(hex), false)
}

// DrawSprite draws a one-tile block in the sprite's glyph colors.
func (s *ImageSurface) DrawSprite(sp *level.Sprite, x, y float64) {
	if sp == nil || sp.Name == string(level.TileAir) {
		return
	}
	fg, bg, hasBg := spriteColors(sp.Name)
	px, py := float32(x), float32(y)+s.offsetY
	const size = float32(level.TileSize)
	if hasBg {
		vector.FillRect(s.dst, px, py, size, size, bg, false)
	}
	vector.FillRect(s.dst, px+2, py+2, size-4, size-4, fg, false)
}

func hexColor(hex string) color.RGBA {
	r, g, b, ok := core.ParseHexRGB(hex)
	if !ok {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func paletteColor(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// spriteColors returns the colors of the named sprite's terminal glyph.
func spriteColors(name string) (fg, bg color.RGBA, hasBg bool) {
	glyph := platformer.GlyphFor(name)
	fg = paletteColor(glyph.Fg)
	if glyph.Bg != core.ColorDefault {
		return fg, paletteColor(glyph.Bg), true
	}
	return fg, color.RGBA{}, false
}
