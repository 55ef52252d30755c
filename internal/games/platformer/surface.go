package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// cellWidth is the number of screen columns per tile. A terminal cell is
// roughly twice as tall as it is wide, so a tile is two columns by one row.
const cellWidth = 2

const (
	pxPerCol = float64(level.TileSize) / cellWidth
	pxPerRow = float64(level.TileSize)
)

// ScreenSurface draws engine output onto a character screen.
type ScreenSurface struct {
	dst     *core.Screen
	offsetY int
}

// NewScreenSurface creates a surface whose pixel origin is row offsetY.
func NewScreenSurface(dst *core.Screen, offsetY int) *ScreenSurface {
	return &ScreenSurface{dst: dst, offsetY: offsetY}
}

func (s *ScreenSurface) col(x float64) int {
	return int(math.Floor(x / pxPerCol))
}

func (s *ScreenSurface) row(y float64) int {
	return int(math.Floor(y/pxPerRow)) + s.offsetY
}

// FillRect paints the background of the covered cells. Unknown colors use
// the default.
func (s *ScreenSurface) FillRect(x, y, w, h float64, color string) {
	bg, _ := core.ParseHexColor(color)
	x0, y0 := s.col(x), s.row(y)
	x1 := int(math.Ceil((x + w) / pxPerCol))
	y1 := int(math.Ceil((y+h)/pxPerRow)) + s.offsetY
	s.dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Rune: ' ', Bg: bg})
}

// DrawSprite draws the sprite's glyph at the cell containing (x, y).
func (s *ScreenSurface) DrawSprite(sp *level.Sprite, x, y float64) {
	if sp == nil || sp.Name == string(level.TileAir) {
		return
	}
	g := GlyphFor(sp.Name)
	col, row := s.col(x), s.row(y)
	for i, r := range g.Runes {
		cell := s.dst.GetCell(col+i, row)
		cell.Rune = r
		cell.Color = g.Fg
		if g.Bg != core.ColorDefault {
			cell.Bg = g.Bg
		}
		s.dst.SetCell(col+i, row, cell)
	}
}
