package platformer

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Glyph is how one sprite looks on a character screen: two runes per tile.
type Glyph struct {
	Runes [2]rune
	Fg    core.Color
	// Bg paints the cell background; ColorDefault keeps the level background.
	Bg core.Color
}

func glyph(s string, fg, bg core.Color) Glyph {
	r := []rune(s)
	return Glyph{Runes: [2]rune{r[0], r[1]}, Fg: fg, Bg: bg}
}

var glyphs = map[string]Glyph{
	"floor":        glyph("▓▓", core.ColorBrown, core.ColorDefault),
	"brick":        glyph("▙▟", core.ColorOrange, core.ColorBrown),
	"solid":        glyph("██", core.ColorBrown, core.ColorDefault),
	"empty":        glyph("▪▪", core.ColorBlack, core.ColorBrown),
	"stump":        glyph("▐▌", core.ColorBrown, core.ColorDefault),
	"questionMark": glyph("??", core.ColorBlack, core.ColorBrightYellow),
	"coin":         glyph("()", core.ColorBrightYellow, core.ColorDefault),
	"waves":        glyph("~~", core.ColorBrightBlue, core.ColorDefault),
	"water":        glyph("≈≈", core.ColorBlue, core.ColorBlue),
	"treeTop":      glyph("♣♣", core.ColorGreen, core.ColorDefault),
	"treeBottom":   glyph("▐▌", core.ColorBrown, core.ColorDefault),
	"hillTop":      glyph("▲▲", core.ColorDarkGreen, core.ColorDefault),

	"heroStandRight": glyph("█▶", core.ColorRed, core.ColorDefault),
	"heroStandLeft":  glyph("◀█", core.ColorRed, core.ColorDefault),
	"heroJumpRight":  glyph("▀▶", core.ColorRed, core.ColorDefault),
	"heroJumpLeft":   glyph("◀▀", core.ColorRed, core.ColorDefault),
	"heroRunRight1":  glyph("▚▶", core.ColorRed, core.ColorDefault),
	"heroRunRight2":  glyph("▞▶", core.ColorRed, core.ColorDefault),
	"heroRunRight3":  glyph("█▶", core.ColorRed, core.ColorDefault),
	"heroRunLeft1":   glyph("◀▚", core.ColorRed, core.ColorDefault),
	"heroRunLeft2":   glyph("◀▞", core.ColorRed, core.ColorDefault),
	"heroRunLeft3":   glyph("◀█", core.ColorRed, core.ColorDefault),

	"gumba1": glyph("◢◣", core.ColorBrown, core.ColorDefault),
	"gumba2": glyph("◣◢", core.ColorBrown, core.ColorDefault),
}

// families covers composite tiles whose parts share a look.
var families = []struct {
	prefix string
	glyph  Glyph
}{
	{"pipeTop", glyph("▀▀", core.ColorBrightGreen, core.ColorGreen)},
	{"pipe", glyph("▌▐", core.ColorBrightGreen, core.ColorGreen)},
	{"cloud", glyph("░░", core.ColorBrightWhite, core.ColorDefault)},
	{"hill", glyph("▒▒", core.ColorDarkGreen, core.ColorDefault)},
	{"bush", glyph("▒▒", core.ColorBrightGreen, core.ColorDefault)},
	{"top", glyph("▔▔", core.ColorGreen, core.ColorDefault)},
}

var unknownGlyph = glyph("??", core.ColorMagenta, core.ColorDefault)

// GlyphFor resolves a sprite name.
func GlyphFor(name string) Glyph {
	if g, ok := glyphs[name]; ok {
		return g
	}
	for _, f := range families {
		if strings.HasPrefix(name, f.prefix) {
			return f.glyph
		}
	}
	return unknownGlyph
}
