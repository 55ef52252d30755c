package core

import (
	"strconv"
	"strings"
)

// Color is a palette entry for a screen cell. Terminal frontends map it to an
// ANSI 256-color code; pixel frontends use RGB.
type Color uint8

// Palette colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorBrown
	ColorDarkGreen
	ColorSky
	ColorLavender
)

type rgb struct{ r, g, b uint8 }

var palette = map[Color]rgb{
	ColorDefault:       {0xcc, 0xcc, 0xcc},
	ColorRed:           {0xcd, 0x00, 0x00},
	ColorGreen:         {0x00, 0xcd, 0x00},
	ColorYellow:        {0xcd, 0xcd, 0x00},
	ColorBlue:          {0x00, 0x00, 0xee},
	ColorMagenta:       {0xcd, 0x00, 0xcd},
	ColorCyan:          {0x00, 0xcd, 0xcd},
	ColorWhite:         {0xe5, 0xe5, 0xe5},
	ColorBrightRed:     {0xff, 0x00, 0x00},
	ColorBrightGreen:   {0x00, 0xff, 0x00},
	ColorBrightYellow:  {0xff, 0xff, 0x00},
	ColorBrightBlue:    {0x5c, 0x5c, 0xff},
	ColorBrightMagenta: {0xff, 0x00, 0xff},
	ColorBrightCyan:    {0x00, 0xff, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x87, 0x00},
	ColorGray:          {0x8a, 0x8a, 0x8a},
	ColorBlack:         {0x00, 0x00, 0x00},
	ColorBrown:         {0xaf, 0x5f, 0x00},
	ColorDarkGreen:     {0x00, 0x87, 0x00},
	ColorSky:           {0x5f, 0x87, 0xff},
	ColorLavender:      {0x87, 0x87, 0xff},
}

// RGB returns the color's components.
func (c Color) RGB() (r, g, b uint8) {
	v, ok := palette[c]
	if !ok {
		v = palette[ColorDefault]
	}
	return v.r, v.g, v.b
}

// ParseHexRGB parses a "#rrggbb" string into its components.
func ParseHexRGB(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// ParseHexColor maps a "#rrggbb" string to the nearest palette color.
// Malformed input yields ColorDefault and false.
func ParseHexColor(s string) (Color, bool) {
	pr, pg, pb, ok := ParseHexRGB(s)
	if !ok {
		return ColorDefault, false
	}
	r, g, b := int(pr), int(pg), int(pb)

	best, bestDist := ColorDefault, -1
	for c := ColorRed; c <= ColorLavender; c++ {
		p := palette[c]
		dr, dg, db := r-int(p.r), g-int(p.g), b-int(p.b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}
