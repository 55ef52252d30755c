package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes. ColorDefault is absent
// and leaves the terminal color alone.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "16",
	core.ColorBrown:         "130",
	core.ColorDarkGreen:     "28",
	core.ColorSky:           "69",
	core.ColorLavender:      "105",
}

// cellStyle returns the style for a foreground/background pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
