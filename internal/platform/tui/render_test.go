package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	assert.Equal(t, "hello\nworld", RenderScreen(s))
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.SetCell(3, 1, core.Cell{Rune: '#', Color: core.ColorDefault, Bg: core.ColorSky})

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[1], "#")
}

func TestCellStyleDefaultIsUnstyled(t *testing.T) {
	assert.Equal(t, "x", cellStyle(core.ColorDefault, core.ColorDefault).Render("x"))
}
