package platformer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Render draws the level, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctx == nil {
		msg := "No levels loaded"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.drawCenteredMessage(dst, "PLATFORMER", msg)
		return
	}

	g.DrawTo(NewScreenSurface(dst, hudHeight))
	g.renderHUD(dst)

	switch {
	case g.won:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.FillRect(core.NewRect(0, 0, dst.Width(), hudHeight), core.Cell{Rune: ' ', Bg: core.ColorBlack})

	parts := []string{
		g.ctx.Level.Title,
		fmt.Sprintf("Score %06d", g.score),
		fmt.Sprintf("Coins %d", g.coins),
	}
	if g.mode == ModeCampaign {
		parts = append(parts, strings.Repeat("♥", g.lives))
	} else {
		parts = append(parts, "Practice")
	}

	x := 1
	for i, p := range parts {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		for _, r := range p {
			dst.SetCell(x, 0, core.Cell{Rune: r, Color: color, Bg: core.ColorBlack})
			x++
		}
		x += 2
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' ', Bg: core.ColorBlack})
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-tw)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-sw)/2, box.Y+3, subtitle)
}
