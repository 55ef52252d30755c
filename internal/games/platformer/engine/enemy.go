package engine

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// SpawnGumbas places one live, left-facing gumba per spawn point.
func SpawnGumbas(starts []level.GumbaStart) []Gumba {
	gs := make([]Gumba, 0, len(starts))
	for _, s := range starts {
		gs = append(gs, Gumba{
			Pos:       Vec{X: float64(s.Col) * tile, Y: float64(s.Row) * tile},
			Direction: DirLeft,
			Alive:     true,
		})
	}
	return gs
}

// PatrolBounds returns the x range a gumba may occupy from its position:
// between the nearest walls on its row and never past the level edges.
func PatrolBounds(c *Context, p Vec) (minX, maxX float64) {
	q := c.query()
	minX = math.Max(q.MinX(p), 0)
	maxX = math.Min(q.MaxX(p), c.Level.WidthPx()-tile)
	return minX, maxX
}

// MoveGumbas advances every live gumba horizontally, reversing at walls.
// Gumbas are not affected by gravity.
func MoveGumbas(c *Context) {
	step := c.Tuning.GumbaSpeed * c.Delta
	for i := range c.Gumbas {
		g := &c.Gumbas[i]
		if !g.Alive {
			continue
		}
		minX, maxX := PatrolBounds(c, g.Pos)
		if g.Direction == DirLeft {
			nx := g.Pos.X - step
			if nx <= minX {
				g.Pos.X = minX
				g.Direction = DirRight
				continue
			}
			g.Pos.X = nx
			continue
		}
		nx := g.Pos.X + step
		if nx >= maxX {
			g.Pos.X = maxX
			g.Direction = DirLeft
			continue
		}
		g.Pos.X = nx
	}
}

// Contact is the outcome of a hero and gumba overlap.
type Contact struct {
	Index   int
	Stomped bool
}

// ResolveGumbaContact checks the hero against live gumbas. Only the first
// overlapping gumba is resolved: a falling hero stomps it, otherwise the hero
// is beaten.
func ResolveGumbaContact(c *Context) (Contact, bool) {
	hero := entityRect(c.Hero.Pos).Inset(c.Tuning.HeroPadding, 0)
	for i := range c.Gumbas {
		g := &c.Gumbas[i]
		if !g.Alive || !hero.Overlaps(entityRect(g.Pos)) {
			continue
		}
		if c.IsFalling {
			g.Alive = false
			return Contact{Index: i, Stomped: true}, true
		}
		c.Beaten = true
		return Contact{Index: i}, true
	}
	return Contact{}, false
}
