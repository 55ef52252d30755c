// Package engine advances the platformer simulation one animation frame at a
// time: hero kinematics, enemy patrol, tile-grid collision, block strikes,
// coins, camera scroll, death and level reset.
//
// All state lives in a Context owned by exactly one caller. Step mutates it in
// place and never blocks; the Loop type drives Step from a frame source.
package engine

import (
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// tile is the tile size as a float for pixel math.
const tile = float64(level.TileSize)

// Direction is a horizontal facing or patrol direction.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// String returns "right" or "left".
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Vec is a pixel position. Y grows downward.
type Vec struct {
	X, Y float64
}

// Hero is the player character state.
type Hero struct {
	Pos Vec
	// JumpStart is the timestamp the current jump began; 0 when not jumping.
	JumpStart float64
	// RunStart is the timestamp horizontal input began; 0 when idle.
	// Only animation frame selection reads it.
	RunStart     float64
	Acceleration float64
}

// Gumba is a patrolling enemy. Stomped gumbas stay in the slice with Alive false.
type Gumba struct {
	Pos       Vec
	Direction Direction
	Alive     bool
}

// RisingCoin is the coin token spawned by a struck block.
type RisingCoin struct {
	Col, Row int
	Start    float64
}

// Input is the control state held during a frame.
type Input struct {
	Up    bool
	Left  bool
	Right bool
}

// Context is the per-session aggregate advanced by Step.
type Context struct {
	Level  *level.Level
	Tuning Tuning

	Hero        Hero
	Gumbas      []Gumba
	RisingCoins []RisingCoin
	Strikes     *StrikeRegistry

	Timestamp       float64
	FormerTimestamp float64
	Delta           float64

	Direction       Direction
	IsFalling       bool
	MovedVertically bool
	// HitTopAt is the timestamp of a head hit not yet resolved against blocks.
	HitTopAt float64

	Beaten  bool
	FellOff bool

	ViewWidth    float64
	ViewHeight   float64
	MaxOffset    float64
	ScrollOffset float64
	RenderX      float64

	pristine []level.Item
}

// NewContext captures the pristine state of an initialized level and places
// the hero and gumbas at their spawn points.
func NewContext(lv *level.Level, t Tuning) *Context {
	c := &Context{
		Level:     lv,
		Tuning:    t,
		Strikes:   NewStrikeRegistry(),
		ViewWidth: t.ViewWidth,
		pristine:  lv.Clone(),
	}
	c.ViewHeight = t.ViewHeight
	if c.ViewHeight <= 0 {
		c.ViewHeight = lv.HeightPx()
	}
	Reset(c)
	return c
}

// Pristine returns a copy of the item list captured at level load.
func (c *Context) Pristine() []level.Item {
	items := make([]level.Item, len(c.pristine))
	copy(items, c.pristine)
	return items
}

// SetViewport changes the visible area in pixels. A non-positive height
// falls back to the level height.
func (c *Context) SetViewport(width, height float64) {
	c.ViewWidth = width
	c.ViewHeight = height
	if c.ViewHeight <= 0 {
		c.ViewHeight = c.Level.HeightPx()
	}
	updateCamera(c)
}

func (c *Context) query() Query {
	return Query{Grid: c.Level.Grid, Padding: c.Tuning.HeroPadding}
}

// entityRect returns the tile-sized box at a position.
func entityRect(p Vec) level.Rect {
	return level.Rect{Left: p.X, Top: p.Y, Right: p.X + tile, Bottom: p.Y + tile}
}
