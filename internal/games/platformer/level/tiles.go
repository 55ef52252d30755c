// Package level holds the platformer level data model: tile kinds, tile shapes,
// placed items and the dense collision grid built from them.
// It has no dependency on rendering or input.
package level

import "strings"

// TileSize is the edge length of one tile in logical pixels.
const TileSize = 16

// TileKind tags a tile by its visual and solidity kind.
type TileKind string

// Base tile kinds. Each resolves to a single sprite.
const (
	TileAir       TileKind = "air"
	TileCollected TileKind = "collected"

	TileFloor        TileKind = "floor"
	TileBrick        TileKind = "brick"
	TileSolid        TileKind = "solid"
	TileEmpty        TileKind = "empty" // struck question block, still solid
	TileStump        TileKind = "stump"
	TileQuestionMark TileKind = "questionMark"
	TileCoin         TileKind = "coin"

	TileCloudTopLeft      TileKind = "cloudTopLeft"
	TileCloudTopMiddle    TileKind = "cloudTopMiddle"
	TileCloudTopRight     TileKind = "cloudTopRight"
	TileCloudBottomLeft   TileKind = "cloudBottomLeft"
	TileCloudBottomMiddle TileKind = "cloudBottomMiddle"
	TileCloudBottomRight  TileKind = "cloudBottomRight"
	TileWaves             TileKind = "waves"
	TileWater             TileKind = "water"

	TileTopLeft   TileKind = "topLeft"
	TileTopMiddle TileKind = "topMiddle"
	TileTopRight  TileKind = "topRight"

	TileBushLeft   TileKind = "bushLeft"
	TileBushMiddle TileKind = "bushMiddle"
	TileBushRight  TileKind = "bushRight"

	TileHillLeft       TileKind = "hillLeft"
	TileHillInnerLeft  TileKind = "hillInnerLeft"
	TileHillMiddle     TileKind = "hillMiddle"
	TileHillInnerRight TileKind = "hillInnerRight"
	TileHillRight      TileKind = "hillRight"
	TileHillTop        TileKind = "hillTop"

	TilePipeTopLeft  TileKind = "pipeTopLeft"
	TilePipeTopRight TileKind = "pipeTopRight"
	TilePipeLeft     TileKind = "pipeLeft"
	TilePipeRight    TileKind = "pipeRight"

	TileTreeTop    TileKind = "treeTop"
	TileTreeBottom TileKind = "treeBottom"
)

// Collection kinds. Each resolves to a multi-cell shape.
const (
	TileTreeCrown   TileKind = "treeCrown"
	TileSmallHill   TileKind = "smallHill"
	TileHill        TileKind = "hill"
	TileBush        TileKind = "bush"
	TileTop         TileKind = "top"
	TileCloud       TileKind = "cloud"
	TilePipeSegment TileKind = "pipeSegment"
	TilePipeTop     TileKind = "pipeTop"
)

// IsSolid reports whether a tile of the given kind blocks movement.
func IsSolid(k TileKind) bool {
	switch k {
	case TileFloor, TileBrick, TileSolid, TileQuestionMark, TileEmpty:
		return true
	}
	return strings.HasPrefix(string(k), "pipe")
}

// Sprite is an opaque reference to one tile-sized image supplied by a frontend.
// The simulation only carries it through; frontends resolve it by name.
type Sprite struct {
	Name string
}

// Shape is the normalized 2D form of a tile: a single sprite, a row of sprites,
// or a grid of sprites with optional holes.
type Shape struct {
	cells [][]*Sprite
}

// Single returns a 1x1 shape.
func Single(s *Sprite) Shape {
	return Shape{cells: [][]*Sprite{{s}}}
}

// Row returns a one-row shape.
func Row(sprites ...*Sprite) Shape {
	return Shape{cells: [][]*Sprite{sprites}}
}

// Grid returns a multi-row shape. Nil entries are holes that claim no cell.
// All rows must have the same length.
func GridShape(rows ...[]*Sprite) Shape {
	for _, r := range rows {
		if len(r) != len(rows[0]) {
			panic("level: ragged tile shape")
		}
	}
	return Shape{cells: rows}
}

// Rows returns the shape height in cells.
func (s Shape) Rows() int {
	return len(s.cells)
}

// Cols returns the shape width in cells.
func (s Shape) Cols() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// At returns the sprite at the given offset, or nil for a hole.
func (s Shape) At(row, col int) *Sprite {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return nil
	}
	return s.cells[row][col]
}

// TileSet maps tile kinds to shapes.
type TileSet map[TileKind]Shape

// Shape returns the shape for a kind. Missing kinds are a contract violation.
func (ts TileSet) Shape(k TileKind) Shape {
	s, ok := ts[k]
	if !ok {
		panic("level: no tile for kind " + string(k))
	}
	return s
}

// Has reports whether the tile set resolves the kind.
func (ts TileSet) Has(k TileKind) bool {
	_, ok := ts[k]
	return ok
}

// Sprite returns the top-left sprite of a kind, used for single-cell redraws.
func (ts TileSet) Sprite(k TileKind) *Sprite {
	return ts.Shape(k).At(0, 0)
}

// DefaultTileSet builds the standard tile set with one named sprite per base
// kind and the composite collections built from them.
func DefaultTileSet() TileSet {
	base := []TileKind{
		TileFloor, TileBrick, TileSolid, TileEmpty, TileStump,
		TileQuestionMark, TileCoin,
		TileCloudTopLeft, TileCloudTopMiddle, TileCloudTopRight,
		TileCloudBottomLeft, TileCloudBottomMiddle, TileCloudBottomRight,
		TileWaves, TileWater,
		TileTopLeft, TileTopMiddle, TileTopRight,
		TileBushLeft, TileBushMiddle, TileBushRight,
		TileHillLeft, TileHillInnerLeft, TileHillMiddle, TileHillInnerRight, TileHillRight, TileHillTop,
		TilePipeTopLeft, TilePipeTopRight, TilePipeLeft, TilePipeRight,
		TileTreeTop, TileTreeBottom,
	}

	sprites := make(map[TileKind]*Sprite, len(base)+1)
	ts := make(TileSet, len(base)+10)
	for _, k := range base {
		sprites[k] = &Sprite{Name: string(k)}
		ts[k] = Single(sprites[k])
	}

	// air and collected share one transparent sprite
	transparent := &Sprite{Name: string(TileAir)}
	ts[TileAir] = Single(transparent)
	ts[TileCollected] = Single(transparent)

	sp := func(k TileKind) *Sprite { return sprites[k] }

	ts[TileTreeCrown] = GridShape(
		[]*Sprite{sp(TileTreeTop)},
		[]*Sprite{sp(TileTreeBottom)},
	)
	ts[TileSmallHill] = GridShape(
		[]*Sprite{nil, nil, sp(TileHillTop), nil, nil},
		[]*Sprite{nil, sp(TileHillLeft), sp(TileHillInnerLeft), sp(TileHillRight), nil},
	)
	ts[TileHill] = GridShape(
		[]*Sprite{nil, nil, sp(TileHillTop), nil, nil},
		[]*Sprite{nil, sp(TileHillLeft), sp(TileHillMiddle), sp(TileHillRight), nil},
		[]*Sprite{sp(TileHillLeft), sp(TileHillInnerLeft), sp(TileHillMiddle), sp(TileHillInnerRight), sp(TileHillRight)},
	)
	ts[TileBush] = Row(sp(TileBushLeft), sp(TileBushMiddle), sp(TileBushRight))
	ts[TileTop] = Row(sp(TileTopLeft), sp(TileTopMiddle), sp(TileTopRight))
	ts[TileCloud] = GridShape(
		[]*Sprite{sp(TileCloudTopLeft), sp(TileCloudTopMiddle), sp(TileCloudTopRight)},
		[]*Sprite{sp(TileCloudBottomLeft), sp(TileCloudBottomMiddle), sp(TileCloudBottomRight)},
	)
	ts[TilePipeSegment] = Row(sp(TilePipeLeft), sp(TilePipeRight))
	ts[TilePipeTop] = GridShape(
		[]*Sprite{sp(TilePipeTopLeft), sp(TilePipeTopRight)},
		[]*Sprite{sp(TilePipeLeft), sp(TilePipeRight)},
	)

	return ts
}
