package level

import "fmt"

// GridPos addresses one cell of the dense grid.
type GridPos struct {
	Col, Row int
}

// Cell is one resolved grid cell. Every cell holds exactly one kind; empty
// space is TileAir with a nil sprite.
type Cell struct {
	Kind   TileKind
	Sprite *Sprite
	Col    int
	Row    int
}

// Pos returns the cell coordinate.
func (c Cell) Pos() GridPos {
	return GridPos{Col: c.Col, Row: c.Row}
}

// Left returns the left edge in pixels.
func (c Cell) Left() float64 { return float64(c.Col * TileSize) }

// Right returns the right edge in pixels.
func (c Cell) Right() float64 { return float64((c.Col + 1) * TileSize) }

// Top returns the top edge in pixels.
func (c Cell) Top() float64 { return float64(c.Row * TileSize) }

// Bottom returns the bottom edge in pixels.
func (c Cell) Bottom() float64 { return float64((c.Row + 1) * TileSize) }

// Grid is the dense rows x cols array of resolved cells used for O(1) lookup.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid allocates a grid filled with air.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = Cell{Kind: TileAir, Col: c, Row: r}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// In reports whether the coordinate lies inside the grid.
func (g *Grid) In(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// At returns the cell at (col, row). Out-of-range lookups return air.
func (g *Grid) At(col, row int) Cell {
	if !g.In(col, row) {
		return Cell{Kind: TileAir, Col: col, Row: row}
	}
	return g.cells[row][col]
}

// Set replaces the kind and sprite of one cell.
func (g *Grid) Set(col, row int, kind TileKind, sprite *Sprite) {
	if !g.In(col, row) {
		panic(fmt.Sprintf("level: grid write out of range (%d,%d)", col, row))
	}
	g.cells[row][col] = Cell{Kind: kind, Sprite: sprite, Col: col, Row: row}
}

// Each calls fn for every non-air cell in row-major order.
func (g *Grid) Each(fn func(Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			if c.Kind != TileAir {
				fn(c)
			}
		}
	}
}

// Extent returns the number of rows and columns needed to hold all items.
func Extent(items []Item, tiles TileSet) (rows, cols int) {
	for _, it := range items {
		shape := tiles.Shape(it.Kind)
		r := it.Row + it.RepeatRows()*shape.Rows()
		c := it.Col + it.RepeatCols()*shape.Cols()
		if r > rows {
			rows = r
		}
		if c > cols {
			cols = c
		}
	}
	return rows, cols
}

// BuildGrid resolves the sparse item list into a dense grid. Earlier items win
// where placements overlap. Malformed items panic.
func BuildGrid(items []Item, tiles TileSet) *Grid {
	for _, it := range items {
		if it.Col < 0 || it.Row < 0 || it.RepeatCol < 0 || it.RepeatRow < 0 {
			panic(fmt.Sprintf("level: malformed item %+v", it))
		}
	}

	rows, cols := Extent(items, tiles)
	g := NewGrid(rows, cols)
	for _, it := range items {
		g.place(it, tiles.Shape(it.Kind))
	}
	return g
}

// place writes one item into every unclaimed cell it covers.
func (g *Grid) place(it Item, shape Shape) {
	w, h := shape.Cols(), shape.Rows()
	for colRep := 0; colRep < it.RepeatCols(); colRep++ {
		for rowRep := 0; rowRep < it.RepeatRows(); rowRep++ {
			for dc := 0; dc < w; dc++ {
				for dr := 0; dr < h; dr++ {
					sprite := shape.At(dr, dc)
					if sprite == nil {
						continue
					}
					col := it.Col + dc + colRep*w
					row := it.Row + dr + rowRep*h
					if g.cells[row][col].Kind != TileAir {
						continue
					}
					g.cells[row][col] = Cell{Kind: it.Kind, Sprite: sprite, Col: col, Row: row}
				}
			}
		}
	}
}
