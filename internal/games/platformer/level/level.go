package level

// Item is an authored placement of a tile at a grid coordinate.
// A zero repeat count means 1.
type Item struct {
	Kind      TileKind
	Col       int
	Row       int
	RepeatCol int
	RepeatRow int
}

// RepeatCols returns the effective horizontal repeat count.
func (it Item) RepeatCols() int {
	if it.RepeatCol <= 0 {
		return 1
	}
	return it.RepeatCol
}

// RepeatRows returns the effective vertical repeat count.
func (it Item) RepeatRows() int {
	if it.RepeatRow <= 0 {
		return 1
	}
	return it.RepeatRow
}

// Rect is a pixel-space rectangle with float edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Overlaps reports whether two rectangles share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Inset shrinks the rectangle by dx horizontally and dy vertically on each side.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
}

// GumbaStart is an enemy spawn point.
type GumbaStart struct {
	Col, Row int
}

// Level is one playable level. Items is the sparse authoring form and may be
// mutated at runtime; Grid is derived from it.
type Level struct {
	ID         int
	Title      string
	Background string
	Items      []Item
	Gumbas     []GumbaStart
	Start      GridPos

	Tiles TileSet
	Grid  *Grid

	dirty bool
}

// Init normalizes the item list and builds the dense grid.
func (l *Level) Init(tiles TileSet) {
	l.Tiles = tiles
	l.Items = Normalize(l.Items)
	l.Grid = BuildGrid(l.Items, tiles)
	l.dirty = false
}

// RowCount returns the number of grid rows.
func (l *Level) RowCount() int { return l.Grid.Rows() }

// ColCount returns the number of grid columns.
func (l *Level) ColCount() int { return l.Grid.Cols() }

// WidthPx returns the level width in pixels.
func (l *Level) WidthPx() float64 { return float64(l.Grid.Cols() * TileSize) }

// HeightPx returns the level height in pixels.
func (l *Level) HeightPx() float64 { return float64(l.Grid.Rows() * TileSize) }

// Rect returns the pixel rectangle covered by an item including repeats.
func (l *Level) Rect(it Item) Rect {
	shape := l.Tiles.Shape(it.Kind)
	return Rect{
		Left:   float64(it.Col * TileSize),
		Top:    float64(it.Row * TileSize),
		Right:  float64((it.Col + it.RepeatCols()*shape.Cols()) * TileSize),
		Bottom: float64((it.Row + it.RepeatRows()*shape.Rows()) * TileSize),
	}
}

// SetKind changes the kind of item i and of its grid cell. Only single-cell
// items may be mutated; Normalize guarantees that for interactive kinds.
func (l *Level) SetKind(i int, kind TileKind) {
	it := &l.Items[i]
	if l.Grid.At(it.Col, it.Row).Kind == it.Kind {
		l.Grid.Set(it.Col, it.Row, kind, l.Tiles.Sprite(kind))
	}
	it.Kind = kind
	l.dirty = true
}

// Dirty reports whether items were mutated since the grid was last built.
func (l *Level) Dirty() bool { return l.dirty }

// Clone returns a deep copy of the item list.
func (l *Level) Clone() []Item {
	items := make([]Item, len(l.Items))
	copy(items, l.Items)
	return items
}

// Reset restores the item list from a pristine copy and rebuilds the grid
// when items were mutated.
func (l *Level) Reset(pristine []Item) {
	if !l.dirty {
		return
	}
	l.Items = make([]Item, len(pristine))
	copy(l.Items, pristine)
	l.Grid = BuildGrid(l.Items, l.Tiles)
	l.dirty = false
}

// Normalize expands multi-cell coin and question-mark placements into one
// item per cell so that runtime mutations address a single cell.
func Normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !isInteractive(it.Kind) || (it.RepeatCols() == 1 && it.RepeatRows() == 1) {
			out = append(out, it)
			continue
		}
		for dc := 0; dc < it.RepeatCols(); dc++ {
			for dr := 0; dr < it.RepeatRows(); dr++ {
				out = append(out, Item{Kind: it.Kind, Col: it.Col + dc, Row: it.Row + dr})
			}
		}
	}
	return out
}

func isInteractive(k TileKind) bool {
	return k == TileCoin || k == TileQuestionMark || k == TileCollected || k == TileEmpty
}
