package engine

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// Query answers nearest-solid-cell questions for a tile-sized entity against
// the grid. Horizontal extents shrink by Padding on each side.
//
// Each directional lookup returns the first solid cell found walking away from
// the entity, and false when the walk leaves the grid without a hit.
type Query struct {
	Grid    *level.Grid
	Padding float64
}

func cellIndex(px float64) int {
	return int(math.Floor(px / tile))
}

// colSpan returns the clipped column range touched by the span [left, right).
func (q Query) colSpan(left, right float64) (lo, hi int) {
	lo = max(0, cellIndex(left))
	hi = min(q.Grid.Cols()-1, cellIndex(right))
	return lo, hi
}

// rowSpan returns the clipped row range touched by the span [top, bottom).
func (q Query) rowSpan(top, bottom float64) (lo, hi int) {
	lo = max(0, cellIndex(top))
	hi = min(q.Grid.Rows()-1, int(math.Ceil(bottom/tile))-1)
	return lo, hi
}

// Below returns the nearest solid cell under the entity.
func (q Query) Below(p Vec) (level.Cell, bool) {
	left, right := p.X+q.Padding, p.X+tile-q.Padding
	lo, hi := q.colSpan(left, right)
	for row := max(0, cellIndex(p.Y)+1); row < q.Grid.Rows(); row++ {
		for col := lo; col <= hi; col++ {
			c := q.Grid.At(col, row)
			if level.IsSolid(c.Kind) && c.Left() < right && c.Right() > left {
				return c, true
			}
		}
	}
	return level.Cell{}, false
}

// Above returns the nearest solid cell over the entity.
func (q Query) Above(p Vec) (level.Cell, bool) {
	left, right := p.X+q.Padding, p.X+tile-q.Padding
	lo, hi := q.colSpan(left, right)
	for row := min(q.Grid.Rows()-1, cellIndex(p.Y)-1); row >= 0; row-- {
		for col := lo; col <= hi; col++ {
			c := q.Grid.At(col, row)
			if level.IsSolid(c.Kind) && c.Left() < right && c.Right() > left && c.Bottom() <= p.Y {
				return c, true
			}
		}
	}
	return level.Cell{}, false
}

// Right returns the nearest solid cell to the right of the entity that
// vertically overlaps it.
func (q Query) Right(p Vec) (level.Cell, bool) {
	edge := p.X + tile - q.Padding
	top, bottom := p.Y, p.Y+tile
	lo, hi := q.rowSpan(top, bottom)
	for col := max(0, cellIndex(edge)); col < q.Grid.Cols(); col++ {
		for row := lo; row <= hi; row++ {
			c := q.Grid.At(col, row)
			if level.IsSolid(c.Kind) && c.Top() < bottom && c.Bottom() > top && c.Left() >= edge {
				return c, true
			}
		}
	}
	return level.Cell{}, false
}

// Left returns the nearest solid cell to the left of the entity that
// vertically overlaps it.
func (q Query) Left(p Vec) (level.Cell, bool) {
	edge := p.X + q.Padding
	top, bottom := p.Y, p.Y+tile
	lo, hi := q.rowSpan(top, bottom)
	for col := min(q.Grid.Cols()-1, cellIndex(edge)); col >= 0; col-- {
		for row := lo; row <= hi; row++ {
			c := q.Grid.At(col, row)
			if level.IsSolid(c.Kind) && c.Top() < bottom && c.Bottom() > top && c.Right() <= edge {
				return c, true
			}
		}
	}
	return level.Cell{}, false
}

// MaxY is the lowest y the entity may occupy, or +Inf.
func (q Query) MaxY(p Vec) float64 {
	if c, ok := q.Below(p); ok {
		return c.Top() - tile
	}
	return math.Inf(1)
}

// MinY is the highest y the entity may occupy, or -Inf.
func (q Query) MinY(p Vec) float64 {
	if c, ok := q.Above(p); ok {
		return c.Bottom()
	}
	return math.Inf(-1)
}

// MaxX is the rightmost x the entity may occupy, or +Inf.
func (q Query) MaxX(p Vec) float64 {
	if c, ok := q.Right(p); ok {
		return c.Left() - tile
	}
	return math.Inf(1)
}

// MinX is the leftmost x the entity may occupy, or -Inf.
func (q Query) MinX(p Vec) float64 {
	if c, ok := q.Left(p); ok {
		return c.Right()
	}
	return math.Inf(-1)
}
