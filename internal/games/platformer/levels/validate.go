package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

// DefaultBackground is used when a level file names no background color.
const DefaultBackground = "#9494ff"

// DefaultStart is the hero spawn when a level file names none.
var DefaultStart = level.GridPos{Col: 1, Row: 0}

// Validate checks a parsed file against a tile set. It returns every problem
// found, joined.
func Validate(f formats.File, tiles level.TileSet) error {
	var errs []error
	if f.ID < 0 {
		errs = append(errs, fmt.Errorf("id %d is negative", f.ID))
	}
	if len(f.Items) == 0 {
		errs = append(errs, errors.New("no items"))
	}
	for i, it := range f.Items {
		if !tiles.Has(level.TileKind(it.Tile)) {
			errs = append(errs, fmt.Errorf("item %d: unknown tile %q", i, it.Tile))
		}
		if it.Col < 0 || it.Row < 0 {
			errs = append(errs, fmt.Errorf("item %d: negative position (%d,%d)", i, it.Col, it.Row))
		}
		if it.RepeatCol < 0 || it.RepeatRow < 0 {
			errs = append(errs, fmt.Errorf("item %d: negative repeat (%d,%d)", i, it.RepeatCol, it.RepeatRow))
		}
	}
	for i, g := range f.Gumbas {
		if g.Col < 0 || g.Row < 0 {
			errs = append(errs, fmt.Errorf("gumba %d: negative position (%d,%d)", i, g.Col, g.Row))
		}
	}
	if f.Start != nil && (f.Start.Col < 0 || f.Start.Row < 0) {
		errs = append(errs, fmt.Errorf("start: negative position (%d,%d)", f.Start.Col, f.Start.Row))
	}
	return errors.Join(errs...)
}

// Build validates a parsed file and turns it into an initialized level.
func Build(f formats.File, tiles level.TileSet) (*level.Level, error) {
	if err := Validate(f, tiles); err != nil {
		return nil, fmt.Errorf("invalid level %d: %w", f.ID, err)
	}

	lv := &level.Level{
		ID:         f.ID,
		Title:      f.Title,
		Background: f.Background,
		Start:      DefaultStart,
		Items:      make([]level.Item, 0, len(f.Items)),
		Gumbas:     make([]level.GumbaStart, 0, len(f.Gumbas)),
	}
	if lv.Title == "" {
		lv.Title = fmt.Sprintf("Level %d", f.ID)
	}
	if lv.Background == "" {
		lv.Background = DefaultBackground
	}
	if f.Start != nil {
		lv.Start = level.GridPos{Col: f.Start.Col, Row: f.Start.Row}
	}
	for _, it := range f.Items {
		lv.Items = append(lv.Items, level.Item{
			Kind:      level.TileKind(it.Tile),
			Col:       it.Col,
			Row:       it.Row,
			RepeatCol: it.RepeatCol,
			RepeatRow: it.RepeatRow,
		})
	}
	for _, g := range f.Gumbas {
		lv.Gumbas = append(lv.Gumbas, level.GumbaStart{Col: g.Col, Row: g.Row})
	}

	lv.Init(tiles)
	return lv, nil
}
