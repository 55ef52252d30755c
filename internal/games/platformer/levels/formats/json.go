package formats

import (
	"encoding/json"
	"fmt"
)

// JSONLevel is the browser-era level layout: camelCase keys, tileKey per item.
type JSONLevel struct {
	LevelID         *int       `json:"levelId"`
	Title           string     `json:"title,omitempty"`
	BackgroundColor *string    `json:"backgroundColor"`
	Start           *JSONPos   `json:"start,omitempty"`
	Items           []JSONItem `json:"items"`
	Gumbas          []JSONPos  `json:"gumbas,omitempty"`
}

// JSONItem represents a single placement in JSON format.
type JSONItem struct {
	TileKey   string `json:"tileKey"`
	Col       int    `json:"col"`
	Row       int    `json:"row"`
	RepeatCol int    `json:"repeatCol,omitempty"`
	RepeatRow int    `json:"repeatRow,omitempty"`
}

// JSONPos represents a grid coordinate.
type JSONPos struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// ParseJSON parses a JSON level file. levelId, backgroundColor and items are
// required.
func ParseJSON(data []byte) (File, error) {
	var jl JSONLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return File{}, fmt.Errorf("json unmarshal: %w", err)
	}
	switch {
	case jl.LevelID == nil:
		return File{}, fmt.Errorf("json level: missing levelId")
	case jl.BackgroundColor == nil:
		return File{}, fmt.Errorf("json level: missing backgroundColor")
	case jl.Items == nil:
		return File{}, fmt.Errorf("json level: missing items")
	}

	f := File{
		ID:         *jl.LevelID,
		Title:      jl.Title,
		Background: *jl.BackgroundColor,
		Items:      make([]Item, 0, len(jl.Items)),
		Gumbas:     make([]Pos, 0, len(jl.Gumbas)),
	}
	if jl.Start != nil {
		f.Start = &Pos{Col: jl.Start.Col, Row: jl.Start.Row}
	}
	for _, it := range jl.Items {
		f.Items = append(f.Items, Item{
			Tile:      it.TileKey,
			Col:       it.Col,
			Row:       it.Row,
			RepeatCol: it.RepeatCol,
			RepeatRow: it.RepeatRow,
		})
	}
	for _, g := range jl.Gumbas {
		f.Gumbas = append(f.Gumbas, Pos(g))
	}
	return f, nil
}
