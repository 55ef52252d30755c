package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         int        `yaml:"id"`
	Title      string     `yaml:"title"`
	Background string     `yaml:"background"`
	Start      *YAMLPos   `yaml:"start,omitempty"`
	Items      []YAMLItem `yaml:"items"`
	Gumbas     []YAMLPos  `yaml:"gumbas,omitempty"`
}

// YAMLItem represents a single placement in YAML format.
type YAMLItem struct {
	Tile      string `yaml:"tile"`
	Col       int    `yaml:"col"`
	Row       int    `yaml:"row"`
	RepeatCol int    `yaml:"repeat_col,omitempty"`
	RepeatRow int    `yaml:"repeat_row,omitempty"`
}

// YAMLPos represents a grid coordinate.
type YAMLPos struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (File, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return File{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	f := File{
		ID:         yl.ID,
		Title:      yl.Title,
		Background: yl.Background,
		Items:      make([]Item, 0, len(yl.Items)),
		Gumbas:     make([]Pos, 0, len(yl.Gumbas)),
	}
	if yl.Start != nil {
		f.Start = &Pos{Col: yl.Start.Col, Row: yl.Start.Row}
	}
	for _, it := range yl.Items {
		f.Items = append(f.Items, Item(it))
	}
	for _, g := range yl.Gumbas {
		f.Gumbas = append(f.Gumbas, Pos(g))
	}
	return f, nil
}
