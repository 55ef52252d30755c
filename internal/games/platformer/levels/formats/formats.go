// Package formats provides level file format parsers.
package formats

import "fmt"

// File is a parsed level file before validation.
type File struct {
	ID         int
	Title      string
	Background string
	Start      *Pos
	Items      []Item
	Gumbas     []Pos
}

// Item is one placement as written in a level file.
type Item struct {
	Tile      string
	Col       int
	Row       int
	RepeatCol int
	RepeatRow int
}

// Pos is a grid coordinate as written in a level file.
type Pos struct {
	Col int
	Row int
}

// Parse routes to the parser for a file extension.
func Parse(data []byte, ext string) (File, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return File{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
