// Package levels loads platformer levels from YAML or JSON files.
// This package depends on level but level does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels/formats"
)

//go:embed bundled/*.yaml bundled/*.json
var bundled embed.FS

// Info describes one level for listings.
type Info struct {
	ID    int
	Title string
	Path  string
}

// Loader loads levels from a file system tree.
type Loader struct {
	FS    fs.FS
	Tiles level.TileSet
	// Logger receives warnings about skipped files; nil silences them.
	Logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Tiles: level.DefaultTileSet()}
}

// Bundled creates a loader over the levels compiled into the binary.
func Bundled() *Loader {
	sub, err := fs.Sub(bundled, "bundled")
	if err != nil {
		panic(err)
	}
	return &Loader{FS: sub, Tiles: level.DefaultTileSet()}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Invalid files are
// skipped.
func (l *Loader) LoadAll() ([]*level.Level, error) {
	var out []*level.Level
	err := l.walk(func(p string) {
		lv, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level", "path", p, "err", err)
			}
			return
		}
		out = append(out, lv)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(p string) (*level.Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}

	f, err := formats.Parse(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lv, err := Build(f, l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return lv, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id int) (*level.Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lv := range all {
		if lv.ID == id {
			return lv, nil
		}
	}
	return nil, fmt.Errorf("level not found: %d", id)
}

// List returns the id and title of every valid level in ID order.
func (l *Loader) List() ([]Info, error) {
	var infos []Info
	err := l.walk(func(p string) {
		lv, err := l.LoadFile(p)
		if err != nil {
			return
		}
		infos = append(infos, Info{ID: lv.ID, Title: lv.Title, Path: p})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos, nil
}

func (l *Loader) walk(fn func(p string)) error {
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(p) {
			return nil
		}
		fn(p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking levels: %w", err)
	}
	return nil
}

// IsLevelFile reports whether a path has a supported level extension.
func IsLevelFile(p string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(path.Ext(p)))
}
