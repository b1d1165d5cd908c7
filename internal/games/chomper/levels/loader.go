// Package levels loads Chomper maze files.
// The chomper package depends on levels but levels does not depend on chomper.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/chomper/levels/formats"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported maze format")

// ErrInvalidMaze is wrapped by every validation failure.
var ErrInvalidMaze = errors.New("invalid maze")

// Cell codes produced by the loader.
const (
	CodeWall  = 0
	CodeDot   = 1
	CodeEmpty = 2
	CodePower = 3
	CodeHouse = 4
)

var glyphs = map[rune]int{
	'#': CodeWall,
	'.': CodeDot,
	' ': CodeEmpty,
	'o': CodePower,
	'=': CodeHouse,
}

// GhostCount is the number of ghost start positions a maze must define.
const GhostCount = 4

// Level represents a complete maze definition.
type Level struct {
	ID          string
	Name        string
	Width       int
	Height      int
	Codes       [][]int
	Player      core.Point
	GhostSpawn  core.Point
	Home        core.Point
	GhostStarts []core.Point
	Metadata    map[string]string
	FilePath    string
}

// Loader handles loading mazes from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: maze not found: %s", id)
}

// LoadFile loads and validates a single maze file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	lvl, err := Build(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// Build converts and validates a parsed maze.
func Build(m formats.Maze) (Level, error) {
	if len(m.Rows) == 0 {
		return Level{}, fmt.Errorf("%w: empty layout", ErrInvalidMaze)
	}

	width := len([]rune(m.Rows[0]))
	codes := make([][]int, len(m.Rows))
	dots := 0
	for y, row := range m.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return Level{}, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidMaze, y, len(runes), width)
		}
		codes[y] = make([]int, width)
		for x, r := range runes {
			code, ok := glyphs[r]
			if !ok {
				return Level{}, fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrInvalidMaze, r, x, y)
			}
			if code == CodeDot || code == CodePower {
				dots++
			}
			codes[y][x] = code
		}
	}
	if dots == 0 {
		return Level{}, fmt.Errorf("%w: no dots", ErrInvalidMaze)
	}
	if len(m.GhostStarts) != GhostCount {
		return Level{}, fmt.Errorf("%w: %d ghost starts, expected %d", ErrInvalidMaze, len(m.GhostStarts), GhostCount)
	}

	checks := []namedPoint{
		{"player", m.Player},
		{"ghost_spawn", m.GhostSpawn},
		{"home", m.Home},
	}
	for i, g := range m.GhostStarts {
		checks = append(checks, namedPoint{fmt.Sprintf("ghost %d", i), g})
	}
	for _, c := range checks {
		p := c.p
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= len(codes) || codes[p.Y][p.X] == CodeWall {
			return Level{}, fmt.Errorf("%w: %s at (%d, %d) is not an open cell", ErrInvalidMaze, c.name, p.X, p.Y)
		}
	}

	return Level{
		ID:          m.ID,
		Name:        m.Name,
		Width:       width,
		Height:      len(codes),
		Codes:       codes,
		Player:      m.Player,
		GhostSpawn:  m.GhostSpawn,
		Home:        m.Home,
		GhostStarts: slices.Clone(m.GhostStarts),
		Metadata:    m.Metadata,
	}, nil
}

type namedPoint struct {
	name string
	p    core.Point
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Maze, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	default:
		return formats.Maze{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
