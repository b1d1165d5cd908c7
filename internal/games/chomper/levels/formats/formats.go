// Package formats provides pluggable maze file format parsers.
package formats

import "github.com/vovakirdan/neon-arcade/internal/core"

// Point is a grid position as written in maze files.
type Point struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
}

// ToCore converts to a core.Point.
func (p Point) ToCore() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// File is the on-disk shape shared by every format.
type File struct {
	ID         string            `yaml:"id" toml:"id"`
	Name       string            `yaml:"name" toml:"name"`
	Layout     []string          `yaml:"layout" toml:"layout"`
	Player     Point             `yaml:"player" toml:"player"`
	GhostSpawn Point             `yaml:"ghost_spawn" toml:"ghost_spawn"`
	Home       Point             `yaml:"home" toml:"home"`
	Ghosts     []Point           `yaml:"ghosts" toml:"ghosts"`
	Metadata   map[string]string `yaml:"metadata,omitempty" toml:"metadata"`
}

// Maze represents a parsed maze ready for validation.
type Maze struct {
	ID          string
	Name        string
	Rows        []string
	Player      core.Point
	GhostSpawn  core.Point
	Home        core.Point
	GhostStarts []core.Point
	Metadata    map[string]string
}

func (f File) toMaze() Maze {
	m := Maze{
		ID:         f.ID,
		Name:       f.Name,
		Rows:       f.Layout,
		Player:     f.Player.ToCore(),
		GhostSpawn: f.GhostSpawn.ToCore(),
		Home:       f.Home.ToCore(),
		Metadata:   f.Metadata,
	}
	for _, g := range f.Ghosts {
		m.GhostStarts = append(m.GhostStarts, g.ToCore())
	}
	return m
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
