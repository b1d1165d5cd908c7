package chomper

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/chomper/levels"
)

// Cell is one maze tile.
type Cell uint8

// Cell codes. The numbering matches maze files.
const (
	CellWall  Cell = levels.CodeWall
	CellDot   Cell = levels.CodeDot
	CellEmpty Cell = levels.CodeEmpty
	CellPower Cell = levels.CodePower
	CellHouse Cell = levels.CodeHouse
)

// Collectible reports whether eating the cell scores and counts towards
// clearing the level.
func (c Cell) Collectible() bool {
	return c == CellDot || c == CellPower
}

// Layout is an immutable maze template with its fixed start positions.
type Layout struct {
	Name        string
	Cells       [][]Cell
	Player      core.Point
	GhostSpawn  core.Point
	Home        core.Point
	GhostStarts [4]core.Point
}

// classicTemplate is the built-in 21x22 maze.
var classicTemplate = [][]Cell{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 3, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 3, 0},
	{0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 0},
	{0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	{2, 2, 2, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 2, 2, 2},
	{0, 0, 0, 0, 1, 0, 1, 0, 0, 4, 4, 4, 0, 0, 1, 0, 1, 0, 0, 0, 0},
	{2, 2, 2, 2, 1, 1, 1, 0, 4, 4, 4, 4, 4, 0, 1, 1, 1, 2, 2, 2, 2},
	{0, 0, 0, 0, 1, 0, 1, 0, 4, 4, 4, 4, 4, 0, 1, 0, 1, 0, 0, 0, 0},
	{2, 2, 2, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 2, 2, 2},
	{0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0},
	{0, 1, 0, 0, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 0, 0, 1, 0},
	{0, 3, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 3, 0},
	{0, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 0},
	{0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0},
	{0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// ClassicLayout returns the built-in maze.
func ClassicLayout() Layout {
	return Layout{
		Name:       "Classic",
		Cells:      classicTemplate,
		Player:     core.Point{X: 10, Y: 16},
		GhostSpawn: core.Point{X: 10, Y: 8},
		Home:       core.Point{X: 10, Y: 10},
		GhostStarts: [4]core.Point{
			{X: 10, Y: 9},
			{X: 9, Y: 10},
			{X: 10, Y: 10},
			{X: 11, Y: 10},
		},
	}
}

// LayoutFromLevel converts a loaded maze file.
func LayoutFromLevel(lvl levels.Level) (Layout, error) {
	if len(lvl.GhostStarts) != len(Layout{}.GhostStarts) {
		return Layout{}, fmt.Errorf("chomper: maze %q has %d ghosts", lvl.ID, len(lvl.GhostStarts))
	}
	cells := make([][]Cell, len(lvl.Codes))
	for y, row := range lvl.Codes {
		cells[y] = make([]Cell, len(row))
		for x, code := range row {
			cells[y][x] = Cell(code)
		}
	}
	l := Layout{
		Name:       lvl.Name,
		Cells:      cells,
		Player:     lvl.Player,
		GhostSpawn: lvl.GhostSpawn,
		Home:       lvl.Home,
	}
	copy(l.GhostStarts[:], lvl.GhostStarts)
	return l, nil
}

// Maze is the live grid for one level: a copy of the layout's cells that
// is mutated as dots are eaten.
type Maze struct {
	cells [][]Cell
	cols  int
	rows  int
	dots  int
}

// NewMaze copies the template and counts its collectibles.
func NewMaze(template [][]Cell) *Maze {
	m := &Maze{rows: len(template)}
	m.cells = make([][]Cell, len(template))
	for y, row := range template {
		m.cells[y] = slices.Clone(row)
		m.cols = max(m.cols, len(row))
		for _, c := range row {
			if c.Collectible() {
				m.dots++
			}
		}
	}
	return m
}

// Cols implements core.TileGrid.
func (m *Maze) Cols() int { return m.cols }

// Rows implements core.TileGrid.
func (m *Maze) Rows() int { return m.rows }

// Blocked implements core.TileGrid.
func (m *Maze) Blocked(x, y int) bool {
	return m.At(x, y) == CellWall
}

// At returns the cell at (x, y); out-of-range cells read as walls.
func (m *Maze) At(x, y int) Cell {
	if y < 0 || y >= m.rows || x < 0 || x >= len(m.cells[y]) {
		return CellWall
	}
	return m.cells[y][x]
}

// CanEnter reports whether a mover may step onto (x, y), tunnel included.
func (m *Maze) CanEnter(p core.Point) bool {
	return core.CanEnter(m, p.X, p.Y)
}

// DotsRemaining returns the number of uneaten dots and power pellets.
func (m *Maze) DotsRemaining() int {
	return m.dots
}

// Consume eats the collectible at p, if any, and returns what was there.
func (m *Maze) Consume(p core.Point) Cell {
	c := m.At(p.X, p.Y)
	if !c.Collectible() {
		return c
	}
	m.cells[p.Y][p.X] = CellEmpty
	m.dots--
	return c
}

// Set overwrites a cell and keeps the dot count in step.
func (m *Maze) Set(p core.Point, c Cell) {
	if p.Y < 0 || p.Y >= m.rows || p.X < 0 || p.X >= len(m.cells[p.Y]) {
		return
	}
	if m.cells[p.Y][p.X].Collectible() {
		m.dots--
	}
	if c.Collectible() {
		m.dots++
	}
	m.cells[p.Y][p.X] = c
}
