package tetris

import (
	"slices"
	"strings"
)

// Board is the well of locked blocks, indexed [row][col] with row 0 at the
// top.
type Board struct {
	cols  int
	rows  int
	cells [][]Kind
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows, cells: make([][]Kind, rows)}
	for y := range b.cells {
		b.cells[y] = make([]Kind, cols)
	}
	return b
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// At returns the block at (x, y), KindNone when empty or out of range.
func (b *Board) At(x, y int) Kind {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return KindNone
	}
	return b.cells[y][x]
}

// Set writes a block. Out-of-range writes are ignored.
func (b *Board) Set(x, y int, k Kind) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return
	}
	b.cells[y][x] = k
}

// Collides reports whether shape placed at (x, y) leaves the well or
// overlaps a block. Cells above the top edge are allowed.
func (b *Board) Collides(s Shape, x, y int) bool {
	hit := false
	s.Cells(x, y, func(cx, cy int) {
		switch {
		case cx < 0 || cx >= b.cols || cy >= b.rows:
			hit = true
		case cy >= 0 && b.cells[cy][cx] != KindNone:
			hit = true
		}
	})
	return hit
}

// Lock writes the piece into the board. Cells above the top edge are lost.
func (b *Board) Lock(p Piece) {
	p.Shape.Cells(p.X, p.Y, func(x, y int) {
		b.Set(x, y, p.Kind)
	})
}

// RowFull reports whether every cell in row y is occupied.
func (b *Board) RowFull(y int) bool {
	return !slices.Contains(b.cells[y], KindNone)
}

// ClearLines removes every full row, shifts the rows above down and inserts
// empty rows at the top. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]Kind, 0, b.rows)
	for y := range b.cells {
		if !b.RowFull(y) {
			kept = append(kept, b.cells[y])
		}
	}
	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}
	fresh := make([][]Kind, cleared, b.rows)
	for i := range fresh {
		fresh[i] = make([]Kind, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	return n
}

// String renders the board with one piece letter per cell and '.' for
// empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteString(k.String())
		}
	}
	return sb.String()
}
