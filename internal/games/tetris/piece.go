package tetris

import "github.com/vovakirdan/neon-arcade/internal/core"

// Kind identifies a tetromino. KindNone marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists the playable pieces in spawn-table order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter piece name.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// Color returns the palette colour a piece is drawn in.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorBrightCyan
	case KindO:
		return core.ColorBrightYellow
	case KindT:
		return core.ColorBrightMagenta
	case KindS:
		return core.ColorBrightGreen
	case KindZ:
		return core.ColorBrightRed
	case KindJ:
		return core.ColorBrightBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Shape is a piece's occupancy matrix, indexed [row][col].
type Shape [][]bool

func shapeOf(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, r := range rows {
		s[y] = make([]bool, len(r))
		for x, c := range r {
			s[y][x] = c == '#'
		}
	}
	return s
}

var spawnShapes = map[Kind]Shape{
	KindI: shapeOf("####"),
	KindO: shapeOf("##", "##"),
	KindT: shapeOf(".#.", "###"),
	KindS: shapeOf(".##", "##."),
	KindZ: shapeOf("##.", ".##"),
	KindJ: shapeOf("#..", "###"),
	KindL: shapeOf("..#", "###"),
}

// SpawnShape returns a fresh copy of the kind's spawn orientation.
func SpawnShape(k Kind) Shape {
	return spawnShapes[k].Clone()
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Rotate returns the shape turned 90° clockwise: transpose, then reverse
// each row.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for y := range w {
		r[y] = make([]bool, h)
		for x := range h {
			r[y][x] = s[h-1-x][y]
		}
	}
	return r
}

// Cells calls fn for every occupied cell, offset by (ox, oy).
func (s Shape) Cells(ox, oy int, fn func(x, y int)) {
	for y, row := range s {
		for x, on := range row {
			if on {
				fn(ox+x, oy+y)
			}
		}
	}
}

// Piece is the falling tetromino: its shape and the board position of the
// shape's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}
