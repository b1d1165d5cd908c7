package core

import "strings"

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size grid of coloured runes. Games draw into it and
// the platform turns it into terminal output. Writes outside the grid are
// dropped and reads outside it return a blank cell.
type Screen struct {
	w, h  int
	cells []Cell // row-major, len w*h
}

// NewScreen returns a blank w x h screen.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.alloc(w, h)
	return s
}

func (s *Screen) alloc(w, h int) {
	s.w, s.h = max(w, 0), max(h, 0)
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Resize changes the size, keeping the overlapping top-left region.
func (s *Screen) Resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	old, oldW := s.cells, s.w
	keepW, keepH := min(oldW, w), min(s.h, h)
	s.alloc(w, h)
	for y := range keepH {
		copy(s.cells[y*s.w:y*s.w+keepW], old[y*oldW:y*oldW+keepW])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill sets every cell to r in the default colour.
func (s *Screen) Fill(r rune) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r}
	}
}

func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes text left to right from (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawHLine draws n copies of r to the right of (x, y).
func (s *Screen) DrawHLine(x, y, n int, r rune) {
	for i := range n {
		s.Set(x+i, y, r)
	}
}

// DrawBox outlines r with single-line box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	left, top, right, bottom := r.X, r.Y, r.Right()-1, r.Bottom()-1
	s.DrawHLine(left+1, top, right-left-1, '─')
	s.DrawHLine(left+1, bottom, right-left-1, '─')
	for y := top + 1; y < bottom; y++ {
		s.Set(left, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(left, top, '┌')
	s.Set(right, top, '┐')
	s.Set(left, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawOverlay draws the boxed two-line panel every game uses for its
// start, pause and game-over messages: five rows tall, centred, with the
// title highlighted on the second row and the subtitle on the fourth.
func (s *Screen) DrawOverlay(title, subtitle string) {
	tw, sw := runeLen(title), runeLen(subtitle)
	w := max(tw, sw) + 4
	box := NewRect((s.w-w)/2, (s.h-5)/2, w, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		s.DrawHLine(box.X, y, box.W, ' ')
	}
	s.DrawBox(box)
	s.DrawTextColored(box.X+(w-tw)/2, box.Y+1, title, ColorBrightYellow)
	s.DrawText(box.X+(w-sw)/2, box.Y+3, subtitle)
}

func runeLen(s string) int {
	return len([]rune(s))
}

// Row returns row y without colours. Rows outside the screen are spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen without colours, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
