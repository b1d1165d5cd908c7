package tetris

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	cellW   = 2
	topRow  = 1
	panelW  = 16
	minRows = 2 // Box border
)

// Render draws the well, the falling piece with its landing shadow, the
// side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	g.loop.Render(dst)
	if !fits(g.field, dst) {
		return
	}

	f := g.field
	switch {
	case f.over:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score %d  Lines %d  -  Enter", f.score, f.lines))
	case g.run.State() == core.RunNotStarted:
		dst.DrawOverlay("TETRIS", "Enter to start")
	case g.run.State() == core.RunPaused:
		dst.DrawOverlay("PAUSED", "P to resume")
	}
}

func fits(f *Field, dst *core.Screen) bool {
	w := f.board.Cols()*cellW + 2 + panelW
	h := f.board.Rows() + minRows + topRow
	return dst.Width() >= w && dst.Height() >= h
}

func renderField(f *Field, dst *core.Screen) {
	if !fits(f, dst) {
		dst.DrawOverlay("Window too small", "Please resize terminal")
		return
	}

	b := f.board
	boxW := b.Cols()*cellW + 2
	ox := (dst.Width() - boxW - panelW) / 2
	dst.DrawBox(core.NewRect(ox, topRow, boxW, b.Rows()+2))

	cell := func(x, y int, r rune, c core.Color) {
		if y < 0 {
			return
		}
		sx, sy := ox+1+x*cellW, topRow+1+y
		dst.SetColored(sx, sy, r, c)
		dst.SetColored(sx+1, sy, r, c)
	}

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			if k := b.At(x, y); k != KindNone {
				cell(x, y, '█', k.Color())
			}
		}
	}

	if f.piece.Kind != KindNone && !f.over {
		p := f.piece
		if d := f.dropDistance(); d > 0 {
			p.Shape.Cells(p.X, p.Y+d, func(x, y int) {
				cell(x, y, '░', core.ColorGray)
			})
		}
		p.Shape.Cells(p.X, p.Y, func(x, y int) {
			cell(x, y, '█', p.Kind.Color())
		})
	}

	px := ox + boxW + 2
	dst.DrawTextColored(px, topRow+1, "TETRIS", core.ColorBrightWhite)
	dst.DrawText(px, topRow+3, fmt.Sprintf("Score %d", f.score))
	dst.DrawText(px, topRow+4, fmt.Sprintf("Lines %d", f.lines))
	dst.DrawText(px, topRow+5, fmt.Sprintf("Level %d", f.level))
	dst.DrawTextColored(px, topRow+7, "←/→ move", core.ColorGray)
	dst.DrawTextColored(px, topRow+8, "↑ rotate", core.ColorGray)
	dst.DrawTextColored(px, topRow+9, "↓ soft drop", core.ColorGray)
	dst.DrawTextColored(px, topRow+10, "space drop", core.ColorGray)
}
