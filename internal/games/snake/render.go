package snake

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	hudHeight = 2
	cellW     = 2
)

// Render draws the board, the snake, the food and any overlay.
func (g *Game) Render(dst *core.Screen) {
	g.loop.Render(dst)
	if !fits(g.world, dst) {
		return
	}

	w := g.world
	switch {
	case w.won:
		dst.DrawOverlay("YOU WIN", fmt.Sprintf("Score %d  -  Enter", w.score))
	case w.over:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score %d  -  Enter", w.score))
	case g.run.State() == core.RunNotStarted:
		dst.DrawOverlay("SNAKE", "Enter to start")
	case g.run.State() == core.RunPaused:
		dst.DrawOverlay("PAUSED", "P to resume")
	}
}

func fits(w *World, dst *core.Screen) bool {
	return dst.Width() >= w.cfg.Board.Width*cellW+2 &&
		dst.Height() >= w.cfg.Board.Height+2+hudHeight
}

func renderWorld(w *World, dst *core.Screen) {
	if !fits(w, dst) {
		dst.DrawOverlay("Window too small", "Please resize terminal")
		return
	}

	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %d", w.score, len(w.body), w.speed)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	boxW := w.cfg.Board.Width*cellW + 2
	ox := (dst.Width() - boxW) / 2
	dst.DrawBox(core.NewRect(ox, hudHeight, boxW, w.cfg.Board.Height+2))

	at := func(p core.Point) (int, int) {
		return ox + 1 + p.X*cellW, hudHeight + 1 + p.Y
	}

	if w.inBounds(w.food) {
		x, y := at(w.food)
		dst.SetColored(x, y, '●', core.ColorBrightRed)
	}

	for i := len(w.body) - 1; i >= 0; i-- {
		x, y := at(w.body[i])
		r, c := '▓', core.ColorGreen
		if i == 0 {
			r, c = '█', core.ColorBrightGreen
		}
		dst.SetColored(x, y, r, c)
		dst.SetColored(x+1, y, r, c)
	}
}
