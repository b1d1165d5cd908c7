package chomper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	hudHeight = 2
	cellW     = 2 // Terminal cells are about twice as tall as wide
)

// Render draws the maze, HUD and any overlay for the current state.
func (g *Game) Render(dst *core.Screen) {
	g.loop.Render(dst)
	if !fits(g.world, dst) {
		return
	}

	w := g.world
	switch {
	case w.over:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score %d  -  Enter to play again", w.score))
	case g.run.State() == core.RunNotStarted:
		dst.DrawOverlay("CHOMPER", "Enter to start  -  arrows to move")
	case g.run.State() == core.RunPaused:
		dst.DrawOverlay("PAUSED", "P to resume")
	case w.levelDone:
		dst.DrawOverlay(fmt.Sprintf("LEVEL %d CLEAR", w.level), "Enter for next level")
	}
}

func fits(w *World, dst *core.Screen) bool {
	return dst.Width() >= w.maze.Cols()*cellW && dst.Height() >= w.maze.Rows()+hudHeight
}

func renderWorld(w *World, dst *core.Screen) {
	mw, mh := w.maze.Cols()*cellW, w.maze.Rows()
	if !fits(w, dst) {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", mw, mh+hudHeight))
		return
	}
	ox := (dst.Width() - mw) / 2
	oy := hudHeight

	renderHUD(w, dst)

	for y := 0; y < w.maze.Rows(); y++ {
		for x := 0; x < w.maze.Cols(); x++ {
			sx, sy := ox+x*cellW, oy+y
			switch w.maze.At(x, y) {
			case CellWall:
				dst.SetColored(sx, sy, '█', core.ColorBlue)
				dst.SetColored(sx+1, sy, '█', core.ColorBlue)
			case CellDot:
				dst.SetColored(sx, sy, '·', core.ColorYellow)
			case CellPower:
				dst.SetColored(sx, sy, '●', core.ColorBrightYellow)
			}
		}
	}

	flashing := w.power && w.powerRemaining() < msDuration(w.cfg.Timing.FlashMs)
	for i := range w.ghosts {
		gh := &w.ghosts[i]
		sx, sy := ox+gh.Pos.X*cellW, oy+gh.Pos.Y
		switch {
		case gh.Mode == ModeEaten:
			dst.DrawTextColored(sx, sy, "oo", core.ColorGray)
		case gh.Scared(w.power):
			c := core.ColorBrightBlue
			if flashing && w.ticks%2 == 0 {
				c = core.ColorBrightWhite
			}
			dst.SetColored(sx, sy, 'ᗣ', c)
		default:
			dst.SetColored(sx, sy, 'ᗣ', gh.Color)
		}
	}

	p := w.player
	dst.SetColored(ox+p.Pos.X*cellW, oy+p.Pos.Y, playerGlyph(p), core.ColorBrightYellow)
}

func renderHUD(w *World, dst *core.Screen) {
	hud := fmt.Sprintf(" Chomper  Score: %d  Level: %d  Lives: %s",
		w.score, w.level, strings.Repeat("♥", max(w.lives, 0)))
	if w.power {
		hud += fmt.Sprintf("  POWER %.1fs", w.powerRemaining().Seconds())
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// playerGlyph picks a mouth shape facing the current heading.
func playerGlyph(p Player) rune {
	if p.Mouth == 0 || p.Dir.IsZero() {
		return '●'
	}
	switch p.Dir {
	case core.DirUp:
		return 'ᗢ'
	case core.DirDown:
		return 'ᗜ'
	case core.DirLeft:
		return 'ᗧ'
	default:
		return 'ᗤ'
	}
}
