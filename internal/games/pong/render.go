package pong

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the court and any overlay.
func (g *Game) Render(dst *core.Screen) {
	g.loop.Render(dst)
	c := g.court
	if !fits(c, dst) {
		return
	}

	switch {
	case c.over && c.winner == SidePlayer:
		dst.DrawOverlay("YOU WIN!", fmt.Sprintf("%d - %d  |  Enter to restart", c.scores[SidePlayer], c.scores[SideCPU]))
	case c.over:
		dst.DrawOverlay("CPU WINS!", fmt.Sprintf("%d - %d  |  Enter to restart", c.scores[SidePlayer], c.scores[SideCPU]))
	case g.run.State() == core.RunNotStarted:
		dst.DrawOverlay("PONG", fmt.Sprintf("First to %d  -  Enter to start", c.cfg.Gameplay.WinScore))
	case g.run.State() == core.RunPaused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

func fits(c *Court, dst *core.Screen) bool {
	return dst.Width() >= c.w && dst.Height() >= c.h
}

func renderCourt(c *Court, dst *core.Screen) {
	if !fits(c, dst) {
		dst.DrawOverlay("Window too small", "Please resize terminal")
		return
	}

	centerX := c.w / 2
	for y := 1; y < c.h-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	for s, color := range [2]core.Color{core.ColorBrightCyan, core.ColorBrightRed} {
		p := c.paddleRect(Side(s))
		for dy := range c.paddleH {
			for dx := range int(p.W) {
				dst.SetColored(int(p.X)+dx, int(p.Y)+dy, PaddleChar, color)
			}
		}
	}

	// Blink while waiting to serve.
	if c.serving == 0 || (c.serving/10)%2 == 0 {
		dst.SetColored(int(c.ball.X), int(c.ball.Y), BallChar, core.ColorBrightWhite)
	}

	dst.DrawText(1, 0, "P1")
	dst.DrawText(c.w-4, 0, "CPU")
	dst.DrawText(centerX-5, 0, fmt.Sprintf("%d", c.scores[SidePlayer]))
	dst.DrawText(centerX+4, 0, fmt.Sprintf("%d", c.scores[SideCPU]))
}
