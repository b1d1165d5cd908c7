package pong

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Side identifies a paddle.
type Side int

const (
	SidePlayer Side = iota // Left
	SideCPU                // Right
)

// Ball is the ball's position and velocity in cells and cells per frame.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Court is the simulation state of one match.
type Court struct {
	cfg  config.PongConfig
	diff *config.DifficultyManager

	w, h    int
	paddleH int
	paddles [2]float64 // Top edge Y, indexed by Side
	ball    Ball

	scores  [2]int
	serving int // Frames until the ball moves
	skill   float64
	ticks   int
	over    bool
	winner  Side

	rng    *rand.Rand
	sink   audio.Sink
	logger *log.Logger
}

func newCourt(cfg config.PongConfig, diff *config.DifficultyManager, w, h int, seed int64, sink audio.Sink, logger *log.Logger) *Court {
	c := &Court{
		cfg:    cfg,
		diff:   diff,
		w:      w,
		h:      h,
		rng:    rand.New(rand.NewSource(seed)),
		sink:   sink,
		logger: logger,
	}
	c.paddleH = core.Clamp(cfg.Paddles.Height, 2, max(2, (h-2)/3))
	c.begin()
	return c
}

// begin resets scores and paddles and serves towards the player.
func (c *Court) begin() {
	c.scores = [2]int{}
	c.ticks = 0
	c.over = false
	c.skill = c.cfg.CPU.MinSkill
	mid := float64(c.h)/2 - float64(c.paddleH)/2
	c.paddles = [2]float64{mid, mid}
	c.serve(SidePlayer)
}

// serve centres the ball and aims it at side after the serve delay.
func (c *Court) serve(toward Side) {
	c.serving = max(0, c.cfg.Gameplay.ServeDelay)

	speed := c.diff.Speed(c.cfg.Physics.BallSpeed, c.scores[SidePlayer], c.ticks)
	vx := speed
	if toward == SidePlayer {
		vx = -speed
	}
	angle := (c.rng.Float64() - 0.5) * 0.6
	c.ball = Ball{
		X:  float64(c.w) / 2,
		Y:  float64(c.h) / 2,
		VX: vx,
		VY: speed * angle,
	}
}

// paddleX returns the left edge column of a paddle.
func (c *Court) paddleX(s Side) float64 {
	if s == SidePlayer {
		return float64(c.cfg.Paddles.Offset)
	}
	return float64(c.w - c.cfg.Paddles.Offset - c.cfg.Paddles.Width)
}

func (c *Court) paddleRect(s Side) core.RectF {
	return core.RectF{
		X: c.paddleX(s),
		Y: c.paddles[s],
		W: float64(c.cfg.Paddles.Width),
		H: float64(c.paddleH),
	}
}

func (c *Court) clampPaddle(s Side) {
	c.paddles[s] = core.ClampF(c.paddles[s], 1, float64(c.h-c.paddleH-1))
}

// movePlayer shifts the player's paddle by dir paddle steps.
func (c *Court) movePlayer(dir int) {
	if c.over {
		return
	}
	c.paddles[SidePlayer] += float64(dir) * c.cfg.Physics.PaddleSpeed
	c.clampPaddle(SidePlayer)
}

// moveCPU tracks the ball while it approaches, at a skill-scaled speed.
func (c *Court) moveCPU() {
	if c.ball.VX > 0 {
		target := c.ball.Y - float64(c.paddleH)/2
		diff := target - c.paddles[SideCPU]
		step := c.cfg.Physics.PaddleSpeed * c.skill
		if math.Abs(diff) > step {
			c.paddles[SideCPU] += math.Copysign(step, diff)
		}
	}
	c.clampPaddle(SideCPU)
}

// moveBall integrates one frame: walls, paddles, speed cap, then goals.
func (c *Court) moveBall() {
	b := &c.ball
	prevX := b.X
	b.X += b.VX
	b.Y += b.VY

	top, bottom := 1.0, float64(c.h-2)
	switch {
	case b.Y <= top:
		b.Y = top
		b.VY = -b.VY
	case b.Y >= bottom:
		b.Y = bottom
		b.VY = -b.VY
	}

	// The ball's box is swept over the frame so a fast ball cannot pass
	// through a thin paddle.
	swept := core.RectF{X: math.Min(prevX, b.X), Y: b.Y, W: math.Abs(b.X-prevX) + 1, H: 1}
	switch {
	case b.VX < 0 && (swept.Intersects(c.paddleRect(SidePlayer)) || c.tipHit(SidePlayer)):
		c.bounce(SidePlayer)
	case b.VX > 0 && (swept.Intersects(c.paddleRect(SideCPU)) || c.tipHit(SideCPU)):
		c.bounce(SideCPU)
	}

	limit := c.cfg.Physics.BallSpeed * c.cfg.Physics.MaxBallSpeed
	if limit > 0 {
		b.VX = core.ClampF(b.VX, -limit, limit)
		b.VY = core.ClampF(b.VY, -limit/2, limit/2)
	}

	switch {
	case b.X < 0:
		c.point(SideCPU)
	case b.X > float64(c.w):
		c.point(SidePlayer)
	}
}

// tipHit reports whether the round ball clips one of the rounded ends of
// paddle s, which the paddle's box alone would miss.
func (c *Court) tipHit(s Side) bool {
	p := c.paddleRect(s)
	ball := core.Circle{X: c.ball.X + 0.5, Y: c.ball.Y + 0.5, Radius: 0.5}
	r := p.W / 2
	return ball.Overlaps(core.Circle{X: p.X + r, Y: p.Y, Radius: r}) ||
		ball.Overlaps(core.Circle{X: p.X + r, Y: p.Y + p.H, Radius: r})
}

// bounce reflects the ball off a paddle, adding spin by where it hit.
func (c *Court) bounce(s Side) {
	b := &c.ball
	p := c.paddleRect(s)

	hit := core.ClampF((b.Y+0.5-p.Y)/p.H, 0, 1)
	b.VY += (hit - 0.5) * c.cfg.Physics.SpinFactor

	if s == SidePlayer {
		b.X = p.X + p.W
		b.VX = math.Abs(b.VX) * 1.02
	} else {
		b.X = p.X - 1
		b.VX = -math.Abs(b.VX) * 1.02
	}
	c.sink.Notify(audio.EventHit)
}

// point awards a goal to s and either ends the match or serves at the
// side that conceded.
func (c *Court) point(s Side) {
	c.scores[s]++
	c.sink.Notify(audio.EventScore)

	if c.scores[s] >= c.cfg.Gameplay.WinScore {
		c.over = true
		c.winner = s
		if s == SidePlayer {
			c.sink.Notify(audio.EventWin)
		} else {
			c.sink.Notify(audio.EventGameOver)
		}
		c.logger.Debug("pong match over", "player", c.scores[SidePlayer], "cpu", c.scores[SideCPU])
		return
	}
	if s == SidePlayer {
		c.serve(SideCPU)
	} else {
		c.serve(SidePlayer)
	}
}

// stepCourt is one frame.
func stepCourt(c *Court, _ core.InputFrame) *Court {
	if c.over {
		return c
	}
	c.ticks++

	lvl := c.diff.Level(c.scores[SidePlayer], c.ticks)
	c.skill = c.cfg.CPU.MinSkill + lvl*(c.cfg.CPU.MaxSkill-c.cfg.CPU.MinSkill)

	c.moveCPU()
	if c.serving > 0 {
		c.serving--
		return c
	}
	c.moveBall()
	return c
}
