package pong

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T, rc core.RuntimeConfig) (*Game, *audio.Recorder) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	rec := &audio.Recorder{}
	g := New(registry.Env{Sink: rec})
	g.Reset(rc)
	return g, rec
}

func startedGame(t *testing.T) (*Game, *audio.Recorder) {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = 7
	g, rec := newTestGame(t, rc)
	g.HandleInput(core.ActionConfirm)
	require.Equal(t, core.RunRunning, g.State().Run)
	return g, rec
}

// live skips the serve delay and parks both paddles away from the ball.
func live(c *Court, b Ball) {
	c.serving = 0
	c.ball = b
	c.paddles[SidePlayer] = 17
	c.paddles[SideCPU] = 17
}

func TestServeWaitsThenMoves(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court
	require.Equal(t, 60, c.serving)
	assert.Equal(t, 40.0, c.ball.X)
	// Normal preset starts the difficulty curve at 0.3.
	assert.InDelta(t, -0.575, c.ball.VX, 1e-9, "first serve goes to the player")

	for range 60 {
		assert.Equal(t, 1, g.Step(core.InputFrame{}, frame).Ticks)
	}
	assert.Equal(t, 40.0, c.ball.X)

	g.Step(core.InputFrame{}, frame)
	assert.InDelta(t, 39.425, c.ball.X, 1e-9)
}

func TestPlayerPaddleClamped(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court

	for range 30 {
		g.HandleInput(core.ActionUp)
	}
	assert.Equal(t, 1.0, c.paddles[SidePlayer])

	for range 30 {
		g.HandleInput(core.ActionDown)
	}
	assert.Equal(t, float64(c.h-c.paddleH-1), c.paddles[SidePlayer])
}

func TestBallBouncesOffPlayerPaddle(t *testing.T) {
	g, rec := startedGame(t)
	c := g.court
	live(c, Ball{X: 3.4, Y: 11, VX: -0.5})
	c.paddles[SidePlayer] = 9

	c.moveBall()

	assert.Equal(t, 3.0, c.ball.X)
	assert.InDelta(t, 0.51, c.ball.VX, 1e-9)
	assert.InDelta(t, 0, c.ball.VY, 1e-9, "centre hit adds no spin")
	assert.Equal(t, 1, rec.Count(audio.EventHit))
}

func TestEdgeHitAddsSpin(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court
	live(c, Ball{X: 3.4, Y: 13, VX: -0.5})
	c.paddles[SidePlayer] = 9

	c.moveBall()

	assert.Greater(t, c.ball.VY, 0.0, "lower half pushes the ball down")
}

func TestBallClipsPaddleTip(t *testing.T) {
	g, rec := startedGame(t)
	c := g.court
	live(c, Ball{X: 2.6, Y: 7.7, VX: -0.5})
	c.paddles[SidePlayer] = 9

	c.moveBall()

	assert.Greater(t, c.ball.VX, 0.0)
	assert.Less(t, c.ball.VY, 0.0, "top tip pushes the ball up")
	assert.Equal(t, 1, rec.Count(audio.EventHit))
}

func TestBallPassesClearOfPaddleTip(t *testing.T) {
	g, rec := startedGame(t)
	c := g.court
	live(c, Ball{X: 2.6, Y: 7.2, VX: -0.5})
	c.paddles[SidePlayer] = 9

	c.moveBall()

	assert.Less(t, c.ball.VX, 0.0)
	assert.Zero(t, rec.Count(audio.EventHit))
}

func TestFastBallDoesNotTunnel(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court
	live(c, Ball{X: 5, Y: 11, VX: -4})
	c.paddles[SidePlayer] = 9

	c.moveBall()

	assert.Greater(t, c.ball.VX, 0.0)
	assert.InDelta(t, 1.5, c.ball.VX, 1e-9, "capped at three times the base speed")
	assert.Equal(t, [2]int{}, c.scores)
}

func TestCPUPaddleReturnsBall(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court
	live(c, Ball{X: 76.6, Y: 11, VX: 0.5})
	c.paddles[SideCPU] = 9

	c.moveBall()

	assert.Equal(t, 76.0, c.ball.X)
	assert.Less(t, c.ball.VX, 0.0)
}

func TestWallBounce(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court
	live(c, Ball{X: 40, Y: 1.2, VX: 0.5, VY: -0.5})

	c.moveBall()
	assert.Equal(t, 1.0, c.ball.Y)
	assert.InDelta(t, 0.5, c.ball.VY, 1e-9)

	live(c, Ball{X: 40, Y: 21.8, VX: 0.5, VY: 0.5})
	c.moveBall()
	assert.Equal(t, 22.0, c.ball.Y)
	assert.InDelta(t, -0.5, c.ball.VY, 1e-9)
}

func TestGoals(t *testing.T) {
	t.Run("cpu scores", func(t *testing.T) {
		g, rec := startedGame(t)
		c := g.court
		live(c, Ball{X: 0.2, Y: 5, VX: -0.5})

		c.moveBall()

		assert.Equal(t, [2]int{0, 1}, c.scores)
		assert.Equal(t, 1, rec.Count(audio.EventScore))
		assert.Equal(t, 60, c.serving)
		assert.Equal(t, 40.0, c.ball.X)
		assert.Less(t, c.ball.VX, 0.0, "served at the side that conceded")
	})

	t.Run("player scores", func(t *testing.T) {
		g, _ := startedGame(t)
		c := g.court
		live(c, Ball{X: 79.8, Y: 5, VX: 0.5})

		c.moveBall()

		assert.Equal(t, [2]int{1, 0}, c.scores)
		assert.Equal(t, 1, g.State().Score)
		assert.Greater(t, c.ball.VX, 0.0)
	})
}

func TestMatchEnds(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		winner Side
		cue    audio.Event
	}{
		{"cpu wins", Ball{X: 0.2, Y: 5, VX: -0.5}, SideCPU, audio.EventGameOver},
		{"player wins", Ball{X: 79.8, Y: 5, VX: 0.5}, SidePlayer, audio.EventWin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := startedGame(t)
			c := g.court
			c.scores = [2]int{4, 4}
			live(c, tt.ball)

			g.Step(core.InputFrame{}, frame)

			assert.True(t, g.State().GameOver)
			assert.Equal(t, tt.winner, c.winner)
			assert.Equal(t, 1, rec.Count(tt.cue))
			assert.Zero(t, g.Step(core.InputFrame{}, frame).Ticks)

			g.HandleInput(core.ActionConfirm)
			assert.False(t, g.State().GameOver)
			assert.Equal(t, [2]int{}, c.scores)
		})
	}
}

func TestCPUTracksApproachingBallOnly(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court

	live(c, Ball{X: 40, Y: 20, VX: -0.5})
	c.paddles[SideCPU] = 5
	c.moveCPU()
	assert.Equal(t, 5.0, c.paddles[SideCPU])

	c.ball.VX = 0.5
	c.moveCPU()
	assert.InDelta(t, 5.6, c.paddles[SideCPU], 1e-9)
}

func TestSkillFollowsDifficulty(t *testing.T) {
	g, _ := startedGame(t)
	c := g.court
	c.serving = 100
	c.ticks = 35999

	stepCourt(c, core.InputFrame{})
	assert.InDelta(t, 0.85, c.skill, 1e-9)
}

func TestFixedPresetHoldsSkill(t *testing.T) {
	rc := core.DefaultConfig()
	rc.Preset = "fixed"
	g, _ := newTestGame(t, rc)
	g.HandleInput(core.ActionConfirm)
	c := g.court
	c.serving = 100
	c.ticks = 35999

	stepCourt(c, core.InputFrame{})
	assert.InDelta(t, 0.6, c.skill, 1e-9)
}

func TestPauseFreezesMatch(t *testing.T) {
	g, _ := startedGame(t)
	g.HandleInput(core.ActionPause)
	before := g.Snapshot()

	assert.Zero(t, g.Step(core.InputFrame{}, frame).Ticks)
	g.HandleInput(core.ActionUp)
	assert.Equal(t, before, g.Snapshot())
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		rc := core.DefaultConfig()
		rc.Seed = 99
		g, _ := newTestGame(t, rc)
		g.HandleInput(core.ActionConfirm)
		for i := 0; i < 1500; i++ {
			in := core.InputFrame{}
			if i%9 == 0 {
				in = core.NewInputFrame()
				if (i/9)%2 == 0 {
					in.Set(core.ActionUp)
				} else {
					in.Set(core.ActionDown)
				}
			}
			g.Step(in, frame)
		}
		return g.Snapshot()
	}
	assert.Equal(t, run(), run())
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, core.DefaultConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "PONG")

	g.HandleInput(core.ActionConfirm)
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "P1")
	assert.Contains(t, screen.Row(0), "CPU")
	assert.Equal(t, PaddleChar, screen.Get(2, 10))

	g.HandleInput(core.ActionPause)
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	small := core.NewScreen(20, 10)
	g.Render(small)
	assert.Contains(t, small.String(), "too small")
}

func TestRegistered(t *testing.T) {
	assert.True(t, registry.Exists("pong"))
	g, err := registry.Create("pong", registry.Env{})
	require.NoError(t, err)
	assert.Equal(t, "Pong", g.Title())
}
