// Package pong implements a classic Pong game with CPU opponent.
// The player controls the left paddle, the CPU controls the right paddle.
package pong

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Minimum court size in cells.
const (
	minW = 30
	minH = 12
)

// Game implements registry.Game for Pong.
type Game struct {
	env  registry.Env
	base config.PongConfig

	court *Court
	loop  *sim.Loop[*Court]
	run   *sim.Run
}

func init() {
	registry.Register("pong", func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Pong game.
func New(env registry.Env) *Game {
	env = env.Normalize()

	cfg, err := config.LoadPong(env.ConfigFile)
	if err != nil {
		env.Logger.Warn("pong: using default config", "err", err)
		cfg = config.DefaultPongConfig()
	}

	g := &Game{env: env, base: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset sizes the court to the screen and returns to the title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := g.base
	preset, ok := config.ParsePreset(rc.Preset)
	if !ok {
		g.env.Logger.Warn("pong: unknown preset", "preset", rc.Preset)
	}
	config.ApplyPongPreset(&cfg, preset)

	diff := config.NewDifficultyManager(cfg.Difficulty)
	w, h := max(rc.ScreenW, minW), max(rc.ScreenH, minH)
	g.court = newCourt(cfg, diff, w, h, rc.Seed, g.env.Sink, g.env.Logger)
	clock := sim.NewFrameClock()
	g.loop = sim.NewLoop(g.court, clock, stepCourt, renderCourt)
	g.run = sim.NewRun(clock, sim.NewScheduler(g.env.Logger))
	g.run.Stop()
}

// Start begins a new match.
func (g *Game) Start() {
	g.run.Start()
	g.court.begin()
	g.loop.Flush()
	g.env.Sink.Notify(audio.EventStart)
}

// Pause suspends a running match.
func (g *Game) Pause() {
	g.run.Pause()
}

// Resume continues a paused match.
func (g *Game) Resume() {
	g.run.Resume()
}

// HandleInput applies one action immediately.
func (g *Game) HandleInput(a core.Action) {
	switch a {
	case core.ActionPause:
		g.run.TogglePause()
	case core.ActionConfirm, core.ActionDrop:
		if g.run.State() == core.RunNotStarted || g.run.Over() {
			g.Start()
		}
	case core.ActionRestart:
		if g.run.Over() {
			g.Start()
		}
	case core.ActionUp:
		if g.run.Active() {
			g.court.movePlayer(-1)
		}
	case core.ActionDown:
		if g.run.Active() {
			g.court.movePlayer(1)
		}
	}
}

// Step applies the frame's input, then advances the court one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	for _, a := range in.Order {
		g.HandleInput(a)
	}

	ticks := 0
	if dt = g.run.Advance(dt); dt > 0 {
		ticks = g.loop.Frame(core.InputFrame{}, dt)
		if g.court.over {
			g.run.End()
		}
	}
	return core.StepResult{State: g.State(), Ticks: ticks}
}

// State reports the player's goals as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.court.scores[SidePlayer],
		Run:      g.run.State(),
		GameOver: g.court.over,
		Paused:   g.run.State() == core.RunPaused,
	}
}
