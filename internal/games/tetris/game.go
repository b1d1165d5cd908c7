// Package tetris implements the falling-block game.
package tetris

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game implements registry.Game for Tetris.
type Game struct {
	env  registry.Env
	base config.TetrisConfig

	field *Field
	loop  *sim.Loop[*Field]
	run   *sim.Run
}

func init() {
	registry.Register("tetris", func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Tetris game.
func New(env registry.Env) *Game {
	env = env.Normalize()

	cfg, err := config.LoadTetris(env.ConfigFile)
	if err != nil {
		env.Logger.Warn("tetris: using default config", "err", err)
		cfg = config.DefaultTetrisConfig()
	}

	g := &Game{env: env, base: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset discards any run and returns to the title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := g.base
	preset, ok := config.ParsePreset(rc.Preset)
	if !ok {
		g.env.Logger.Warn("tetris: unknown preset", "preset", rc.Preset)
	}
	config.ApplyTetrisPreset(&cfg, preset)

	g.field = newField(cfg, rc.Seed, g.env.Sink, g.env.Logger)
	clock := sim.NewFixedClock(g.field.fallInterval())
	g.field.onLevel = func(int) {
		clock.SetInterval(g.field.fallInterval())
	}
	g.loop = sim.NewLoop(g.field, clock, stepField, renderField)
	g.run = sim.NewRun(clock, sim.NewScheduler(g.env.Logger))
	g.run.Stop()
}

// Start begins a new run on an empty board.
func (g *Game) Start() {
	g.run.Start()
	g.field.begin()
	g.loop.Clock().SetInterval(g.field.fallInterval())
	g.loop.Flush()
	g.env.Sink.Notify(audio.EventStart)
	g.endIfOver()
}

// Pause suspends a running game.
func (g *Game) Pause() {
	g.run.Pause()
}

// Resume continues a paused game.
func (g *Game) Resume() {
	g.run.Resume()
}

// HandleInput applies one action immediately. Moves that do not fit are
// ignored.
func (g *Game) HandleInput(a core.Action) {
	switch a {
	case core.ActionPause:
		g.run.TogglePause()
		return
	case core.ActionConfirm:
		if g.run.State() == core.RunNotStarted || g.run.Over() {
			g.Start()
		}
		return
	case core.ActionRestart:
		if g.run.Over() {
			g.Start()
		}
		return
	}

	if !g.run.Active() {
		if a == core.ActionDrop && (g.run.State() == core.RunNotStarted || g.run.Over()) {
			g.Start()
		}
		return
	}

	f := g.field
	switch a {
	case core.ActionLeft:
		f.shift(-1, 0)
	case core.ActionRight:
		f.shift(1, 0)
	case core.ActionDown:
		f.softDrop()
	case core.ActionUp, core.ActionRotate:
		f.rotate()
	case core.ActionDrop:
		f.hardDrop()
	}
	g.endIfOver()
}

// Step applies the frame's input, then runs every gravity tick that fits
// into dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	for _, a := range in.Order {
		g.HandleInput(a)
	}

	ticks := 0
	if dt = g.run.Advance(dt); dt > 0 {
		ticks = g.loop.Frame(core.InputFrame{}, dt)
		g.endIfOver()
	}
	return core.StepResult{State: g.State(), Ticks: ticks}
}

func (g *Game) endIfOver() {
	if g.field.over && !g.run.Over() {
		g.run.End()
	}
}

// State returns the session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.field.score,
		Level:    g.field.level,
		Run:      g.run.State(),
		GameOver: g.field.over,
		Paused:   g.run.State() == core.RunPaused,
	}
}

// Lines returns the number of rows cleared this run.
func (g *Game) Lines() int {
	return g.field.lines
}
