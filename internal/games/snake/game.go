// Package snake implements the classic grow-by-eating game on a fixed tick.
package snake

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game implements registry.Game for Snake.
type Game struct {
	env  registry.Env
	base config.SnakeConfig

	world *World
	loop  *sim.Loop[*World]
	run   *sim.Run
}

func init() {
	registry.Register("snake", func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Snake game.
func New(env registry.Env) *Game {
	env = env.Normalize()

	cfg, err := config.LoadSnake(env.ConfigFile)
	if err != nil {
		env.Logger.Warn("snake: using default config", "err", err)
		cfg = config.DefaultSnakeConfig()
	}

	g := &Game{env: env, base: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset discards any run and returns to the title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := g.base
	preset, ok := config.ParsePreset(rc.Preset)
	if !ok {
		g.env.Logger.Warn("snake: unknown preset", "preset", rc.Preset)
	}
	config.ApplySnakePreset(&cfg, preset)

	g.world = newWorld(cfg, rc.Seed, g.env.Sink, g.env.Logger)
	clock := sim.NewFixedClock(g.world.interval())
	g.world.onSpeed = func(int) {
		clock.SetInterval(g.world.interval())
	}
	g.loop = sim.NewLoop(g.world, clock, stepWorld, renderWorld)
	g.run = sim.NewRun(clock, sim.NewScheduler(g.env.Logger))
	g.run.Stop()
}

// Start begins a new run.
func (g *Game) Start() {
	g.run.Start()
	g.world.begin()
	g.loop.Clock().SetInterval(g.world.interval())
	g.loop.Flush()
	g.env.Sink.Notify(audio.EventStart)
}

// Pause suspends a running game.
func (g *Game) Pause() {
	g.run.Pause()
}

// Resume continues a paused game.
func (g *Game) Resume() {
	g.run.Resume()
}

// HandleInput applies one action immediately. Turns take effect on the
// next move.
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
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if g.run.Active() {
			g.world.turn(a.Direction())
		}
	}
}

// Step applies the frame's input, then runs every move tick that fits into
// dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	for _, a := range in.Order {
		g.HandleInput(a)
	}

	ticks := 0
	if dt = g.run.Advance(dt); dt > 0 {
		ticks = g.loop.Frame(core.InputFrame{}, dt)
		if g.world.over {
			g.run.End()
		}
	}
	return core.StepResult{State: g.State(), Ticks: ticks}
}

// State returns the session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.score,
		Level:    g.world.speed,
		Run:      g.run.State(),
		GameOver: g.world.over,
		Paused:   g.run.State() == core.RunPaused,
	}
}
