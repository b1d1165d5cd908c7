// Package chomper implements the maze chase game: eat every dot while four
// ghosts hunt you, and turn the tables with power pellets.
package chomper

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/chomper/levels"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Game implements registry.Game for Chomper.
type Game struct {
	env    registry.Env
	base   config.ChomperConfig // As loaded, before the preset
	layout Layout

	runtime core.RuntimeConfig
	world   *World
	loop    *sim.Loop[*World]
	timers  *sim.Scheduler
	run     *sim.Run
}

func init() {
	registry.Register("chomper", func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Chomper game. Config and maze load errors are logged and
// the built-in defaults are used instead.
func New(env registry.Env) *Game {
	env = env.Normalize()

	cfg, err := config.LoadChomper(env.ConfigFile)
	if err != nil {
		env.Logger.Warn("chomper: using default config", "err", err)
		cfg = config.DefaultChomperConfig()
	}

	layout := ClassicLayout()
	if cfg.Gameplay.MazeFile != "" {
		if l, err := loadLayout(cfg.Gameplay.MazeFile); err != nil {
			env.Logger.Warn("chomper: using classic maze", "file", cfg.Gameplay.MazeFile, "err", err)
		} else {
			layout = l
		}
	}

	g := &Game{env: env, base: cfg, layout: layout}
	g.Reset(core.DefaultConfig())
	return g
}

func loadLayout(path string) (Layout, error) {
	lvl, err := levels.LoadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return LayoutFromLevel(lvl)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chomper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chomper"
}

// Reset discards any run and returns to the title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	cfg := g.base
	preset, ok := config.ParsePreset(rc.Preset)
	if !ok {
		g.env.Logger.Warn("chomper: unknown preset", "preset", rc.Preset)
	}
	config.ApplyChomperPreset(&cfg, preset)

	g.timers = sim.NewScheduler(g.env.Logger)
	g.world = newWorld(cfg, g.layout, rc.Seed, g.timers, g.env.Sink, g.env.Logger)
	clock := sim.NewFixedClock(g.world.tickInterval())
	g.loop = sim.NewLoop(g.world, clock, stepWorld, renderWorld)
	g.run = sim.NewRun(clock, g.timers)
	g.run.Stop()
}

// Start begins a new run from level 1.
func (g *Game) Start() {
	g.run.Start()
	g.world.begin()
	g.loop.Clock().SetInterval(g.world.tickInterval())
	g.loop.Flush()
	g.env.Sink.Notify(audio.EventStart)
	g.env.Logger.Debug("chomper start", "session", g.timers.Session())
}

// Pause suspends a running game.
func (g *Game) Pause() {
	g.run.Pause()
}

// Resume continues a paused game.
func (g *Game) Resume() {
	g.run.Resume()
}

// NextLevel moves on after a cleared maze. It does nothing otherwise.
func (g *Game) NextLevel() {
	if !g.world.levelDone || !g.run.Active() {
		return
	}
	g.world.nextLevel()
	g.loop.Clock().SetInterval(g.world.tickInterval())
	g.env.Sink.Notify(audio.EventStart)
}

// HandleInput applies one action immediately.
func (g *Game) HandleInput(a core.Action) {
	switch a {
	case core.ActionPause:
		g.run.TogglePause()
	case core.ActionConfirm, core.ActionDrop:
		switch {
		case g.run.State() == core.RunNotStarted || g.run.Over():
			g.Start()
		case g.world.levelDone:
			g.NextLevel()
		}
	case core.ActionRestart:
		if g.run.Over() {
			g.Start()
		}
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if g.run.Active() && !g.world.frozen {
			g.world.player.Next = a.Direction()
		}
	}
}

// Step applies the frame's input, fires due timers and runs every tick
// that fits into dt.
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
		Lives:    g.world.lives,
		Level:    g.world.level,
		Run:      g.run.State(),
		GameOver: g.world.over,
		Paused:   g.run.State() == core.RunPaused,
	}
}
