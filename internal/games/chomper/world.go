package chomper

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

const (
	powerTimer = "power"
	deathTimer = "death"
)

var (
	ghostNames  = [4]string{"Blinky", "Pinky", "Inky", "Clyde"}
	ghostColors = [4]core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange}
)

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Player is the chomper itself.
type Player struct {
	Pos   core.Point
	Dir   core.Dir
	Next  core.Dir // Queued turn, taken as soon as the cell is open
	Mouth int      // Animation phase 0..2
}

// World is the complete simulation state of one run. It is advanced one
// tick at a time by step; timers it schedules run on the shared scheduler.
type World struct {
	cfg    config.ChomperConfig
	layout Layout
	maze   *Maze
	player Player
	ghosts [4]Ghost

	score int
	lives int
	level int
	ticks uint64

	power     bool
	frozen    bool // Death pause; no ticks or input apply
	levelDone bool
	over      bool

	rng    *rand.Rand
	timers *sim.Scheduler
	sink   audio.Sink
	logger *log.Logger
}

func newWorld(cfg config.ChomperConfig, layout Layout, seed int64, timers *sim.Scheduler, sink audio.Sink, logger *log.Logger) *World {
	w := &World{
		cfg:    cfg,
		layout: layout,
		level:  1,
		lives:  cfg.Gameplay.Lives,
		rng:    rand.New(rand.NewSource(seed)),
		timers: timers,
		sink:   sink,
		logger: logger,
	}
	w.resetMaze()
	w.resetPositions()
	return w
}

// begin puts the world at the start of a fresh run.
func (w *World) begin() {
	w.score = 0
	w.lives = w.cfg.Gameplay.Lives
	w.level = 1
	w.ticks = 0
	w.power = false
	w.frozen = false
	w.levelDone = false
	w.over = false
	w.resetMaze()
	w.resetPositions()
}

// nextLevel regenerates the maze for the following level.
func (w *World) nextLevel() {
	w.level++
	w.power = false
	w.frozen = false
	w.levelDone = false
	w.resetMaze()
	w.resetPositions()
	w.logger.Debug("chomper level start", "level", w.level, "tick", w.tickInterval(), "digest", w.snapshot().Digest())
}

func (w *World) resetMaze() {
	w.maze = NewMaze(w.layout.Cells)
}

func (w *World) resetPositions() {
	w.player = Player{Pos: w.layout.Player}
	policies := w.policies()
	for i := range w.ghosts {
		w.ghosts[i] = Ghost{
			Name:    ghostNames[i],
			Color:   ghostColors[i],
			Pos:     w.layout.GhostStarts[i],
			Dir:     core.DirUp,
			Mode:    ModeInHouse,
			Release: i * w.cfg.Ghosts.ReleaseStagger,
			Policy:  policies[i],
		}
	}
}

func (w *World) policies() [4]TargetingPolicy {
	g := w.cfg.Ghosts
	return [4]TargetingPolicy{
		Direct{},
		LeadBy{N: g.LeadFar},
		LeadBy{N: g.LeadNear},
		Shy{Radius: g.ShyRadius, Corner: core.Point{X: 0, Y: w.maze.Rows()}},
	}
}

// tickInterval is the step interval for the current level.
func (w *World) tickInterval() time.Duration {
	t := w.cfg.Timing
	ms := t.TickMs
	if w.level > 1 {
		ms = max(t.MinTickMs, t.TickMs-w.level*t.TickStepMs)
	}
	return msDuration(ms)
}

// powerDuration is how long power mode lasts on the current level.
func (w *World) powerDuration() time.Duration {
	t := w.cfg.Timing
	return msDuration(max(t.PowerMinMs, t.PowerMs-w.level*t.PowerStepMs))
}

// powerRemaining returns the time left in power mode, zero when inactive.
func (w *World) powerRemaining() time.Duration {
	if !w.power {
		return 0
	}
	d, _ := w.timers.Remaining(powerTimer)
	return d
}

// stepWorld runs one tick: player move, eat, ghosts, collisions, win check.
func stepWorld(w *World, _ core.InputFrame) *World {
	if w.over || w.frozen || w.levelDone {
		return w
	}
	w.ticks++
	w.player.Mouth = (w.player.Mouth + 1) % 3

	w.movePlayer()
	w.moveGhosts()
	w.collide()

	if !w.over && w.maze.DotsRemaining() == 0 {
		w.completeLevel()
	}
	return w
}

func (w *World) movePlayer() {
	p := &w.player
	if !p.Next.IsZero() && w.maze.CanEnter(p.Pos.Add(p.Next)) {
		p.Dir = p.Next
	}
	if p.Dir.IsZero() {
		return
	}
	dst := p.Pos.Add(p.Dir)
	if !w.maze.CanEnter(dst) {
		return
	}
	dst.X = core.WrapX(dst.X, w.maze.Cols())
	p.Pos = dst
	w.eat()
}

func (w *World) eat() {
	switch w.maze.Consume(w.player.Pos) {
	case CellDot:
		w.score += w.cfg.Scoring.Dot
		w.sink.Notify(audio.EventEat)
	case CellPower:
		w.score += w.cfg.Scoring.Power
		w.activatePower()
	}
}

// activatePower starts power mode or restarts its timer. Only chasing
// ghosts turn scared; eaten and housed ones are left alone.
func (w *World) activatePower() {
	w.power = true
	for i := range w.ghosts {
		if w.ghosts[i].Mode == ModeNormal {
			w.ghosts[i].Mode = ModeScared
		}
	}
	w.timers.After(w.powerDuration(), powerTimer, w.endPower)
	w.sink.Notify(audio.EventPower)
}

func (w *World) endPower() {
	w.power = false
	for i := range w.ghosts {
		if w.ghosts[i].Mode == ModeScared {
			w.ghosts[i].Mode = ModeNormal
		}
	}
}

func (w *World) cancelPower() {
	w.timers.Cancel(powerTimer)
	w.endPower()
}

func (w *World) moveGhosts() {
	chase := Chase{
		Player:  w.player.Pos,
		Heading: w.player.Dir,
		Cols:    w.maze.Cols(),
		Rows:    w.maze.Rows(),
	}
	for i := range w.ghosts {
		w.moveGhost(&w.ghosts[i], chase)
	}
}

func (w *World) moveGhost(g *Ghost, chase Chase) {
	switch g.Mode {
	case ModeInHouse:
		g.Release--
		if g.Release <= 0 {
			g.Pos = w.layout.GhostSpawn
			g.Mode = ModeNormal
			if w.power {
				g.Mode = ModeScared
			}
		}
		return
	case ModeEaten:
		if g.Pos == w.layout.Home {
			g.Mode = ModeInHouse
			g.Release = w.cfg.Ghosts.ReturnRelease
			return
		}
		g.Pos = stepToward(g.Pos, w.layout.Home)
		return
	}

	var (
		target core.Point
		jitter func() float64
	)
	if g.Mode == ModeScared {
		target = fleeTarget(g.Pos, chase.Player)
		jitter = func() float64 {
			return w.rng.Float64() * float64(w.cfg.Ghosts.ScaredJitter)
		}
	} else {
		target = g.Policy.Target(g.Pos, chase)
	}
	g.Dir = chooseDir(g, w.maze, target, jitter)

	dst := g.Pos.Add(g.Dir)
	if w.maze.CanEnter(dst) {
		dst.X = core.WrapX(dst.X, w.maze.Cols())
		g.Pos = dst
	}
}

// collide resolves same-cell contacts. At most one life is lost per tick.
func (w *World) collide() {
	for i := range w.ghosts {
		g := &w.ghosts[i]
		if !g.Active() || g.Pos != w.player.Pos {
			continue
		}
		if g.Mode == ModeScared {
			g.Mode = ModeEaten
			w.score += w.cfg.Scoring.Ghost
			w.sink.Notify(audio.EventEatGhost)
			continue
		}
		w.die()
		return
	}
}

func (w *World) die() {
	w.lives--
	w.cancelPower()
	if w.lives <= 0 {
		w.over = true
		w.sink.Notify(audio.EventGameOver)
		w.logger.Debug("chomper game over", "score", w.score, "level", w.level, "digest", w.snapshot().Digest())
		return
	}
	w.sink.Notify(audio.EventDeath)
	w.frozen = true
	w.timers.After(msDuration(w.cfg.Timing.DeathMs), deathTimer, func() {
		w.resetPositions()
		w.frozen = false
	})
}

// completeLevel fires once when the last dot goes.
func (w *World) completeLevel() {
	w.levelDone = true
	w.cancelPower()
	w.score += w.cfg.Scoring.LevelBonus * w.level
	w.sink.Notify(audio.EventWin)
}
