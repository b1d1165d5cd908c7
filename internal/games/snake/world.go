package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// minSide keeps the board large enough for the starting body.
const minSide = 8

// World is the simulation state of one run.
type World struct {
	cfg config.SnakeConfig

	body []core.Point // Head at index 0
	dir  core.Dir
	next core.Dir // Applied at the start of the next move
	food core.Point

	score int
	speed int
	ticks uint64
	over  bool
	won   bool

	rng    *rand.Rand
	sink   audio.Sink
	logger *log.Logger

	// onSpeed is called when the speed level rises so the move interval can
	// change before the next tick.
	onSpeed func(speed int)
}

func newWorld(cfg config.SnakeConfig, seed int64, sink audio.Sink, logger *log.Logger) *World {
	cfg.Board.Width = max(cfg.Board.Width, minSide)
	cfg.Board.Height = max(cfg.Board.Height, minSide)
	return &World{
		cfg:    cfg,
		speed:  1,
		dir:    core.DirRight,
		next:   core.DirRight,
		rng:    rand.New(rand.NewSource(seed)),
		sink:   sink,
		logger: logger,
	}
}

// begin lays out a three-segment snake heading right and places food.
func (w *World) begin() {
	y := w.cfg.Board.Height / 2
	w.body = []core.Point{{X: 5, Y: y}, {X: 4, Y: y}, {X: 3, Y: y}}
	w.dir = core.DirRight
	w.next = core.DirRight
	w.score = 0
	w.speed = 1
	w.ticks = 0
	w.over = false
	w.won = false
	w.spawnFood()
}

// interval is the move interval for the current speed level.
func (w *World) interval() time.Duration {
	t := w.cfg.Timing
	ms := max(t.MinMs, t.BaseMs-(w.speed-1)*t.StepMs)
	return time.Duration(ms) * time.Millisecond
}

// turn queues a heading change. Reversing onto the neck is ignored.
func (w *World) turn(d core.Dir) {
	if w.over || d.IsZero() || d == w.dir.Reverse() {
		return
	}
	w.next = d
}

func (w *World) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < w.cfg.Board.Width && p.Y >= 0 && p.Y < w.cfg.Board.Height
}

func (w *World) occupied(p core.Point) bool {
	return slices.Contains(w.body, p)
}

// spawnFood places food on a random free cell. It reports false when the
// body fills the board.
func (w *World) spawnFood() bool {
	var free []core.Point
	for y := range w.cfg.Board.Height {
		for x := range w.cfg.Board.Width {
			p := core.Point{X: x, Y: y}
			if !w.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		w.food = core.Point{X: -1, Y: -1}
		return false
	}
	w.food = free[w.rng.Intn(len(free))]
	return true
}

// move advances the snake one cell. The whole body, tail included, counts
// for self collision.
func (w *World) move() {
	w.dir = w.next
	head := w.body[0].Add(w.dir)

	if !w.inBounds(head) || w.occupied(head) {
		w.over = true
		w.sink.Notify(audio.EventGameOver)
		w.logger.Debug("snake game over", "score", w.score, "length", len(w.body))
		return
	}

	w.body = slices.Insert(w.body, 0, head)
	if head != w.food {
		w.body = w.body[:len(w.body)-1]
		return
	}
	w.eat()
}

func (w *World) eat() {
	w.score += w.cfg.Food.Points
	w.sink.Notify(audio.EventEat)

	if lvl := w.score/max(1, w.cfg.Timing.SpeedEvery) + 1; lvl > w.speed {
		w.speed = lvl
		w.sink.Notify(audio.EventLevelUp)
		if w.onSpeed != nil {
			w.onSpeed(lvl)
		}
	}

	if !w.spawnFood() {
		w.won = true
		w.over = true
		w.sink.Notify(audio.EventWin)
	}
}

// stepWorld is one move tick.
func stepWorld(w *World, _ core.InputFrame) *World {
	if w.over {
		return w
	}
	w.ticks++
	w.move()
	return w
}
