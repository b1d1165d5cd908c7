package tetris

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Field is the simulation state of one run: the board, the falling piece
// and the session counters.
type Field struct {
	cfg   config.TetrisConfig
	board *Board
	piece Piece

	score int
	lines int
	level int
	ticks uint64
	over  bool

	rng    *rand.Rand
	sink   audio.Sink
	logger *log.Logger

	// onLevel is called as soon as the level changes so the fall interval
	// can be updated before the next tick.
	onLevel func(level int)
}

func newField(cfg config.TetrisConfig, seed int64, sink audio.Sink, logger *log.Logger) *Field {
	f := &Field{
		cfg:    cfg,
		level:  1,
		rng:    rand.New(rand.NewSource(seed)),
		sink:   sink,
		logger: logger,
	}
	f.board = NewBoard(cfg.Board.Width, cfg.Board.Height)
	return f
}

// begin clears the board and spawns the first piece.
func (f *Field) begin() {
	f.board = NewBoard(f.cfg.Board.Width, f.cfg.Board.Height)
	f.piece = Piece{}
	f.score = 0
	f.lines = 0
	f.level = 1
	f.ticks = 0
	f.over = false
	f.spawn()
}

// fallInterval is the gravity interval for the current level.
func (f *Field) fallInterval() time.Duration {
	t := f.cfg.Timing
	ms := max(t.MinMs, t.BaseMs-(f.level-1)*t.StepMs)
	return time.Duration(ms) * time.Millisecond
}

// spawn places a random piece at the top centre.
func (f *Field) spawn() {
	f.spawnKind(Kinds[f.rng.Intn(len(Kinds))])
}

// spawnKind places a piece of kind k at the top centre. If it overlaps the
// stack the run is over.
func (f *Field) spawnKind(k Kind) {
	s := SpawnShape(k)
	f.piece = Piece{Kind: k, Shape: s, X: (f.board.Cols() - s.Width()) / 2}
	if f.board.Collides(s, f.piece.X, f.piece.Y) {
		f.over = true
		f.sink.Notify(audio.EventGameOver)
		f.logger.Debug("tetris game over", "score", f.score, "lines", f.lines, "level", f.level, "digest", f.snapshot().Digest())
	}
}

// shift moves the piece by (dx, dy) if the target is free.
func (f *Field) shift(dx, dy int) bool {
	if f.over || f.board.Collides(f.piece.Shape, f.piece.X+dx, f.piece.Y+dy) {
		return false
	}
	f.piece.X += dx
	f.piece.Y += dy
	return true
}

// rotate turns the piece clockwise in place, or leaves it untouched if the
// turned shape does not fit.
func (f *Field) rotate() bool {
	if f.over {
		return false
	}
	r := f.piece.Shape.Rotate()
	if f.board.Collides(r, f.piece.X, f.piece.Y) {
		return false
	}
	f.piece.Shape = r
	f.sink.Notify(audio.EventRotate)
	return true
}

// fall moves the piece down one row, locking it when it cannot move.
func (f *Field) fall() {
	if f.over {
		return
	}
	if !f.shift(0, 1) {
		f.lock()
	}
}

// softDrop is a player-requested fall worth points per row moved.
func (f *Field) softDrop() {
	if f.over {
		return
	}
	if f.shift(0, 1) {
		f.score += f.cfg.Scoring.SoftDrop
		return
	}
	f.lock()
}

// hardDrop drops the piece as far as it goes and locks it.
func (f *Field) hardDrop() int {
	if f.over {
		return 0
	}
	rows := f.dropDistance()
	f.piece.Y += rows
	f.score += rows * f.cfg.Scoring.HardDrop
	f.sink.Notify(audio.EventDrop)
	f.lock()
	return rows
}

// dropDistance is how many rows the piece can fall from where it is.
func (f *Field) dropDistance() int {
	n := 0
	for !f.board.Collides(f.piece.Shape, f.piece.X, f.piece.Y+n+1) {
		n++
	}
	return n
}

// lock commits the piece, clears full rows, scores them and spawns the
// next piece.
func (f *Field) lock() {
	f.board.Lock(f.piece)
	f.sink.Notify(audio.EventLock)

	if n := f.board.ClearLines(); n > 0 {
		if table := f.cfg.Scoring.Lines; len(table) > 0 {
			f.score += table[min(n, len(table)-1)] * f.level
		}
		f.lines += n
		f.sink.Notify(audio.EventClear)

		if lvl := f.lines/max(1, f.cfg.Scoring.LinesPerLevel) + 1; lvl > f.level {
			f.level = lvl
			f.sink.Notify(audio.EventLevelUp)
			if f.onLevel != nil {
				f.onLevel(lvl)
			}
		}
	}
	f.spawn()
}

// stepField is one gravity tick.
func stepField(f *Field, _ core.InputFrame) *Field {
	if f.over {
		return f
	}
	f.ticks++
	f.fall()
	return f
}
