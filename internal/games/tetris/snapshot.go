package tetris

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the observable simulation state. Its digest is logged at
// game over, so two runs can be compared from their logs.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	Kind     Kind
	X, Y     int
	Shape    Shape
	Filled   int
	GameOver bool
	Board    string // One rune per cell, rows joined with '\n'
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.field.snapshot()
}

func (f *Field) snapshot() Snapshot {
	return Snapshot{
		Tick:     f.ticks,
		Score:    f.score,
		Lines:    f.lines,
		Level:    f.level,
		Kind:     f.piece.Kind,
		X:        f.piece.X,
		Y:        f.piece.Y,
		Shape:    f.piece.Shape.Clone(),
		Filled:   f.board.Filled(),
		GameOver: f.over,
		Board:    f.board.String(),
	}
}

// Hash folds the snapshot into a 64-bit digest.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(s.Board)
	var b []byte
	for _, v := range []int{int(s.Tick), s.Score, s.Lines, s.Level, int(s.Kind), s.X, s.Y, s.Filled} {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	for _, row := range s.Shape {
		for _, on := range row {
			if on {
				b = append(b, 1)
			} else {
				b = append(b, 0)
			}
		}
		b = append(b, '|')
	}
	if s.GameOver {
		b = append(b, 1)
	}
	_, _ = d.Write(b)
	return d.Sum64()
}

// Digest is Hash as fixed-width hex.
func (s Snapshot) Digest() string {
	return fmt.Sprintf("%016x", s.Hash())
}
