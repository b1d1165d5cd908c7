package chomper

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// GhostSnapshot is the observable state of one ghost.
type GhostSnapshot struct {
	Name   string
	Pos    core.Point
	Dir    core.Dir
	Mode   Mode
	Scared bool
}

// Snapshot is the observable simulation state. Its digest is logged at
// level start and game over, so two runs can be compared from their logs.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	Lives     int
	Dots      int
	Player    core.Point
	Heading   core.Dir
	Ghosts    [4]GhostSnapshot
	Power     bool
	Frozen    bool
	LevelDone bool
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.snapshot()
}

func (w *World) snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.ticks,
		Level:     w.level,
		Score:     w.score,
		Lives:     w.lives,
		Dots:      w.maze.DotsRemaining(),
		Player:    w.player.Pos,
		Heading:   w.player.Dir,
		Power:     w.power,
		Frozen:    w.frozen,
		LevelDone: w.levelDone,
		GameOver:  w.over,
	}
	for i, gh := range w.ghosts {
		s.Ghosts[i] = GhostSnapshot{
			Name:   gh.Name,
			Pos:    gh.Pos,
			Dir:    gh.Dir,
			Mode:   gh.Mode,
			Scared: gh.Scared(w.power),
		}
	}
	return s
}

// Hash folds the snapshot into a 64-bit digest. Equal snapshots hash equal.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	flag := func(b bool) {
		if b {
			put(1)
		} else {
			put(0)
		}
	}

	put(int64(s.Tick))
	put(int64(s.Level))
	put(int64(s.Score))
	put(int64(s.Lives))
	put(int64(s.Dots))
	put(int64(s.Player.X))
	put(int64(s.Player.Y))
	put(int64(s.Heading.X))
	put(int64(s.Heading.Y))
	for _, gh := range s.Ghosts {
		put(int64(gh.Pos.X))
		put(int64(gh.Pos.Y))
		put(int64(gh.Dir.X))
		put(int64(gh.Dir.Y))
		put(int64(gh.Mode))
		flag(gh.Scared)
	}
	flag(s.Power)
	flag(s.Frozen)
	flag(s.LevelDone)
	flag(s.GameOver)
	return d.Sum64()
}

// Digest is Hash as fixed-width hex.
func (s Snapshot) Digest() string {
	return fmt.Sprintf("%016x", s.Hash())
}
