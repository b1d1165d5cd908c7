package snake

import "github.com/vovakirdan/neon-arcade/internal/core"

// Phase names where a run is in its lifecycle.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseWin      Phase = "win"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Score  int
	Speed  int
	Length int
	Head   core.Point
	Dir    core.Dir
	Food   core.Point
	Phase  Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	phase := PhasePlaying
	switch {
	case w.won:
		phase = PhaseWin
	case w.over:
		phase = PhaseGameOver
	case g.run.State() == core.RunNotStarted:
		phase = PhaseIdle
	case g.run.State() == core.RunPaused:
		phase = PhasePaused
	}

	var head core.Point
	if len(w.body) > 0 {
		head = w.body[0]
	}

	return Snapshot{
		Tick:   w.ticks,
		Score:  w.score,
		Speed:  w.speed,
		Length: len(w.body),
		Head:   head,
		Dir:    w.dir,
		Food:   w.food,
		Phase:  phase,
	}
}
