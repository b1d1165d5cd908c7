package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second driven by the platform (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Preset   string // Difficulty preset name ("", "easy", "normal", "hard")
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// RunState is the play/pause state of a session.
type RunState int

const (
	RunNotStarted RunState = iota
	RunRunning
	RunPaused
)

// String returns the lowercase name of the run state.
func (r RunState) String() string {
	switch r {
	case RunNotStarted:
		return "not_started"
	case RunRunning:
		return "running"
	case RunPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	Lives    int      // Remaining lives (0 for games without lives)
	Level    int      // Current level, 1-based
	Run      RunState // Play/pause state
	GameOver bool     // Whether the game has ended
	Paused   bool     // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Ticks int // Discrete simulation steps executed this frame
}
