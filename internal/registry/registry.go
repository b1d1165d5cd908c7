// Package registry maps game IDs to factories. Each game package registers
// itself from init, so the front ends only need a blank import.
package registry

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for unregistered IDs.
var ErrUnknownGame = errors.New("unknown game")

// Game is one arcade game. Implementations hold only simulation state; the
// platform owns the terminal, the clock and the key bindings.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "chomper", "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the game back in its not-started state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Start begins a new run, discarding any previous one.
	Start()

	// Pause and Resume suspend and continue a running game.
	Pause()
	Resume()

	// HandleInput applies a single action immediately.
	HandleInput(a core.Action)

	// Step applies the frame's input, then advances the simulation by the
	// elapsed frame time.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, lives, run state).
	State() core.GameState
}

// Env carries the capabilities a game is constructed with.
type Env struct {
	Sink   audio.Sink
	Logger *log.Logger

	// ConfigFile overrides the config search path. Empty searches the
	// usual locations and falls back to the embedded defaults.
	ConfigFile string
}

// Normalize fills unset capabilities with no-op implementations.
func (e Env) Normalize() Env {
	e.Sink = audio.OrNop(e.Sink)
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func(env Env) Game

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. Games call it from init. The
// factory is invoked once with a no-op Env to read the title. Registering
// the same id twice panics.
func Register(id string, f Factory) {
	title := f(Env{}.Normalize()).Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns every registered game, ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		out = append(out, GameInfo{ID: id, Title: entries[id].title})
	}
	return out
}

// Create builds the game registered under id. Unknown ids yield an error
// wrapping ErrUnknownGame.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(env.Normalize()), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
