package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger

	// Embedded models report Back to their parent instead of quitting the
	// program. Used by the SSH session, which returns to its menu.
	Embedded bool
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   *KeyMapper

	frame    core.InputFrame
	lastTick time.Time
	state    core.GameState

	best       int
	newBest    bool
	scoreSaved bool // Whether the current game over has been persisted

	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		frame:    core.NewInputFrame(),
		embedded: opts.Embedded,
	}

	if m.store != nil {
		best, err := m.store.GetBestScore(game.ID())
		if err != nil {
			logger.Warn("cannot load best score", "game", game.ID(), "err", err)
		}
		m.best = best
	}
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. Quit and Back are
// handled here since they leave the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		// Only leave a game that is not in play.
		if m.state.Run == core.RunRunning && !m.state.GameOver {
			return m, nil
		}
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.keys.MapKeyToFrame(msg, &m.frame)
	return m, nil
}

// handleResize processes window resize events. A game still on its title
// screen is reset so it can size itself to the new terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.state.Run == core.RunNotStarted && !m.state.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.frame, dt)
	m.state = result.State
	m.frame.Clear()

	m.recordScore()

	return m, tickCmd(m.config.TickRate)
}

// recordScore persists the final score once per game over.
func (m *Model) recordScore() {
	if !m.state.GameOver {
		m.scoreSaved = false
		m.newBest = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.state.Score <= 0 {
		return
	}

	id := m.game.ID()
	if _, err := m.store.SaveScore(id, m.state.Score); err != nil {
		m.logger.Warn("cannot save score", "game", id, "score", m.state.Score, "err", err)
	}
	changed, err := m.store.SetBestScoreIfHigher(id, m.state.Score)
	if err != nil {
		m.logger.Warn("cannot save best score", "game", id, "score", m.state.Score, "err", err)
		return
	}
	if changed {
		m.best = m.state.Score
		m.newBest = true
		m.logger.Info("new best score", "game", id, "score", m.state.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.drawBest()

	return RenderScreen(m.screen)
}

// drawBest writes the best score below the game-over panel.
func (m Model) drawBest() {
	if !m.state.GameOver || m.best <= 0 {
		return
	}

	text := fmt.Sprintf("Best: %d", m.best)
	color := core.ColorGray
	if m.newBest {
		text = fmt.Sprintf("NEW BEST! %d", m.best)
		color = core.ColorBrightYellow
	}

	// Overlay panels are five rows tall and centred.
	y := (m.screen.Height()-5)/2 + 5
	x := (m.screen.Width() - len(text)) / 2
	m.screen.DrawTextColored(x, y, text, color)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// NewBest reports whether the last game over set a new best score.
func (m Model) NewBest() bool {
	return m.newBest
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Embedded = false
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
