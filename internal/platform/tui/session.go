package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel is one whole visit to the arcade inside a single program:
// picker, scoreboard and games, looping until the player quits. SSH
// sessions run it because they cannot start a new program per screen.
type SessionModel struct {
	store  *storage.Store
	config core.RuntimeConfig
	env    registry.Env

	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	game       Model
	quitting   bool
}

// NewSessionModel starts a session on the game picker.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, env registry.Env) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		env:    env.Normalize(),
		menu:   NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		return m.quit()
	}
	if m.menu.WantsScoreboard() {
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	}
	if sel := m.menu.Selected(); sel != nil {
		return m.startGame(sel.GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id, m.env)
	if err != nil {
		m.env.Logger.Error("cannot create game", "game", id, "err", err)
		return m.toMenu()
	}

	// A zero seed is drawn afresh for every game.
	m.game = NewModel(game, m.config, Options{Store: m.store, Logger: m.env.Logger, Embedded: true})
	m.screen = screenGame
	m.env.Logger.Info("game started", "game", id)
	return m, m.game.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// updateGame returns to the picker when the player backs out. Ticks still
// queued for the finished game land on the menu, which ignores them.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		return m.quit()
	case m.game.BackToMenu():
		m.env.Logger.Info("game ended", "game", m.game.game.ID(), "score", m.game.State().Score)
		return m.toMenu()
	}
	return m, cmd
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs a full arcade visit in the current terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, env registry.Env) error {
	_, err := tea.NewProgram(NewSessionModel(store, cfg, env), tea.WithAltScreen()).Run()
	return err
}
