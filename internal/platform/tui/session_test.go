package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"

	_ "github.com/vovakirdan/neon-arcade/internal/games/chomper"
	_ "github.com/vovakirdan/neon-arcade/internal/games/pong"
	_ "github.com/vovakirdan/neon-arcade/internal/games/snake"
	_ "github.com/vovakirdan/neon-arcade/internal/games/tetris"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm
}

func newSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewSessionModel(openStore(t), core.DefaultConfig(), registry.Env{})
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	ids := make([]string, 0, len(m.items))
	for _, it := range m.items {
		ids = append(ids, it.GameID)
	}
	assert.Equal(t, []string{"chomper", "pong", "snake", "tetris"}, ids)
	assert.Contains(t, m.View(), "Chomper")
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	_, err := store.SetBestScoreIfHigher("tetris", 1200)
	require.NoError(t, err)

	m := NewMenuModel(store, core.DefaultConfig())
	assert.Contains(t, m.View(), "best 1200")
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	m := newSession(t)

	m = sessionUpdate(t, m, keyMsg("j"))
	m = sessionUpdate(t, m, keyMsg("enter"))
	require.Equal(t, screenGame, m.screen)
	assert.Equal(t, "pong", m.game.game.ID())

	m = sessionUpdate(t, m, TickMsg(time.Unix(1, 0)))
	assert.Contains(t, m.View(), "PONG")

	m = sessionUpdate(t, m, keyMsg("esc"))
	assert.Equal(t, screenMenu, m.screen)
	assert.Contains(t, m.View(), "Select a game")
	assert.False(t, m.quitting)
}

func TestSessionScoreboard(t *testing.T) {
	m := newSession(t)

	m = sessionUpdate(t, m, keyMsg("tab"))
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m = sessionUpdate(t, m, keyMsg("esc"))
	assert.Equal(t, screenMenu, m.screen)
	assert.False(t, m.quitting)
}

func TestSessionQuit(t *testing.T) {
	m := newSession(t)
	next, cmd := m.Update(keyMsg("q"))
	sm := next.(SessionModel)
	assert.True(t, sm.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, sm.View())
}
