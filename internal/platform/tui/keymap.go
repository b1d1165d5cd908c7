package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// gameBindings lists the default keys for each game action.
var gameBindings = []struct {
	action core.Action
	keys   []string
}{
	{core.ActionQuit, []string{"q", "ctrl+c"}},
	{core.ActionUp, []string{"w", "up", "k"}},
	{core.ActionDown, []string{"s", "down", "j"}},
	{core.ActionLeft, []string{"a", "left", "h"}},
	{core.ActionRight, []string{"d", "right", "l"}},
	{core.ActionRotate, []string{"x", "z"}},
	{core.ActionDrop, []string{" "}},
	{core.ActionConfirm, []string{"enter"}},
	{core.ActionBack, []string{"b", "esc"}},
	{core.ActionPause, []string{"p"}},
	{core.ActionRestart, []string{"r"}},
}

// MenuAction is what a key does on the game picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuBindings = map[string]MenuAction{
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
}

// KeyMapper resolves Bubble Tea key strings to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{game: make(map[string]core.Action)}
	for _, b := range gameBindings {
		km.Bind(b.action, b.keys...)
	}
	return km
}

// Bind points keys at action, replacing whatever they did before.
func (km *KeyMapper) Bind(action core.Action, keys ...string) {
	for _, k := range keys {
		km.game[k] = action
	}
}

// MapKey returns the action bound to msg, or ActionNone, and whether it
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	action, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame. Quit and Back belong to
// the session, not the game, and are left out. It reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionBack:
	default:
		frame.Set(action)
	}
	return quit
}

// MapKeyToMenuAction returns what msg does on the game picker.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuBindings[msg.String()]
}
