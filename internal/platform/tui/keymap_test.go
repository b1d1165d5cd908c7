package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"x", core.ActionRotate, false},
		{" ", core.ActionDrop, false},
		{"enter", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"m", core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestMapKeyToFrameSkipsSessionKeys(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(keyMsg("esc"), &frame))
	assert.True(t, km.MapKeyToFrame(keyMsg("q"), &frame))
	assert.False(t, km.MapKeyToFrame(keyMsg("d"), &frame))

	assert.Equal(t, []core.Action{core.ActionRight}, frame.Order)
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(keyMsg("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyMsg("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(keyMsg("enter")))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(keyMsg("tab")))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(keyMsg("q")))
}

func TestBindOverridesDefault(t *testing.T) {
	km := NewKeyMapper()
	km.Bind(core.ActionDrop, "enter")

	action, quit := km.MapKey(keyMsg("enter"))
	assert.Equal(t, core.ActionDrop, action)
	assert.False(t, quit)

	action, _ = km.MapKey(keyMsg(" "))
	assert.Equal(t, core.ActionDrop, action, "old key keeps its binding")
}
