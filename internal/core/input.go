package core

import (
	"maps"
	"slices"
)

// Action is a game intent, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move or face up
	ActionDown           // move down, soft drop
	ActionLeft
	ActionRight
	ActionRotate         // rotate clockwise
	ActionDrop           // hard drop, primary action
	ActionConfirm        // start a run
	ActionBack           // leave to the menu
	ActionRestart        // new run after game over
	ActionQuit           // leave the program
	ActionPause          // toggle pause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionRotate:  "Rotate",
	ActionDrop:    "Drop",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Direction maps a directional action to its grid step.
// Non-directional actions map to DirNone.
func (a Action) Direction() Dir {
	switch a {
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// InputFrame collects the actions pressed since the previous frame.
// Actions answers "was it pressed"; Order keeps every press in arrival
// order for games that apply each one.
type InputFrame struct {
	Actions map[Action]bool
	Order   []Action
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set records a press of a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Order = append(f.Order, a)
}

func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear empties the frame, keeping its storage for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Order = f.Order[:0]
}

// Clone returns a deep copy.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{
		Actions: maps.Clone(f.Actions),
		Order:   slices.Clone(f.Order),
	}
}
