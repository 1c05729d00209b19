package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Both QWERTY (wasd) and AZERTY (zqsd) layouts move the player, so "q"
// is left and only ctrl+c quits.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "up", "z", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "left", "q", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionBomb, false
	case "p", "esc":
		return core.ActionPause, false
	case "m":
		return core.ActionMute, false
	case "+", "=":
		return core.ActionZoomIn, false
	case "-":
		return core.ActionZoomOut, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	case "ctrl+s":
		// screenshots are handled by the model
		return core.ActionNone, false
	}

	return core.ActionAny, false
}

// MapMouse translates wheel events to zoom actions. Other mouse events
// map to ActionNone.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return core.ActionWheelIn
	case tea.MouseButtonWheelDown:
		return core.ActionWheelOut
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
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

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "x":
		return MenuActionQuit
	case "up", "k", "z", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
