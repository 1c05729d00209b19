package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"azerty up", runeKey("z"), core.ActionUp, false},
		{"qwerty up", runeKey("w"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"down", runeKey("s"), core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"azerty left", runeKey("q"), core.ActionLeft, false},
		{"qwerty left", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"right", runeKey("d"), core.ActionRight, false},
		{"space bomb", tea.KeyMsg{Type: tea.KeySpace}, core.ActionBomb, false},
		{"enter bomb", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionBomb, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"esc pause", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"mute", runeKey("m"), core.ActionMute, false},
		{"zoom in plus", runeKey("+"), core.ActionZoomIn, false},
		{"zoom in equals", runeKey("="), core.ActionZoomIn, false},
		{"zoom out", runeKey("-"), core.ActionZoomOut, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"back", runeKey("b"), core.ActionBack, false},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone, false},
		{"other key", runeKey("y"), core.ActionAny, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected core.Action
	}{
		{"wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ActionWheelIn},
		{"wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, core.ActionWheelOut},
		{"left click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapMouse(tt.msg); got != tt.expected {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("d"), &frame) {
		t.Error("MapKeyToFrame(d) = quit, expected no quit")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlS}, &frame)

	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionBomb) {
		t.Errorf("frame = %v, expected Right and Bomb", frame.Actions)
	}
	if len(frame.Actions) != 2 {
		t.Errorf("len(frame.Actions) = %d, expected 2", len(frame.Actions))
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("MapKeyToFrame(ctrl+c) = no quit, expected quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{runeKey("z"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey("x"), MenuActionQuit},
		{runeKey("q"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}
