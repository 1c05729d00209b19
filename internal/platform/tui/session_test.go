package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	store := &memStore{}
	m := NewSessionModel(store, testConfig(), "alice")
	if m.ID() == "" {
		t.Fatal("ID() is empty")
	}

	// Menu -> scoreboard -> menu
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	// Menu -> game
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if m.game.game.ID() != "bomber:normal" {
		t.Errorf("game = %s, expected bomber:normal", m.game.game.ID())
	}
	if m.View() == "" {
		t.Error("View() in game is empty")
	}

	// A stale tick from another model is ignored, the session's own tick steps the game
	m = sendSession(t, m, TickMsg{Gen: m.game.tickGen + 1})
	m = sendSession(t, m, TickMsg{Gen: m.game.tickGen})

	// Back before the first key returns to the menu
	m = sendSession(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", m.screen)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("session did not quit on ctrl+c")
	}
}

func TestFilterQuit(t *testing.T) {
	if filterQuit(nil) != nil {
		t.Error("filterQuit(nil) != nil")
	}
	if msg := filterQuit(tea.Quit)(); msg != nil {
		t.Errorf("filterQuit(tea.Quit)() = %v, expected nil", msg)
	}
	keep := func() tea.Msg { return TickMsg{Gen: 7} }
	if msg, ok := filterQuit(keep)().(TickMsg); !ok || msg.Gen != 7 {
		t.Errorf("filterQuit(tick)() = %v, expected the tick", msg)
	}
}
