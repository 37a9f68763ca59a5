package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mathify/internal/core"
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
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"v", runeKey("v"), core.ActionReview, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"digit", runeKey("7"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("MapKey(%s) action = %s, expected %s", tt.name, action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%s) quit = %v, expected %v", tt.name, quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameRunes(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey("-"), &frame)
	km.MapKeyToFrame(runeKey("4"), &frame)
	km.MapKeyToFrame(runeKey("2"), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)

	if string(frame.Runes) != "-42" {
		t.Errorf("Runes = %q, expected %q", string(frame.Runes), "-42")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should set ActionConfirm")
	}

	// Bound keys are actions, not typed text
	km.MapKeyToFrame(runeKey("r"), &frame)
	if string(frame.Runes) != "-42" {
		t.Errorf("bound key leaked into runes: %q", string(frame.Runes))
	}

	// Pasted text is ignored
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("123"), Paste: true}, &frame)
	if string(frame.Runes) != "-42" {
		t.Errorf("pasted text should be ignored, got %q", string(frame.Runes))
	}
}

func TestIsScreenshot(t *testing.T) {
	km := NewKeyMapper()
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should request a screenshot")
	}
	if km.IsScreenshot(runeKey("s")) {
		t.Error("plain s should not request a screenshot")
	}
}
