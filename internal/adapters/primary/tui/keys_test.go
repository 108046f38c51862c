package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_Classify(t *testing.T) {
	keys := defaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, CommandNext},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, CommandPrevious},
		{"plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, CommandIncreaseMargin},
		{"minus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}}, CommandDecreaseMargin},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, CommandActivate},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, CommandQuit},

		// Modifiers do not change the classification.
		{"alt down", tea.KeyMsg{Type: tea.KeyDown, Alt: true}, CommandNext},
		{"alt plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}, Alt: true}, CommandIncreaseMargin},
		{"shift down", tea.KeyMsg{Type: tea.KeyShiftDown}, CommandNext},
		{"shift up", tea.KeyMsg{Type: tea.KeyShiftUp}, CommandPrevious},

		// Everything unmapped is a no-op, never an error.
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, CommandNoOp},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, CommandNoOp},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CommandNoOp},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CommandNoOp},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, CommandNoOp},
		{"function key", tea.KeyMsg{Type: tea.KeyF1}, CommandNoOp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.classify(tt.msg))
		})
	}
}

func TestCommand_String(t *testing.T) {
	// Every command has a distinct name.
	commands := []Command{
		CommandNoOp, CommandNext, CommandPrevious,
		CommandIncreaseMargin, CommandDecreaseMargin,
		CommandActivate, CommandQuit,
	}

	seen := make(map[string]bool)
	for _, c := range commands {
		name := c.String()
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}
