package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is the closed set of abstract presentation commands a key
// event can classify into.
type Command int

const (
	// CommandNoOp leaves the presentation untouched.
	CommandNoOp Command = iota
	// CommandNext advances to the next slide.
	CommandNext
	// CommandPrevious returns to the previous slide.
	CommandPrevious
	// CommandIncreaseMargin grows the layout margin by one cell.
	CommandIncreaseMargin
	// CommandDecreaseMargin shrinks the layout margin by one cell.
	CommandDecreaseMargin
	// CommandActivate triggers the current slide's side effect.
	CommandActivate
	// CommandQuit ends the presentation.
	CommandQuit
)

// String returns the command name for logs.
func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandIncreaseMargin:
		return "increase-margin"
	case CommandDecreaseMargin:
		return "decrease-margin"
	case CommandActivate:
		return "activate"
	case CommandQuit:
		return "quit"
	default:
		return "noop"
	}
}

// keyMap holds the presenter's key bindings.
type keyMap struct {
	Next           key.Binding
	Previous       key.Binding
	IncreaseMargin key.Binding
	DecreaseMargin key.Binding
	Activate       key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "shift+down"),
			key.WithHelp("↓", "next slide"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "shift+up"),
			key.WithHelp("↑", "previous slide"),
		),
		IncreaseMargin: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "increase margin"),
		),
		DecreaseMargin: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "decrease margin"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate slide"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// classify maps exactly one key event to exactly one command. Unmapped
// keys classify as CommandNoOp, never an error, so classification is
// total.
func (k keyMap) classify(msg tea.KeyMsg) Command {
	// Only the key itself matters; drop the alt modifier before
	// matching.
	msg.Alt = false

	switch {
	case key.Matches(msg, k.Next):
		return CommandNext
	case key.Matches(msg, k.Previous):
		return CommandPrevious
	case key.Matches(msg, k.IncreaseMargin):
		return CommandIncreaseMargin
	case key.Matches(msg, k.DecreaseMargin):
		return CommandDecreaseMargin
	case key.Matches(msg, k.Activate):
		return CommandActivate
	case key.Matches(msg, k.Quit):
		return CommandQuit
	default:
		return CommandNoOp
	}
}
