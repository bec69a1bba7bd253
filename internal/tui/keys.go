package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is the closed set of actions a key press can request.
type Command int

// Commands produced by the key map.
const (
	CmdContinue Command = iota
	CmdQuit
	CmdTogglePause
	CmdToggleHelp
	CmdScrollUp
	CmdScrollDown
	CmdFastForward
	CmdRewind
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdToggleHelp:
		return "toggle-help"
	case CmdScrollUp:
		return "scroll-up"
	case CmdScrollDown:
		return "scroll-down"
	case CmdFastForward:
		return "fast-forward"
	case CmdRewind:
		return "rewind"
	default:
		return "continue"
	}
}

type keyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Help       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Forward    key.Binding
	Rewind     key.Binding
}

func newKeyMap(seekStep int) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q / Esc", "Quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Pause / Resume"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle this help"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j / ↓", "Scroll help down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k / ↑", "Scroll help up"),
		),
		Forward: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l / →", fmt.Sprintf("Forward %d words", seekStep)),
		),
		Rewind: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h / ←", fmt.Sprintf("Back %d words", seekStep)),
		),
	}
}

// Bindings lists the bindings in help-table order.
func (k keyMap) Bindings() []key.Binding {
	return []key.Binding{k.Quit, k.Pause, k.Help, k.ScrollDown, k.ScrollUp, k.Forward, k.Rewind}
}

// Command maps a key press to a command. Unknown keys map to CmdContinue.
func (k keyMap) Command(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Quit):
		return CmdQuit
	case key.Matches(msg, k.Pause):
		return CmdTogglePause
	case key.Matches(msg, k.Help):
		return CmdToggleHelp
	case key.Matches(msg, k.ScrollDown):
		return CmdScrollDown
	case key.Matches(msg, k.ScrollUp):
		return CmdScrollUp
	case key.Matches(msg, k.Forward):
		return CmdFastForward
	case key.Matches(msg, k.Rewind):
		return CmdRewind
	default:
		return CmdContinue
	}
}
