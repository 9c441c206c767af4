package autocomplete

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds keys to session commands. It is consulted only while a
// session is open; unmatched keys fall through to the editor.
type KeyMap struct {
	Down   key.Binding
	Up     key.Binding
	Commit key.Binding
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next suggestion")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev suggestion")),
		Commit: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter/tab", "insert suggestion")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close suggestions")),
	}
}

// Command maps msg to a session command.
func (km KeyMap) Command(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, km.Down):
		return CmdMoveDown, true
	case key.Matches(msg, km.Up):
		return CmdMoveUp, true
	case key.Matches(msg, km.Commit):
		return CmdCommit, true
	case key.Matches(msg, km.Cancel):
		return CmdCancel, true
	default:
		return 0, false
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Down, km.Up, km.Commit, km.Cancel}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
