package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/session"
)

// KeyMap defines the key bindings of the game screen. Bindings that only make
// sense in one phase are switched with SetGameOver, so help and matching
// always agree.
type KeyMap struct {
	Submit    key.Binding
	Delete    key.Binding
	Restart   key.Binding
	Reload    key.Binding
	PlayAgain key.Binding
	Leave     key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.PlayAgain, k.Leave, k.Restart, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete},
		{k.PlayAgain, k.Leave},
		{k.Restart, k.Reload, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings for a game in progress.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("^n", "new word"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "reload words"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
	k.SetGameOver(false)
	return k
}

// SetGameOver switches between in-game and game over bindings.
func (k *KeyMap) SetGameOver(over bool) {
	k.Submit.SetEnabled(!over)
	k.Delete.SetEnabled(!over)
	k.PlayAgain.SetEnabled(over)
	k.Leave.SetEnabled(over)
}

// MapKey translates a key message to a session action.
// Returns the action (nil when the key is unbound) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action session.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Leave):
		return nil, true
	case key.Matches(msg, k.PlayAgain), key.Matches(msg, k.Restart):
		return session.RestartRequested{}, false
	case key.Matches(msg, k.Reload):
		return session.RestartRequested{Reload: true}, false
	case key.Matches(msg, k.Submit):
		return session.SubmitPressed{}, false
	case key.Matches(msg, k.Delete):
		return session.DeletePressed{}, false
	}

	// Letters are only accepted while a game is running
	if !k.Submit.Enabled() || msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return nil, false
	}
	if r := msg.Runes[0]; core.IsLetter(r) {
		return session.CharacterEntered{Char: r}, false
	}
	return nil, false
}

// MapLabel translates an on-screen keyboard label to a session action.
func MapLabel(label string) session.Action {
	switch label {
	case keyEnter:
		return session.SubmitPressed{}
	case keyDelete:
		return session.DeletePressed{}
	}
	if r := []rune(label); len(r) == 1 && core.IsLetter(r[0]) {
		return session.CharacterEntered{Char: r[0]}
	}
	return nil
}
