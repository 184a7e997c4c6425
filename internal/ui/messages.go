package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/hue/internal/theme"
)

// ThemeChangedMsg carries a snapshot published by the theme store.
type ThemeChangedMsg struct {
	Snapshot theme.Snapshot
}

// StoreUpdatedMsg reports the outcome of a store setter run from a command.
type StoreUpdatedMsg struct {
	Op       string
	Changed  bool
	Snapshot theme.Snapshot
}

// QuitMsg signals the application should quit.
type QuitMsg struct{}

// Quit returns a command that quits the application.
func Quit() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards every snapshot the store publishes to p as a
// ThemeChangedMsg. The returned function unsubscribes.
func Bridge(p Sender, store ThemeStore) func() {
	return store.Subscribe(func(s theme.Snapshot) {
		p.Send(ThemeChangedMsg{Snapshot: s})
	})
}
