package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the preview.
type KeyMap struct {
	Scheme   key.Binding
	Mode     key.Binding
	Disabled key.Binding
	ReadOnly key.Binding
	Error    key.Binding
	Success  key.Binding
	Editing  key.Binding
	Larger   key.Binding
	Smaller  key.Binding
	Variant  key.Binding
	Gradient key.Binding
	Section  key.Binding
	Left     key.Binding
	Right    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Scheme: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next scheme"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "light/dark"),
		),
		Disabled: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "disabled"),
		),
		ReadOnly: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "read-only"),
		),
		Error: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "error"),
		),
		Success: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "success"),
		),
		Editing: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "editing"),
		),
		Larger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "larger"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "next variant"),
		),
		Gradient: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gradient"),
		),
		Section: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "slider down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "slider up"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scheme, k.Mode, k.Section, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scheme, k.Mode, k.Variant, k.Gradient},
		{k.Disabled, k.ReadOnly, k.Error, k.Success, k.Editing},
		{k.Larger, k.Smaller, k.Left, k.Right},
		{k.Section, k.Help, k.Quit},
	}
}

// StateKeys returns the bindings that toggle state flags, in flag order.
func (k KeyMap) StateKeys() []key.Binding {
	return []key.Binding{k.Disabled, k.ReadOnly, k.Error, k.Success, k.Editing}
}
