package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextView     key.Binding
	Dashboard    key.Binding
	Transactions key.Binding
	Budgets      key.Binding
	Insights     key.Binding
	Refresh      key.Binding
	Add          key.Binding
	Delete       key.Binding
	Filter       key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next view"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Transactions: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "transactions"),
		),
		Budgets: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "budgets"),
		),
		Insights: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "insights"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh view"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete selected"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss message"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}
