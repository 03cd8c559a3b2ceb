package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding

	// Tabs
	TabRecord     key.Binding
	TabTasks      key.Binding
	TabRecordings key.Binding
	TabHelp       key.Binding

	// Actions
	Record     key.Binding
	Transcribe key.Binding
	Toggle     key.Binding
	Priority   key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Confirm    key.Binding

	// Application
	Quit key.Binding
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
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		TabRecord: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "record tab"),
		),
		TabTasks: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "tasks tab"),
		),
		TabRecordings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "recordings tab"),
		),
		TabHelp: key.NewBinding(
			key.WithKeys("4", "?"),
			key.WithHelp("4/?", "help tab"),
		),
		Record: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "start/stop recording"),
		),
		Transcribe: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transcribe"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x/enter", "toggle complete"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all (confirm with y)"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
