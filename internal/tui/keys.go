package tui

import "github.com/charmbracelet/bubbles/key"

// ShortHelp returns keybindings to be shown in the mini help view. It's part of the key.Map interface.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Toggle, k.Reset, k.Theme, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the key.Map interface.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Clock, k.Stopwatch, k.Timer},
		{k.Toggle, k.Reset, k.Lap, k.Copy},
		{k.Format, k.Analog, k.Up, k.Down, k.Left, k.Right},
		{k.Theme, k.Help, k.Quit},
	}
}

type keyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Clock     key.Binding
	Stopwatch key.Binding
	Timer     key.Binding
	Toggle    key.Binding
	Reset     key.Binding
	Lap       key.Binding
	Copy      key.Binding
	Format    key.Binding
	Analog    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Clock: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "clock"),
	),
	Stopwatch: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "stopwatch"),
	),
	Timer: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "timer"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "start/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Lap: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "lap"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy laps"),
	),
	Format: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "12/24h"),
	),
	Analog: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analog/digital"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "increase"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "decrease"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous field"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next field"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "light/dark"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
