package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Search     key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	Copy       key.Binding
	CopyAll    key.Binding
	ClearSel   key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
	Apply      key.Binding
	CancelEdit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "select")),
		ToggleAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Copy:       key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter/c", "copy row")),
		CopyAll:    key.NewBinding(key.WithKeys("C", "y"), key.WithHelp("C", "copy selected")),
		ClearSel:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "clear selection")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Apply:      key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "done")),
		CancelEdit: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.ToggleAll, k.Copy, k.CopyAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Search, k.Toggle, k.ToggleAll, k.ClearSel},
		{k.Copy, k.CopyAll, k.Reload, k.Help, k.Quit},
	}
}

type searchKeyMap struct {
	apply  key.Binding
	cancel key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.apply, k.cancel}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
