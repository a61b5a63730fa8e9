package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the workbench key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	NextTab   key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Sort      key.Binding
	SortFlip  key.Binding
	Filter    key.Binding
	Compare   key.Binding
	Export    key.Binding
	Actions   key.Binding
	Detail    key.Binding
	NewRFP    key.Binding
	Refresh   key.Binding
	Clear     key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextPage:  key.NewBinding(key.WithKeys("n", "right", "pgdown"), key.WithHelp("n/→", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("p", "left", "pgup"), key.WithHelp("p/←", "prev page")),
		NextTab:   key.NewBinding(key.WithKeys("tab", "shift+tab", "1", "2", "3"), key.WithHelp("tab/1-3", "switch tab")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select page")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		SortFlip:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "flip sort")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Compare:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		Actions:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "actions")),
		Detail:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		NewRFP:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new rfp")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Clear:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear log")),
		Dismiss:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "dismiss toast")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Compare, k.Actions, k.Filter, k.NextTab, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage, k.NextTab},
		{k.Toggle, k.ToggleAll, k.Sort, k.SortFlip, k.Filter},
		{k.Compare, k.Export, k.Actions, k.Detail, k.NewRFP},
		{k.Refresh, k.Clear, k.Dismiss, k.Help, k.Quit},
	}
}
