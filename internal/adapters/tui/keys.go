package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Equals         key.Binding
	Backspace      key.Binding
	Clear          key.Binding
	Percent        key.Binding
	Negate         key.Binding
	MemoryAdd      key.Binding
	MemorySubtract key.Binding
	MemoryClear    key.Binding
	MemoryRecall   key.Binding
	History        key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Equals:         key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
		Backspace:      key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:          key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc/c", "clear")),
		Percent:        key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "percent")),
		Negate:         key.NewBinding(key.WithKeys("n", "_"), key.WithHelp("n", "+/-")),
		MemoryAdd:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "M+")),
		MemorySubtract: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "M-")),
		MemoryClear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "MC")),
		MemoryRecall:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "MR")),
		History:        key.NewBinding(key.WithKeys("tab", "h"), key.WithHelp("tab", "history")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.History, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Equals, k.Backspace, k.Clear, k.Percent, k.Negate},
		{k.MemoryAdd, k.MemorySubtract, k.MemoryClear, k.MemoryRecall},
		{k.History, k.Help, k.Quit},
	}
}
