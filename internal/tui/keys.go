package tui

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Quit   key.Binding
	Pause  key.Binding
	Step   key.Binding
	Faster key.Binding
	Slower key.Binding
	Trails key.Binding
	Stats  key.Binding
	Reset  key.Binding
	Export key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Step:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "step")),
		Faster: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "faster")),
		Slower: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "slower")),
		Trails: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trails")),
		Stats:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "stats")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Export: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export csv")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Trails, k.Stats, k.Reset, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Faster, k.Slower},
		{k.Trails, k.Stats, k.Reset, k.Export, k.Quit},
	}
}
