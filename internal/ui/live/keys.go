package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shared by the quiz prompts.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Abort  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// helpLine renders the short key help shown under the choices.
func (k keyMap) helpLine() string {
	bindings := []key.Binding{k.Up, k.Down, k.Select, k.Abort}
	line := ""
	for i, binding := range bindings {
		if i > 0 {
			line += " • "
		}
		help := binding.Help()
		line += help.Key + " " + help.Desc
	}
	return line
}
