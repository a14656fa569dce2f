package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
	Cancel      key.Binding
	Calendar    key.Binding
	ToggleTheme key.Binding

	// list focus only, where letters are not typed into a field
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	EditDate key.Binding
	Delete   key.Binding
	QuitList key.Binding

	// calendar overlay
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Calendar:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "calendar")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),

		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		EditDate: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "change date")),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		QuitList: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		PrevDay:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "day")),
		NextDay:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "day")),
		PrevWeek:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "week")),
		NextWeek:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "week")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
	}
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
