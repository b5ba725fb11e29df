package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	logout  key.Binding
	newNote key.Binding
	sync    key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	save    key.Binding
	kind    key.Binding
	yes     key.Binding
	no      key.Binding
	version key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "нав.")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "открыть")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "назад")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "след. поле")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "выход")),
	logout:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "выйти из аккаунта")),
	newNote: key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "добавить")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "синхр.")),
	edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "изм.")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "уд.")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "копировать")),
	save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "сохранить")),
	kind:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "тип")),
	yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "да")),
	no:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "нет")),
	version: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "версия")),
}

// helpLine renders the help of bindings as "key: desc │ key: desc".
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " │ ")
}
