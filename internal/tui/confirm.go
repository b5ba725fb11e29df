package tui

// confirmModel asks to confirm the deletion of one note.
type confirmModel struct {
	uuid  string
	title string
}

func (m confirmModel) View() string {
	content := "Удалить \"" + fitText(m.title, 40) + "\"?\n\n"
	content += helpLine(keys.yes, keys.no)
	return overlayBoxStyle.Render(content)
}
