package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

const listTitleWidth = 32

func noteTypeLabel(t models.NoteType) string {
	switch t {
	case models.NoteTypeText:
		return "Текст"
	case models.NoteTypeList:
		return "Список"
	default:
		return "Неизвестно"
	}
}

func noteStatusLabel(s models.NoteStatus) string {
	switch s {
	case models.NoteStatusActive:
		return "Активна"
	case models.NoteStatusArchived:
		return "В архиве"
	case models.NoteStatusTrashed:
		return "В корзине"
	case models.NoteStatusDeleted:
		return "Удалена"
	default:
		return "Неизвестно"
	}
}

// noteLabel is the title of n, or the first line of its content for
// untitled notes.
func noteLabel(n models.Note) string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	if l := firstLine(n.Content); l != "" {
		return l
	}
	return "(без названия)"
}

// renderNoteList renders notes as a table with idx selected. Unsynced notes
// are marked with "*".
func renderNoteList(notes []models.Note, idx int) string {
	if len(notes) == 0 {
		return "Заметок нет"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-3s │ %-*s │ %-6s │ %-9s │ %s\n", "ID", listTitleWidth, "Заголовок", "Тип", "Статус", "Изменена"))
	b.WriteString("──────┼─" + strings.Repeat("─", listTitleWidth) + "─┼────────┼───────────┼─────────────────\n")

	for i, n := range notes {
		cursor := " "
		if i == idx {
			cursor = ">"
		}
		mark := " "
		if !n.Synced {
			mark = "*"
		}

		b.WriteString(fmt.Sprintf(
			"%s%s%-3d │ %-*s │ %-6s │ %-9s │ %s\n",
			cursor,
			mark,
			i+1,
			listTitleWidth,
			fitText(noteLabel(n), listTitleWidth),
			noteTypeLabel(n.Type),
			noteStatusLabel(n.Status),
			formatTime(n.Modified),
		))
	}
	b.WriteString("\n* не синхронизирована")

	return b.String()
}
