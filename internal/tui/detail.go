package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

func renderNoteDetail(n models.Note) (title, body string) {
	var b strings.Builder

	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Заголовок : " + noteLabel(n) + "\n")
	b.WriteString("Тип       : " + noteTypeLabel(n.Type) + "\n")
	b.WriteString("Статус    : " + noteStatusLabel(n.Status) + "\n")
	b.WriteString("Создана   : " + formatTime(n.Added) + "\n")
	b.WriteString("Изменена  : " + formatTime(n.Modified) + "\n")
	if n.Synced {
		b.WriteString("Синхр.    : да\n")
	} else {
		b.WriteString("Синхр.    : ожидает отправки\n")
	}

	b.WriteString("\n[ СОДЕРЖИМОЕ ]\n")
	if strings.TrimSpace(n.Content) == "" {
		b.WriteString("(пусто)\n")
	} else if n.Type == models.NoteTypeList {
		for _, item := range strings.Split(n.Content, "\n") {
			if item = strings.TrimSpace(item); item != "" {
				b.WriteString("• " + item + "\n")
			}
		}
	} else {
		b.WriteString(n.Content + "\n")
	}

	return "ЗАМЕТКА: " + fitText(noteLabel(n), 40), b.String()
}

// copyValue returns the text put on the clipboard for n.
func copyValue(n models.Note) (string, bool) {
	if strings.TrimSpace(n.Content) != "" {
		return n.Content, true
	}
	if strings.TrimSpace(n.Title) != "" {
		return n.Title, true
	}
	return "", false
}
