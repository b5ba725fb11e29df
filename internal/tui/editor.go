package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// noteEditorModel edits the title, content and type of a single note. base
// is the note being edited; its UUID is empty for a new note.
type noteEditorModel struct {
	base    models.Note
	title   textinput.Model
	content textarea.Model
	kind    models.NoteType
	focus   int

	saving bool
	errMsg string
}

func newNoteEditor(base models.Note) noteEditorModel {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.CharLimit = 200
	title.Width = 54
	title.SetValue(base.Title)
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Текст заметки; для списка по пункту в строке"
	content.SetWidth(56)
	content.SetHeight(8)
	content.SetValue(base.Content)

	return noteEditorModel{
		base:    base,
		title:   title,
		content: content,
		kind:    base.Type,
	}
}

func (m noteEditorModel) isNew() bool {
	return m.base.UUID == ""
}

func (m *noteEditorModel) switchFocus() {
	if m.focus == 0 {
		m.title.Blur()
		m.content.Focus()
		m.focus = 1
		return
	}
	m.content.Blur()
	m.title.Focus()
	m.focus = 0
}

func (m *noteEditorModel) toggleKind() {
	if m.kind == models.NoteTypeText {
		m.kind = models.NoteTypeList
	} else {
		m.kind = models.NoteTypeText
	}
}

// note returns base with the edited fields applied.
func (m noteEditorModel) note() models.Note {
	n := m.base
	n.Title = strings.TrimSpace(m.title.Value())
	n.Content = strings.TrimRight(m.content.Value(), " \n")
	n.Type = m.kind
	return n
}

func (m noteEditorModel) update(msg tea.Msg) (noteEditorModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m noteEditorModel) View() string {
	var b strings.Builder
	b.WriteString("Заголовок : [ " + m.title.View() + " ]\n")
	b.WriteString("Тип       : " + noteTypeLabel(m.kind) + "\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\nСохранение...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
	return b.String()
}

func (m noteEditorModel) pageTitle() string {
	if m.isNew() {
		return "НОВАЯ ЗАМЕТКА"
	}
	return "ИЗМЕНЕНИЕ ЗАМЕТКИ"
}
