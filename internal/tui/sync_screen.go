package tui

import (
	"time"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// syncModel is the sync status line of the main screen.
type syncModel struct {
	spinner spinner.Model
	running bool

	message string
	ok      bool
	cursor  time.Time
}

func newSyncModel() syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return syncModel{spinner: s, ok: true}
}

// start marks a manual round as running and returns the spinner tick.
func (m *syncModel) start() tea.Cmd {
	m.running = true
	m.message = "Синхронизация..."
	m.ok = true
	return m.spinner.Tick
}

// finish records the outcome of a round. The cursor shown never moves back.
func (m *syncModel) finish(msg syncDoneMsg) {
	if !msg.auto {
		m.running = false
	}
	if msg.result.Cursor.After(m.cursor) {
		m.cursor = msg.result.Cursor
	}

	text, ok := syncStatusMessage(msg.result, msg.err)
	if msg.auto && ok && msg.result.Outcome != models.SyncCompleted {
		// quiet automatic skips keep the previous message
		return
	}
	if msg.auto {
		text = "Автосинхронизация: " + text
	}
	m.message = text
	m.ok = ok
}

func (m syncModel) update(msg tea.Msg) (syncModel, tea.Cmd) {
	if !m.running {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m syncModel) View() string {
	var out string
	switch {
	case m.running:
		out = m.spinner.View() + " Синхронизация..."
	case m.message == "":
		out = "Синхронизация: -"
	case m.ok:
		out = okStyle.Render(m.message)
	default:
		out = errorStyle.Render(m.message)
	}

	if !m.cursor.IsZero() {
		out += "\nПоследняя синхронизация: " + formatTime(m.cursor)
	}
	return out
}
