package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type mainMode int

const (
	modeList mainMode = iota
	modeDetail
	modeEdit
	modeConfirm
	modeError
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx         context.Context
	notes       service.ClientNoteService
	coordinator service.SyncCoordinator
	session     models.Session

	manualInterval time.Duration
	autoSync       <-chan syncDoneMsg
	buildInfo      models.AppBuildInfo

	items   []models.Note
	idx     int
	loading bool
	status  string
	errMsg  string

	mode    mainMode
	editor  noteEditorModel
	confirm confirmModel
	overlay errorOverlayModel
	sync    syncModel

	showBuildInfo bool

	// reauth makes closing the error overlay end the session.
	reauth bool
	logout bool
}

func newMainLoopModel(ctx context.Context, t *TUI, session models.Session) mainLoopModel {
	return mainLoopModel{
		ctx:            ctx,
		notes:          t.services.NoteService,
		coordinator:    t.services.SyncCoordinator,
		session:        session,
		manualInterval: t.workers.ManualSyncInterval,
		autoSync:       t.autoSync,
		buildInfo:      t.buildInfo,
		loading:        true,
		sync:           newSyncModel(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.cmdWaitAutoSync())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = "Ошибка загрузки: " + msg.err.Error()
			return m, nil
		}
		m.items = msg.notes
		m.clampIdx()
		return m, nil

	case syncDoneMsg:
		m.sync.finish(msg)
		var cmds []tea.Cmd
		if msg.auto {
			cmds = append(cmds, m.cmdWaitAutoSync())
		}
		if errors.Is(msg.err, service.ErrSyncUnauthenticated) {
			m.reauth = true
			m.showError("Сервер не принял сеанс. Войдите заново.")
			return m, tea.Batch(cmds...)
		}
		if msg.result.Outcome == models.SyncCompleted {
			cmds = append(cmds, m.cmdLoadNotes())
		}
		return m, tea.Batch(cmds...)

	case noteSavedMsg:
		m.editor.saving = false
		if msg.err != nil {
			m.editor.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.mode = modeList
		if msg.created {
			m.status = "Заметка добавлена"
		} else {
			m.status = "Заметка обновлена"
		}
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = "Ошибка удаления: " + msg.err.Error()
			return m, nil
		}
		m.status = "Заметка удалена"
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.sync, cmd = m.sync.update(msg)
		if m.mode == modeEdit {
			var editCmd tea.Cmd
			m.editor, editCmd = m.editor.update(msg)
			cmd = tea.Batch(cmd, editCmd)
		}
		return m, cmd
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeEdit:
		return m.updateEdit(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	case modeError:
		return m.updateError(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.mode = modeDetail
	case key.Matches(msg, keys.newNote):
		m.startEdit(models.Note{})
	case key.Matches(msg, keys.edit):
		note, ok := m.current()
		if !ok {
			m.status = "Нет заметок"
			return m, nil
		}
		m.startEdit(note)
	case key.Matches(msg, keys.delete):
		return m.askDelete()
	case key.Matches(msg, keys.copy):
		return m.copyCurrent()
	case key.Matches(msg, keys.sync):
		if m.sync.running {
			return m, nil
		}
		m.errMsg = ""
		return m, tea.Batch(m.sync.start(), m.cmdSync())
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
	case key.Matches(msg, keys.edit):
		m.startEdit(note)
	case key.Matches(msg, keys.delete):
		return m.askDelete()
	case key.Matches(msg, keys.copy):
		return m.copyCurrent()
	}
	return m, nil
}

func (m mainLoopModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab, keys.backtab):
		m.editor.switchFocus()
		return m, nil
	case key.Matches(msg, keys.kind):
		m.editor.toggleKind()
		return m, nil
	case key.Matches(msg, keys.save):
		if m.editor.saving {
			return m, nil
		}
		note := m.editor.note()
		if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Content) == "" {
			m.editor.errMsg = saveErrorMessage(service.ErrEmptyNote)
			return m, nil
		}
		m.editor.errMsg = ""
		m.editor.saving = true
		return m, m.cmdSave(note, m.editor.isNew())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		return m, m.cmdDelete(m.confirm.uuid)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m mainLoopModel) updateError(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.enter, keys.esc) {
		return m, nil
	}
	m.mode = modeList
	if m.reauth {
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) askDelete() (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.status = "Нет заметок"
		return m, nil
	}
	m.confirm = confirmModel{uuid: note.UUID, title: noteLabel(note)}
	m.mode = modeConfirm
	return m, nil
}

func (m mainLoopModel) copyCurrent() (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.status = "Нет заметок"
		return m, nil
	}
	text, ok := copyValue(note)
	if !ok {
		m.status = "Нечего копировать"
		return m, nil
	}
	if err := writeClipboard(text); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return m, nil
	}
	m.status = "Скопировано"
	return m, cmdClearStatus()
}

func (m *mainLoopModel) startEdit(note models.Note) {
	m.editor = newNoteEditor(note)
	m.mode = modeEdit
	m.errMsg = ""
}

func (m *mainLoopModel) showError(message string) {
	m.overlay = errorOverlayModel{message: message}
	m.mode = modeError
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.mode {
	case modeEdit:
		return renderPage(m.editor.pageTitle(), m.editor.View(),
			helpLine(keys.esc, keys.tab, keys.kind, keys.save))
	case modeDetail:
		if note, ok := m.current(); ok {
			title, body := renderNoteDetail(note)
			return renderPage(title, strings.TrimRight(body, "\n"),
				helpLine(keys.edit, keys.copy, keys.delete, keys.esc))
		}
	case modeConfirm:
		return renderPage("УДАЛЕНИЕ", m.confirm.View(), "")
	case modeError:
		return renderPage("ОШИБКА", m.overlay.View(), "")
	}

	var b strings.Builder
	b.WriteString("Пользователь: " + m.session.Login + "\n")
	b.WriteString(m.sync.View() + "\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.errMsg != "" || m.status != "" {
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("Загрузка списка...")
	} else {
		b.WriteString(renderNoteList(m.items, m.idx))
	}

	return renderPage(
		"ЗАМЕТКИ",
		strings.TrimRight(b.String(), "\n"),
		helpLine(keys.newNote, keys.sync, keys.enter, keys.edit, keys.delete, keys.copy, keys.up, keys.logout, keys.version),
	)
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		items, err := notes.GetAll(ctx)
		return notesLoadedMsg{notes: items, err: err}
	}
}

// cmdSync runs a user-initiated round: remote changes are always wanted and
// the shorter manual interval applies.
func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator
	interval := m.manualInterval

	return func() tea.Msg {
		result, err := coordinator.PerformSync(ctx, interval, true)
		return syncDoneMsg{result: result, err: err}
	}
}

// cmdWaitAutoSync delivers the next automatic round reported by the
// background worker.
func (m mainLoopModel) cmdWaitAutoSync() tea.Cmd {
	if m.autoSync == nil {
		return nil
	}
	ctx := m.ctx
	ch := m.autoSync

	return func() tea.Msg {
		select {
		case msg := <-ch:
			msg.auto = true
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

func (m mainLoopModel) cmdSave(note models.Note, created bool) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		var (
			saved models.Note
			err   error
		)
		if created {
			saved, err = notes.Create(ctx, note)
		} else {
			saved, err = notes.Update(ctx, note)
		}
		return noteSavedMsg{note: saved, created: created, err: err}
	}
}

func (m mainLoopModel) cmdDelete(uuid string) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		return noteDeletedMsg{err: notes.Delete(ctx, uuid)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyNote):
		return "Заметка пуста: нужен заголовок или текст"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Некорректные данные заметки"
	default:
		return err.Error()
	}
}
