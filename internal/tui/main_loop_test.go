package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testManualInterval = 30 * time.Second

var sampleNotes = []models.Note{
	{ID: 1, UUID: "u1", Title: "groceries", Content: "milk\neggs", Type: models.NoteTypeList, Synced: true},
	{ID: 2, UUID: "u2", Content: "call mom"},
}

func newTestMainLoop(t *testing.T) (mainLoopModel, *mock.MockClientNoteService, *mock.MockSyncCoordinator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockClientNoteService(ctrl)
	coordinator := mock.NewMockSyncCoordinator(ctrl)

	m := mainLoopModel{
		ctx:            context.Background(),
		notes:          notes,
		coordinator:    coordinator,
		session:        models.Session{UserID: 1, Login: "alice", Token: "t", Verified: true},
		manualInterval: testManualInterval,
		sync:           newSyncModel(),
	}
	return m, notes, coordinator
}

// step feeds msg to m and returns the updated model.
func step(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(mainLoopModel)
	require.True(t, ok)
	return got, cmd
}

func loaded(t *testing.T, m mainLoopModel) mainLoopModel {
	t.Helper()
	notes := append([]models.Note(nil), sampleNotes...)
	m, _ = step(t, m, notesLoadedMsg{notes: notes})
	return m
}

// ── Loading ──────────────────────────────────────────────────────────────────

func TestMainLoop_NotesLoaded_ClampsSelection(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.idx = 5

	m = loaded(t, m)
	assert.Equal(t, 1, m.idx)
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "groceries")
	assert.Contains(t, m.View(), "call mom")

	m, _ = step(t, m, notesLoadedMsg{})
	assert.Equal(t, 0, m.idx)
	assert.Contains(t, m.View(), "Заметок нет")
}

func TestMainLoop_CmdLoadNotes(t *testing.T) {
	m, notes, _ := newTestMainLoop(t)
	notes.EXPECT().GetAll(gomock.Any()).Return(sampleNotes, nil)

	msg := m.cmdLoadNotes()()
	assert.Equal(t, notesLoadedMsg{notes: sampleNotes}, msg)
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestMainLoop_ManualSync(t *testing.T) {
	m, _, coordinator := newTestMainLoop(t)
	m = loaded(t, m)

	m, cmd := step(t, m, press("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.sync.running)

	// a second press while running is ignored
	_, again := step(t, m, press("s"))
	assert.Nil(t, again)

	cursor := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	coordinator.EXPECT().PerformSync(gomock.Any(), testManualInterval, true).
		Return(models.SyncResult{Outcome: models.SyncCompleted, Pushed: 2, Pulled: 1, Cursor: cursor}, nil)

	done := m.cmdSync()()
	m, cmd = step(t, m, done)

	assert.False(t, m.sync.running)
	assert.True(t, m.sync.ok)
	assert.Contains(t, m.sync.message, "отправлено 2, получено 1")
	assert.Equal(t, cursor, m.sync.cursor)
	assert.NotNil(t, cmd, "completed round reloads the list")
}

func TestMainLoop_Sync_TransientFailure(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.sync.running = true

	m, _ = step(t, m, syncDoneMsg{result: models.SyncResult{
		Outcome: models.SyncFailed,
		Err:     errors.New("dial tcp: connection refused"),
	}})

	assert.False(t, m.sync.ok)
	assert.Contains(t, m.sync.message, msgServerUnavailable)
	assert.Equal(t, modeList, m.mode)
}

func TestMainLoop_Sync_Unauthenticated_EndsSession(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m, _ = step(t, m, syncDoneMsg{err: service.ErrSyncUnauthenticated})
	require.Equal(t, modeError, m.mode)

	// other keys keep the overlay open
	m, _ = step(t, m, press("s"))
	require.Equal(t, modeError, m.mode)

	m, cmd := step(t, m, press("enter"))
	assert.True(t, m.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_AutoSync(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.sync.message = "previous"

	m, _ = step(t, m, syncDoneMsg{auto: true, result: models.SyncResult{Outcome: models.SyncSkippedThrottled}})
	assert.Equal(t, "previous", m.sync.message, "quiet skips keep the message")

	m, _ = step(t, m, syncDoneMsg{auto: true, result: models.SyncResult{Outcome: models.SyncCompleted}})
	assert.Contains(t, m.sync.message, "Автосинхронизация")
}

func TestMainLoop_CursorNeverMovesBack(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	later := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m, _ = step(t, m, syncDoneMsg{result: models.SyncResult{Outcome: models.SyncCompleted, Cursor: later}})
	m, _ = step(t, m, syncDoneMsg{result: models.SyncResult{Outcome: models.SyncFailed, Cursor: later.Add(-time.Hour)}})

	assert.Equal(t, later, m.sync.cursor)
}

func TestMainLoop_WaitAutoSync(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	assert.Nil(t, m.cmdWaitAutoSync())

	tui := New(nil, config.ClientWorkers{}, models.AppBuildInfo{}, logger.Nop())
	m.autoSync = tui.autoSync

	observe := tui.SyncObserver()
	observe(models.SyncResult{Outcome: models.SyncCompleted, Pulled: 3}, nil)

	msg, ok := m.cmdWaitAutoSync()().(syncDoneMsg)
	require.True(t, ok)
	assert.True(t, msg.auto)
	assert.Equal(t, 3, msg.result.Pulled)
}

func TestMainLoop_WaitAutoSync_StopsWithContext(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	ctx, cancel := context.WithCancel(context.Background())
	m.ctx = ctx
	m.autoSync = make(chan syncDoneMsg)
	cancel()

	assert.Nil(t, m.cmdWaitAutoSync()())
}

func TestTUI_SyncObserver_NeverBlocks(t *testing.T) {
	tui := New(nil, config.ClientWorkers{}, models.AppBuildInfo{}, logger.Nop())
	observe := tui.SyncObserver()

	done := make(chan struct{})
	go func() {
		for range autoSyncBuffer * 3 {
			observe(models.SyncResult{}, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("observer blocked on a full queue")
	}
	assert.Len(t, tui.autoSync, autoSyncBuffer)
}

// ── Editing ──────────────────────────────────────────────────────────────────

func TestMainLoop_CreateNote(t *testing.T) {
	m, notes, _ := newTestMainLoop(t)
	m = loaded(t, m)

	m, _ = step(t, m, press("a"))
	require.Equal(t, modeEdit, m.mode)
	assert.True(t, m.editor.isNew())

	m, _ = step(t, m, press("milk"))
	m, _ = step(t, m, press("q")) // typed, not quit
	require.Equal(t, modeEdit, m.mode)

	m, cmd := step(t, m, press("ctrl+s"))
	require.NotNil(t, cmd)
	assert.True(t, m.editor.saving)

	notes.EXPECT().Create(gomock.Any(), models.Note{Title: "milkq", Type: models.NoteTypeText}).
		Return(models.Note{UUID: "new", Title: "milkq"}, nil)

	m, cmd = step(t, m, cmd())
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Заметка добавлена", m.status)
	assert.NotNil(t, cmd)
}

func TestMainLoop_SaveEmpty_Rejected(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m, _ = step(t, m, press("a"))
	m, cmd := step(t, m, press("ctrl+s"))

	assert.Nil(t, cmd)
	assert.False(t, m.editor.saving)
	assert.NotEmpty(t, m.editor.errMsg)
}

func TestMainLoop_SaveFails_StaysInEditor(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m, _ = step(t, m, press("a"))
	m.editor.saving = true

	m, _ = step(t, m, noteSavedMsg{created: true, err: errors.New("database is locked")})
	assert.Equal(t, modeEdit, m.mode)
	assert.False(t, m.editor.saving)
	assert.Equal(t, "database is locked", m.editor.errMsg)
}

func TestMainLoop_EditNote_ToggleKind(t *testing.T) {
	m, notes, _ := newTestMainLoop(t)
	m = loaded(t, m)
	m.idx = 1

	m, _ = step(t, m, press("e"))
	require.Equal(t, modeEdit, m.mode)
	assert.False(t, m.editor.isNew())

	m, _ = step(t, m, press("ctrl+t"))
	m, cmd := step(t, m, press("ctrl+s"))
	require.NotNil(t, cmd)

	notes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, "u2", n.UUID)
			assert.Equal(t, models.NoteTypeList, n.Type)
			assert.Equal(t, "call mom", n.Content)
			return n, nil
		})

	m, _ = step(t, m, cmd())
	assert.Equal(t, "Заметка обновлена", m.status)
}

func TestMainLoop_EditCancel(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m = loaded(t, m)

	m, _ = step(t, m, press("e"))
	m, _ = step(t, m, press("esc"))
	assert.Equal(t, modeList, m.mode)
}

// ── Detail, delete, copy ─────────────────────────────────────────────────────

func TestMainLoop_Detail(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m = loaded(t, m)

	m, _ = step(t, m, press("enter"))
	require.Equal(t, modeDetail, m.mode)
	assert.Contains(t, m.View(), "• milk")
	assert.Contains(t, m.View(), "• eggs")

	m, _ = step(t, m, press("esc"))
	assert.Equal(t, modeList, m.mode)
}

func TestMainLoop_DeleteNeedsConfirmation(t *testing.T) {
	m, notes, _ := newTestMainLoop(t)
	m = loaded(t, m)

	m, _ = step(t, m, press("ctrl+d"))
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "groceries")

	m, cmd := step(t, m, press("n"))
	assert.Equal(t, modeList, m.mode)
	assert.Nil(t, cmd)

	m, _ = step(t, m, press("ctrl+d"))
	m, cmd = step(t, m, press("y"))
	require.NotNil(t, cmd)

	notes.EXPECT().Delete(gomock.Any(), "u1").Return(nil)
	m, _ = step(t, m, cmd())
	assert.Equal(t, "Заметка удалена", m.status)
}

func TestMainLoop_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, _, _ := newTestMainLoop(t)
	m = loaded(t, m)

	m, _ = step(t, m, press("c"))
	assert.Equal(t, "milk\neggs", copied)
	assert.Equal(t, "Скопировано", m.status)

	writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	m, _ = step(t, m, press("c"))
	assert.Contains(t, m.errMsg, "no clipboard utility")
}

func TestMainLoop_EmptyList(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	for _, k := range []string{"enter", "e", "ctrl+d", "c"} {
		m, _ = step(t, m, press(k))
		assert.Equal(t, modeList, m.mode, k)
	}
}

// ── Exit ─────────────────────────────────────────────────────────────────────

func TestMainLoop_Logout(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m, cmd := step(t, m, press("l"))
	assert.True(t, m.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_Quit(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m, cmd := step(t, m, press("q"))
	assert.False(t, m.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_BuildInfo(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.buildInfo = models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123")

	m, _ = step(t, m, press("v"))
	assert.Contains(t, m.View(), "abc123")

	m, _ = step(t, m, press("esc"))
	assert.NotContains(t, m.View(), "abc123")
}
