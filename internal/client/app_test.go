package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type loginStep struct {
	session models.Session
	err     error
}

type mainStep struct {
	logout bool
	err    error
}

// scriptedUI replays prepared answers and records what it was shown.
type scriptedUI struct {
	logins []loginStep
	mains  []mainStep

	notices  []string
	sessions []models.Session
	running  func() bool
}

func (u *scriptedUI) LoginFlow(_ context.Context, notice string) (models.Session, error) {
	u.notices = append(u.notices, notice)
	step := u.logins[0]
	u.logins = u.logins[1:]
	return step.session, step.err
}

func (u *scriptedUI) MainLoop(_ context.Context, session models.Session) (bool, error) {
	u.sessions = append(u.sessions, session)
	if u.running != nil && !u.running() {
		return false, errors.New("workers are not running")
	}
	step := u.mains[0]
	u.mains = u.mains[1:]
	return step.logout, step.err
}

type countingWorker struct {
	runs, stops int
}

func (w *countingWorker) Run(context.Context) { w.runs++ }
func (w *countingWorker) Stop()               { w.stops++ }
func (w *countingWorker) running() bool       { return w.runs > w.stops }

var (
	alice = models.Session{UserID: 1, Login: "alice", Token: "a", Verified: true}
	bob   = models.Session{UserID: 2, Login: "bob", Token: "b", Verified: true}
)

func newTestApp(t *testing.T, ui *scriptedUI) (*App, *mock.MockClientAuthService, *countingWorker) {
	t.Helper()
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	worker := &countingWorker{}
	ui.running = worker.running
	return NewApp(auth, ui, worker, logger.Nop()), auth, worker
}

func TestApp_Run_RestoredSession(t *testing.T) {
	ui := &scriptedUI{mains: []mainStep{{}}}
	app, auth, worker := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(alice, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, ui.notices, "no login flow for a restored session")
	assert.Equal(t, []models.Session{alice}, ui.sessions)
	assert.Equal(t, 1, worker.runs)
	assert.Equal(t, 1, worker.stops)
}

func TestApp_Run_LoginFlowWhenNotSignedIn(t *testing.T) {
	ui := &scriptedUI{
		logins: []loginStep{{session: alice}},
		mains:  []mainStep{{}},
	}
	app, auth, _ := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotSignedIn)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{""}, ui.notices)
	assert.Equal(t, []models.Session{alice}, ui.sessions)
}

func TestApp_Run_UserQuitsLogin(t *testing.T) {
	ui := &scriptedUI{logins: []loginStep{{err: tui.ErrUserQuit}}}
	app, auth, worker := newTestApp(t, ui)

	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotSignedIn)

	require.NoError(t, app.Run(context.Background()))
	assert.Zero(t, worker.runs)
}

func TestApp_Run_LogoutThenSwitchUser(t *testing.T) {
	ui := &scriptedUI{
		logins: []loginStep{{session: bob}},
		mains:  []mainStep{{logout: true}, {}},
	}
	app, auth, worker := newTestApp(t, ui)

	gomock.InOrder(
		auth.EXPECT().RestoreSession(gomock.Any()).Return(alice, nil),
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{noticeSignedOut}, ui.notices)
	assert.Equal(t, []models.Session{alice, bob}, ui.sessions)
	assert.Equal(t, 2, worker.runs)
	assert.Equal(t, 2, worker.stops)
}

func TestApp_Run_Errors(t *testing.T) {
	storeErr := errors.New("database is locked")
	uiErr := errors.New("terminal lost")

	t.Run("restore fails", func(t *testing.T) {
		app, auth, _ := newTestApp(t, &scriptedUI{})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, storeErr)

		assert.ErrorIs(t, app.Run(context.Background()), storeErr)
	})

	t.Run("login flow fails", func(t *testing.T) {
		app, auth, _ := newTestApp(t, &scriptedUI{logins: []loginStep{{err: uiErr}}})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotSignedIn)

		assert.ErrorIs(t, app.Run(context.Background()), uiErr)
	})

	t.Run("main loop fails", func(t *testing.T) {
		app, auth, worker := newTestApp(t, &scriptedUI{mains: []mainStep{{err: uiErr}}})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(alice, nil)

		assert.ErrorIs(t, app.Run(context.Background()), uiErr)
		assert.Equal(t, 1, worker.stops)
	})

	t.Run("logout fails", func(t *testing.T) {
		app, auth, _ := newTestApp(t, &scriptedUI{mains: []mainStep{{logout: true}}})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(alice, nil)
		auth.EXPECT().Logout(gomock.Any()).Return(storeErr)

		assert.ErrorIs(t, app.Run(context.Background()), storeErr)
	})
}
