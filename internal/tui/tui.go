// Package tui implements the terminal user interface of the note sync
// client on top of Bubble Tea.
//
// It has two programs: the sign-in flow (menu, login and registration pages
// routed by [RootModel]) and the main loop with the note list, editor and
// sync status.
package tui

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// autoSyncBuffer bounds the automatic results queued while no main loop
// is reading them. Older results are dropped.
const autoSyncBuffer = 4

type TUI struct {
	services  *service.ClientServices
	workers   config.ClientWorkers
	buildInfo models.AppBuildInfo
	autoSync  chan syncDoneMsg

	logger *logger.Logger
}

func New(services *service.ClientServices, workers config.ClientWorkers, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		workers:   workers,
		buildInfo: buildInfo,
		autoSync:  make(chan syncDoneMsg, autoSyncBuffer),
		logger:    logger,
	}
}

// SyncObserver returns a callback for the background sync worker that
// forwards every automatic round to the main loop. It never blocks.
func (t *TUI) SyncObserver() func(models.SyncResult, error) {
	return func(result models.SyncResult, err error) {
		msg := syncDoneMsg{result: result, err: err}
		select {
		case t.autoSync <- msg:
		default:
			t.logger.Debug().Str("func", "TUI.SyncObserver").Msg("auto sync result dropped, queue is full")
		}
	}
}

// LoginFlow runs the sign-in program until the user signs in or quits.
// notice, when not empty, is shown on the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}
	if notice != "" {
		pages[pageMenu].Update(SessionEndedNotice{Reason: notice})
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.IsAuthenticated() {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the main program for session. logout reports whether the
// user asked to sign out, or the server rejected the session.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t, session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
