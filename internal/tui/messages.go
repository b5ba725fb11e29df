package tui

import (
	"github.com/MKhiriev/go-note-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login and register pages. A nil Err ends the
// sign-in flow with Session.
type LoginResult struct {
	Session models.Session
	Err     error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

// syncDoneMsg carries the outcome of a manual or automatic round.
type syncDoneMsg struct {
	result models.SyncResult
	err    error
	auto   bool
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	err error
}

type clearStatusMsg struct{}
