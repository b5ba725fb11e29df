package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/codec"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// ── clock ────────────────────────────────────────────────────────────────────

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// ── authoritative store ──────────────────────────────────────────────────────

// memNoteStore is an in-memory store.NoteRepository. A round works on a copy
// of the user's data that replaces the original only when fn succeeds.
type memNoteStore struct {
	mu    sync.Mutex
	clock map[int64]time.Time
	notes map[int64]map[string]models.RemoteNote
	tombs map[int64]map[string]models.Tombstone

	// failWith makes the named RoundTx method fail.
	failWith map[string]error
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{
		clock:    make(map[int64]time.Time),
		notes:    make(map[int64]map[string]models.RemoteNote),
		tombs:    make(map[int64]map[string]models.Tombstone),
		failWith: make(map[string]error),
	}
}

func (m *memNoteStore) RunRound(ctx context.Context, userID int64, candidate time.Time, fn store.RoundFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp := models.TruncateStamp(candidate)
	if last, ok := m.clock[userID]; ok && !stamp.After(last) {
		stamp = last.Add(time.Millisecond)
	}

	tx := &memRoundTx{
		store:  m,
		userID: userID,
		stamp:  stamp,
		notes:  maps.Clone(m.notes[userID]),
		tombs:  maps.Clone(m.tombs[userID]),
	}
	if tx.notes == nil {
		tx.notes = make(map[string]models.RemoteNote)
	}
	if tx.tombs == nil {
		tx.tombs = make(map[string]models.Tombstone)
	}

	if err := fn(ctx, tx, stamp); err != nil {
		return err
	}

	m.notes[userID] = tx.notes
	m.tombs[userID] = tx.tombs
	m.clock[userID] = stamp
	return nil
}

func (m *memNoteStore) note(userID int64, uuid string) (models.RemoteNote, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[userID][uuid]
	return n, ok
}

func (m *memNoteStore) tombstone(userID int64, uuid string) (models.Tombstone, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tombs[userID][uuid]
	return t, ok
}

func (m *memNoteStore) count(userID int64) (notes, tombs int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes[userID]), len(m.tombs[userID])
}

type memRoundTx struct {
	store  *memNoteStore
	userID int64
	stamp  time.Time
	notes  map[string]models.RemoteNote
	tombs  map[string]models.Tombstone
}

func (t *memRoundTx) UpsertNotes(_ context.Context, notes []models.RemoteNote) error {
	if err := t.store.failWith["UpsertNotes"]; err != nil {
		return err
	}
	for _, n := range notes {
		n.UserID = t.userID
		n.SyncedAt = t.stamp
		t.notes[n.UUID] = n
		delete(t.tombs, n.UUID)
	}
	return nil
}

func (t *memRoundTx) DeleteNotes(_ context.Context, uuids []string) error {
	if err := t.store.failWith["DeleteNotes"]; err != nil {
		return err
	}
	for _, u := range uuids {
		delete(t.notes, u)
		t.tombs[u] = models.Tombstone{UserID: t.userID, UUID: u, DeletedAt: t.stamp}
	}
	return nil
}

func (t *memRoundTx) ChangedNotesSince(_ context.Context, since time.Time, exclude []string) ([]models.RemoteNote, error) {
	if err := t.store.failWith["ChangedNotesSince"]; err != nil {
		return nil, err
	}
	out := make([]models.RemoteNote, 0)
	for _, n := range t.notes {
		if n.SyncedAt.After(since) && !slices.Contains(exclude, n.UUID) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SyncedAt.Equal(out[j].SyncedAt) {
			return out[i].SyncedAt.Before(out[j].SyncedAt)
		}
		return out[i].UUID < out[j].UUID
	})
	return out, nil
}

func (t *memRoundTx) TombstonesSince(_ context.Context, since time.Time, exclude []string) ([]models.Tombstone, error) {
	if err := t.store.failWith["TombstonesSince"]; err != nil {
		return nil, err
	}
	out := make([]models.Tombstone, 0)
	for _, tb := range t.tombs {
		if tb.DeletedAt.After(since) && !slices.Contains(exclude, tb.UUID) {
			out = append(out, tb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UUID < out[j].UUID })
	return out, nil
}

// ── local store ──────────────────────────────────────────────────────────────

// memLocalStore is an in-memory store.LocalNoteRepository with the same
// transactional behavior as the SQLite one.
type memLocalStore struct {
	mu          sync.Mutex
	nextID      int64
	notes       map[string]models.Note
	pending     map[string]time.Time
	cursor      time.Time
	lastSuccess time.Time

	// failApply makes the named LocalSyncTx method fail.
	failApply map[string]error
}

func newMemLocalStore() *memLocalStore {
	return &memLocalStore{
		notes:     make(map[string]models.Note),
		pending:   make(map[string]time.Time),
		cursor:    models.ZeroCursor,
		failApply: make(map[string]error),
	}
}

func (m *memLocalStore) SaveNote(_ context.Context, note models.Note) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.notes[note.UUID]; ok {
		note.ID = current.ID
		note.Revision = current.Revision + 1
	} else {
		m.nextID++
		note.ID = m.nextID
		note.Revision = 1
	}
	note.Synced = false
	m.notes[note.UUID] = note
	delete(m.pending, note.UUID)
	return note, nil
}

func (m *memLocalStore) GetNote(_ context.Context, uuid string) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[uuid]
	if !ok {
		return models.Note{}, store.ErrNoteNotFound
	}
	return n, nil
}

func (m *memLocalStore) GetNotes(_ context.Context) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(models.Note) bool { return true }), nil
}

func (m *memLocalStore) DeleteNote(_ context.Context, uuid string, deletedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.notes[uuid]; !ok {
		return store.ErrNoteNotFound
	}
	delete(m.notes, uuid)
	m.pending[uuid] = deletedAt
	return nil
}

func (m *memLocalStore) GetUnsyncedNotes(_ context.Context) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(n models.Note) bool { return !n.Synced }), nil
}

func (m *memLocalStore) GetUnsyncedDeletionUUIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uuids := slices.Collect(maps.Keys(m.pending))
	slices.Sort(uuids)
	return uuids, nil
}

func (m *memLocalStore) GetCursor(_ context.Context) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor, nil
}

func (m *memLocalStore) GetLastSuccess(_ context.Context) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSuccess, nil
}

func (m *memLocalStore) ApplySyncRound(_ context.Context, fn func(tx store.LocalSyncTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memLocalTx{
		store:       m,
		nextID:      m.nextID,
		notes:       maps.Clone(m.notes),
		pending:     maps.Clone(m.pending),
		cursor:      m.cursor,
		lastSuccess: m.lastSuccess,
	}
	if err := fn(tx); err != nil {
		return err
	}

	m.nextID = tx.nextID
	m.notes = tx.notes
	m.pending = tx.pending
	m.cursor = tx.cursor
	m.lastSuccess = tx.lastSuccess
	return nil
}

func (m *memLocalStore) sorted(keep func(models.Note) bool) []models.Note {
	out := make([]models.Note, 0, len(m.notes))
	for _, n := range m.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memLocalTx struct {
	store       *memLocalStore
	nextID      int64
	notes       map[string]models.Note
	pending     map[string]time.Time
	cursor      time.Time
	lastSuccess time.Time
}

func (t *memLocalTx) UpsertByUUID(_ context.Context, notes []models.Note) error {
	if err := t.store.failApply["UpsertByUUID"]; err != nil {
		return err
	}
	for _, n := range notes {
		if _, deleting := t.pending[n.UUID]; deleting {
			continue
		}
		current, ok := t.notes[n.UUID]
		switch {
		case ok && !current.Synced:
			continue
		case ok:
			n.ID = current.ID
			n.Revision = current.Revision
		default:
			t.nextID++
			n.ID = t.nextID
			n.Revision = 0
		}
		n.Synced = true
		t.notes[n.UUID] = n
	}
	return nil
}

func (t *memLocalTx) DeleteByUUID(_ context.Context, uuids []string) error {
	if err := t.store.failApply["DeleteByUUID"]; err != nil {
		return err
	}
	for _, u := range uuids {
		if n, ok := t.notes[u]; ok && n.Synced {
			delete(t.notes, u)
		}
		delete(t.pending, u)
	}
	return nil
}

func (t *memLocalTx) MarkSynced(_ context.Context, pushed []models.Note, deletionUUIDs []string) error {
	if err := t.store.failApply["MarkSynced"]; err != nil {
		return err
	}
	for _, p := range pushed {
		if n, ok := t.notes[p.UUID]; ok && n.Revision == p.Revision {
			n.Synced = true
			t.notes[p.UUID] = n
		}
	}
	for _, u := range deletionUUIDs {
		delete(t.pending, u)
	}
	return nil
}

func (t *memLocalTx) SetCursor(_ context.Context, cursor time.Time) error {
	if err := t.store.failApply["SetCursor"]; err != nil {
		return err
	}
	if cursor.After(t.cursor) {
		t.cursor = cursor
	}
	return nil
}

func (t *memLocalTx) SetLastSuccess(_ context.Context, at time.Time) error {
	t.lastSuccess = at
	return nil
}

// ── transport ────────────────────────────────────────────────────────────────

// loopbackAdapter serves Reconcile with a ReconcileService in process. The
// request and response still go through the wire codec.
type loopbackAdapter struct {
	server ReconcileService
	userID int64

	mu    sync.Mutex
	token string
	calls int
	fail  error
}

func (l *loopbackAdapter) SetToken(token string) {
	l.mu.Lock()
	l.token = token
	l.mu.Unlock()
}

func (l *loopbackAdapter) Token() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.token
}

func (l *loopbackAdapter) Register(context.Context, models.User) (models.User, error) {
	return models.User{}, errors.New("not supported")
}

func (l *loopbackAdapter) Login(context.Context, models.User) (models.User, error) {
	return models.User{}, errors.New("not supported")
}

func (l *loopbackAdapter) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	l.mu.Lock()
	l.calls++
	fail := l.fail
	l.mu.Unlock()
	if fail != nil {
		return models.SyncResponse{}, fail
	}

	payload, err := codec.EncodeRequest(req)
	if err != nil {
		return models.SyncResponse{}, err
	}

	ctx = utils.WithUserID(ctx, l.userID)
	resp, err := l.server.Reconcile(ctx, payload)
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return models.SyncResponse{}, adapter.ErrUnauthorized
	case errors.Is(err, ErrInvalidArgument):
		return models.SyncResponse{}, adapter.ErrBadRequest
	case err != nil:
		return models.SyncResponse{}, adapter.ErrInternalServerError
	}

	raw, err := codec.EncodeResponse(resp)
	if err != nil {
		return models.SyncResponse{}, err
	}
	return codec.DecodeResponse(raw)
}

func (l *loopbackAdapter) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// ── identity and network ─────────────────────────────────────────────────────

type staticSession struct {
	session models.Session
}

func (s staticSession) Session() models.Session { return s.session }

func verifiedSession(userID int64) staticSession {
	return staticSession{session: models.Session{UserID: userID, Login: "alice", Token: "token", Verified: true}}
}

type staticNetwork bool

func (n staticNetwork) IsMetered(context.Context) bool { return bool(n) }
