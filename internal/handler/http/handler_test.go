package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, "key", log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	require.NotNil(t, h.hasher)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_NoHashKeyDisablesIntegrityCheck(t *testing.T) {
	h := NewHandler(&service.Services{}, "", logger.Nop())

	assert.Nil(t, h.hasher)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// TestInit_RegistersAllRoutes verifies every route answers with something
// other than 404 or 405. Protected routes answer 401 without a token, which
// still proves they exist.
func TestInit_RegistersAllRoutes(t *testing.T) {
	h, mocks := newTestHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/register"},
		{http.MethodPost, "/api/user/login"},
		{http.MethodGet, "/api/version"},
		{http.MethodPost, "/api/sync"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, []byte("{"), nil)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t, "")

	rec := serve(h.Init(), http.MethodGet, "/api/notes", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestInit_WrongMethodReturns404 verifies a known path with an unregistered
// method is hidden behind 404.
func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t, "")
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/sync"},
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/user/login"},
	} {
		rec := serve(router, tc.method, tc.path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, mocks := newTestHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)
	router := h.Init()

	rec := serve(router, http.MethodGet, "/api/version", nil, nil)
	assert.Len(t, rec.Header().Get(traceIDHeader), 36)

	rec = serve(router, http.MethodGet, "/api/version", nil, map[string]string{traceIDHeader: "trace-from-client"})
	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, mocks := newTestHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(any) string { panic("boom") })

	rec := serve(h.Init(), http.MethodGet, "/api/version", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
