// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ── Sync API router ──────────────────────────────────────────────────────────

func TestCheckHTTPMethod_SyncRoutes(t *testing.T) {
	h, mocks := newTestHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()
	router := h.Init()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/sync", wantStatus: http.StatusNotFound},
		{method: http.MethodPut, path: "/api/sync", wantStatus: http.StatusNotFound},
		{method: http.MethodDelete, path: "/api/sync", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/user/login", wantStatus: http.StatusNotFound},
		{method: http.MethodPatch, path: "/api/user/register", wantStatus: http.StatusNotFound},
		{method: http.MethodPost, path: "/api/version", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/notes", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path, nil, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

// ── Bare router ──────────────────────────────────────────────────────────────

func TestCheckHTTPMethod_RegisteredMethodPassesThrough(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/sync", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("reconciled"))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/sync", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "reconciled", rec.Body.String())

	rec = httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodPost, "/api/sync", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/api/sync", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
