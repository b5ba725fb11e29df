package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "1.4.2"},
		{name: "with build metadata", version: "1.4.2+commit.abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, "")
			mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(h.Init(), http.MethodGet, "/api/version", nil, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestGetServerVersion_Gzipped(t *testing.T) {
	h, mocks := newTestHandler(t, "")
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("2.0.0")

	rec := serve(h.Init(), http.MethodGet, "/api/version", nil, map[string]string{"Accept-Encoding": "gzip"})

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "2.0.0", gunzip(t, rec.Body.Bytes()))
}
