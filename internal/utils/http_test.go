package utils

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "error dto", data: map[string]string{"code": "unauthenticated"}, status: http.StatusUnauthorized, wantBody: `{"code":"unauthenticated"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "empty list", data: []string{}, status: http.StatusOK, wantBody: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			require.NoError(t, WriteJSON(rec, tt.data, tt.status))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, math.Inf(1), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteJSONBody(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSONBody(rec, []byte(`{"notes":[]}`), http.StatusOK))
	assert.Equal(t, `{"notes":[]}`, rec.Body.String())

	err := WriteJSONBody(failingWriter{httptest.NewRecorder()}, []byte(`{}`), http.StatusOK)
	assert.ErrorContains(t, err, "broken pipe")
}
