package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	"go.uber.org/mock/gomock"
)

// testServices holds the service mocks behind a test handler.
type testServices struct {
	auth      *mock.MockAuthService
	reconcile *mock.MockReconcileService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, hashKey string) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:      mock.NewMockAuthService(ctrl),
		reconcile: mock.NewMockReconcileService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:      mocks.auth,
		ReconcileService: mocks.reconcile,
		AppInfoService:   mocks.appInfo,
	}, hashKey, logger.Nop())

	return h, mocks
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// serve runs one request through router and returns the recorder.
func serve(router http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// validToken makes the auth mock accept "good-token" for userID.
func (s testServices) validToken(userID int64) {
	s.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{UserID: userID}, nil).AnyTimes()
}

var bearer = map[string]string{"Authorization": "Bearer good-token"}
