package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/codec"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of the request body when a hash
// key is configured.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher signs sync bodies; nil when no hash key is configured.
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A non-empty appCfg.HashKey turns on the HashSHA256 body signature.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		adapter.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %s request: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: parse bearer token: %w", ErrMalformedResponse, err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// Reconcile implements [ServerAdapter]. The request is encoded with the sync
// payload codec and POSTed to POST /api/sync; the response body is decoded
// and validated with the same codec.
func (h *httpServerAdapter) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	body, err := codec.EncodeRequest(req)
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Reconcile").Msg("failed to encode sync request")
		return models.SyncResponse{}, err
	}

	request := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		request.SetHeader(HashHeader, h.hasher.SumHex(body))
	}

	resp, err := request.Post("/api/sync")
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Reconcile").Msg("sync request failed")
		return models.SyncResponse{}, fmt.Errorf("%w: sync request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Reconcile").Int("status", resp.StatusCode()).Msg("sync request rejected")
		return models.SyncResponse{}, err
	}

	syncResp, err := codec.DecodeResponse(resp.Body())
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.Reconcile").Msg("failed to decode sync response")
		return models.SyncResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return syncResp, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
