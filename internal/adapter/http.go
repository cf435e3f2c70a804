package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpSyncClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncClient builds a [SyncClient] for the server at address. A bare
// "host:port" is treated as http. A zero timeout disables the per-request
// limit.
func NewHTTPSyncClient(address string, timeout time.Duration, logger *logger.Logger) (SyncClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpSyncClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

func (h *httpSyncClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpSyncClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpSyncClient) Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error) {
	return h.authenticate(ctx, "register", "/api/auth/register", registration)
}

func (h *httpSyncClient) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "login", "/api/auth/login", credentials)
}

func (h *httpSyncClient) authenticate(ctx context.Context, op, path string, body any) (models.AuthResponse, error) {
	var response models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&response).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if response.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: server returned no token", op)
	}

	h.SetToken(response.Token)
	h.logger.Debug().Str("username", response.User.Username).Msgf("%s succeeded", op)
	return response, nil
}

// Logout forgets the token even when the server call fails; a rejected
// token is useless anyway.
func (h *httpSyncClient) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpSyncClient) Me(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/auth/me")
	if err != nil {
		return models.Profile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (h *httpSyncClient) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	resp, err := h.authedRequest(ctx).
		SetBody(change).
		Post("/api/auth/change-password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpSyncClient) Pull(ctx context.Context) (models.SyncDocument, error) {
	var document models.SyncDocument

	resp, err := h.authedRequest(ctx).
		SetResult(&document).
		Get("/api/sync")
	if err != nil {
		return models.SyncDocument{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncDocument{}, err
	}
	return document, nil
}

func (h *httpSyncClient) Push(ctx context.Context, push models.SyncPush) (models.SyncPushResult, error) {
	var result models.SyncPushResult

	resp, err := h.authedRequest(ctx).
		SetBody(push).
		SetResult(&result).
		Put("/api/sync")
	if err != nil {
		return models.SyncPushResult{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncPushResult{}, err
	}

	h.logger.Debug().Int64("version", result.Version).Msg("push accepted")
	return result, nil
}

func (h *httpSyncClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
