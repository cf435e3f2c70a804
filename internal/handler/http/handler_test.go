package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/service"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case; an unset field fails the test when called.
type mockAuthService struct {
	t *testing.T

	registerFn       func(ctx context.Context, registration models.Registration) (models.AuthResponse, error)
	loginFn          func(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	logoutFn         func(ctx context.Context, userID string) error
	changePasswordFn func(ctx context.Context, userID string, change models.PasswordChange) error
	meFn             func(ctx context.Context, userID string) (models.Profile, error)
	authenticateFn   func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error) {
	m.require(m.registerFn != nil, "Register")
	return m.registerFn(ctx, registration)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	m.require(m.loginFn != nil, "Login")
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Logout(ctx context.Context, userID string) error {
	m.require(m.logoutFn != nil, "Logout")
	return m.logoutFn(ctx, userID)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	m.require(m.changePasswordFn != nil, "ChangePassword")
	return m.changePasswordFn(ctx, userID, change)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (models.Profile, error) {
	m.require(m.meFn != nil, "Me")
	return m.meFn(ctx, userID)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	m.require(m.authenticateFn != nil, "Authenticate")
	return m.authenticateFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureAdmin(context.Context) error { return nil }

func (m *mockAuthService) require(ok bool, method string) {
	if !ok {
		m.t.Fatalf("unexpected call to AuthService.%s", method)
	}
}

type mockSyncService struct {
	pullFn func(ctx context.Context, userID string) (models.SyncDocument, error)
	pushFn func(ctx context.Context, userID string, push models.SyncPush) (models.SyncPushResult, error)
}

func (m *mockSyncService) Pull(ctx context.Context, userID string) (models.SyncDocument, error) {
	return m.pullFn(ctx, userID)
}

func (m *mockSyncService) Push(ctx context.Context, userID string, push models.SyncPush) (models.SyncPushResult, error) {
	return m.pushFn(ctx, userID, push)
}

type mockAdminService struct {
	statsFn             func(ctx context.Context) (models.Stats, error)
	listUsersFn         func(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	toggleBanFn         func(ctx context.Context, userID string) (models.BanResult, error)
	resetPasswordFn     func(ctx context.Context, userID string, reset models.PasswordReset) error
	deleteUserFn        func(ctx context.Context, userID string) error
	createInviteCodesFn func(ctx context.Context, request models.CreateInviteCodesRequest) (models.CreateInviteCodesResponse, error)
	listInviteCodesFn   func(ctx context.Context, page models.PageRequest) (models.InviteCodePage, error)
	deleteInviteCodeFn  func(ctx context.Context, id string) error
}

func (m *mockAdminService) Stats(ctx context.Context) (models.Stats, error) {
	return m.statsFn(ctx)
}

func (m *mockAdminService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	return m.listUsersFn(ctx, page)
}

func (m *mockAdminService) ToggleBan(ctx context.Context, userID string) (models.BanResult, error) {
	return m.toggleBanFn(ctx, userID)
}

func (m *mockAdminService) ResetPassword(ctx context.Context, userID string, reset models.PasswordReset) error {
	return m.resetPasswordFn(ctx, userID, reset)
}

func (m *mockAdminService) DeleteUser(ctx context.Context, userID string) error {
	return m.deleteUserFn(ctx, userID)
}

func (m *mockAdminService) CreateInviteCodes(ctx context.Context, request models.CreateInviteCodesRequest) (models.CreateInviteCodesResponse, error) {
	return m.createInviteCodesFn(ctx, request)
}

func (m *mockAdminService) ListInviteCodes(ctx context.Context, page models.PageRequest) (models.InviteCodePage, error) {
	return m.listInviteCodesFn(ctx, page)
}

func (m *mockAdminService) DeleteInviteCode(ctx context.Context, id string) error {
	return m.deleteInviteCodeFn(ctx, id)
}

type mockAppInfoService struct {
	info models.BuildInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.info.Version }

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.BuildInfo { return m.info }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testBearer = "Bearer good-token"

var (
	testUser  = models.User{ID: "user-1", Username: "alice", Role: models.RoleUser, Status: models.StatusActive}
	testAdmin = models.User{ID: "admin-1", Username: "admin", Role: models.RoleAdmin, Status: models.StatusActive}
)

// testServices is the set of mocks behind a test router.
type testServices struct {
	auth  *mockAuthService
	sync  *mockSyncService
	admin *mockAdminService
}

// authenticateAs makes "Bearer good-token" resolve to user.
func (s *testServices) authenticateAs(user models.User) {
	s.auth.authenticateFn = func(_ context.Context, token string) (models.User, error) {
		if token != "good-token" {
			return models.User{}, service.ErrInvalidToken
		}
		return user, nil
	}
}

func newTestServices(t *testing.T) *testServices {
	return &testServices{
		auth:  &mockAuthService{t: t},
		sync:  &mockSyncService{},
		admin: &mockAdminService{},
	}
}

func newTestHandler(t *testing.T, mocks *testServices, cfg config.Server) *Handler {
	t.Helper()
	services := &service.Services{
		AuthService:    mocks.auth,
		SyncService:    mocks.sync,
		AdminService:   mocks.admin,
		AppInfoService: &mockAppInfoService{info: models.BuildInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"}},
	}
	return NewHandler(services, metrics.New(), cfg, logger.Nop())
}

func configWithBodyLimit(limit int64) config.Server {
	return config.Server{MaxBodyBytes: limit, RequestTimeout: 5 * time.Second}
}

// newTestRouter returns the full router with default limits.
func newTestRouter(t *testing.T, mocks *testServices) http.Handler {
	t.Helper()
	return newTestHandler(t, mocks, configWithBodyLimit(1<<20)).Init()
}

// serve runs one request through handler. A non-empty bearer is sent as the
// Authorization header.
func serve(t *testing.T, handler http.Handler, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}
