package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/timi-sync/internal/service"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminMocks(t *testing.T) *testServices {
	mocks := newTestServices(t)
	mocks.authenticateAs(testAdmin)
	return mocks
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	mocks := newTestServices(t)
	mocks.authenticateAs(testUser)

	rec := serve(t, newTestRouter(t, mocks), http.MethodGet, "/api/admin/stats", "", testBearer)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, CodeForbidden, decodeError(t, rec).Code)
}

func TestAdminStats(t *testing.T) {
	mocks := newAdminMocks(t)
	mocks.admin.statsFn = func(context.Context) (models.Stats, error) {
		return models.Stats{TotalUsers: 10, ActiveUsers: 9, BannedUsers: 1, TotalCodes: 12, UsedCodes: 9, TodayRegistered: 2}, nil
	}

	rec := serve(t, newTestRouter(t, mocks), http.MethodGet, "/api/admin/stats", "", testBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"totalUsers":10,"activeUsers":9,"bannedUsers":1,"totalCodes":12,"usedCodes":9,"todayRegistered":2}`,
		rec.Body.String())
}

func TestAdminListUsers_ParsesPagination(t *testing.T) {
	tests := []struct {
		query string
		want  models.PageRequest
	}{
		{query: "", want: models.PageRequest{Page: 1, Limit: 20}},
		{query: "?page=3&limit=10&search=%20al%20", want: models.PageRequest{Page: 3, Limit: 10, Search: "al"}},
		{query: "?page=abc&limit=500", want: models.PageRequest{Page: 1, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			mocks := newAdminMocks(t)
			mocks.admin.listUsersFn = func(_ context.Context, page models.PageRequest) (models.UserPage, error) {
				assert.Equal(t, tt.want, page)
				return models.UserPage{Users: []models.AdminUserView{}, Page: page.Page, Limit: page.Limit}, nil
			}

			rec := serve(t, newTestRouter(t, mocks), http.MethodGet, "/api/admin/users"+tt.query, "", testBearer)

			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestAdminToggleBan(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "banned", wantStatus: http.StatusOK},
		{name: "admin target", err: service.ErrForbiddenOperation, wantStatus: http.StatusForbidden, wantCode: CodeForbidden},
		{name: "unknown user", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newAdminMocks(t)
			mocks.admin.toggleBanFn = func(_ context.Context, userID string) (models.BanResult, error) {
				assert.Equal(t, "user-7", userID)
				return models.BanResult{ID: userID, Status: models.StatusBanned}, tt.err
			}

			rec := serve(t, newTestRouter(t, mocks), http.MethodPatch, "/api/admin/users/user-7/ban", "", testBearer)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			assert.JSONEq(t, `{"id":"user-7","status":"banned"}`, rec.Body.String())
		})
	}
}

func TestAdminResetPassword(t *testing.T) {
	mocks := newAdminMocks(t)
	mocks.admin.resetPasswordFn = func(_ context.Context, userID string, reset models.PasswordReset) error {
		assert.Equal(t, "user-7", userID)
		assert.Equal(t, "fresh-secret", reset.NewPassword)
		return nil
	}

	rec := serve(t, newTestRouter(t, mocks), http.MethodPatch, "/api/admin/users/user-7/reset-password", `{"newPassword":"fresh-secret"}`, testBearer)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminDeleteUser(t *testing.T) {
	mocks := newAdminMocks(t)
	mocks.admin.deleteUserFn = func(_ context.Context, userID string) error {
		assert.Equal(t, "user-7", userID)
		return nil
	}

	rec := serve(t, newTestRouter(t, mocks), http.MethodDelete, "/api/admin/users/user-7", "", testBearer)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminCreateInviteCodes(t *testing.T) {
	mocks := newAdminMocks(t)
	expiresAt := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	mocks.admin.createInviteCodesFn = func(_ context.Context, request models.CreateInviteCodesRequest) (models.CreateInviteCodesResponse, error) {
		assert.Equal(t, 2, request.Count)
		require.NotNil(t, request.ExpiresAt)
		assert.True(t, request.ExpiresAt.Equal(expiresAt))
		return models.CreateInviteCodesResponse{Codes: []models.InviteCode{{ID: "i-1", Code: "AB12CD34"}, {ID: "i-2", Code: "EF56AB78"}}}, nil
	}

	rec := serve(t, newTestRouter(t, mocks), http.MethodPost, "/api/admin/invite-codes", `{"count":2,"expiresAt":"2026-12-31T00:00:00Z"}`, testBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.CreateInviteCodesResponse
	decodeInto(t, rec, &got)
	assert.Len(t, got.Codes, 2)
}

func TestAdminListInviteCodes(t *testing.T) {
	mocks := newAdminMocks(t)
	usedBy := "alice"
	mocks.admin.listInviteCodesFn = func(_ context.Context, page models.PageRequest) (models.InviteCodePage, error) {
		return models.InviteCodePage{
			Codes: []models.InviteCodeView{{ID: "i-1", Code: "AB12CD34", Used: true, UsedByUsername: &usedBy}},
			Total: 1, Page: page.Page, Limit: page.Limit, TotalPages: 1,
		}, nil
	}

	rec := serve(t, newTestRouter(t, mocks), http.MethodGet, "/api/admin/invite-codes", "", testBearer)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.InviteCodePage
	decodeInto(t, rec, &got)
	require.Len(t, got.Codes, 1)
	assert.Equal(t, "alice", *got.Codes[0].UsedByUsername)
}

func TestAdminDeleteInviteCode_Missing(t *testing.T) {
	mocks := newAdminMocks(t)
	mocks.admin.deleteInviteCodeFn = func(_ context.Context, id string) error {
		assert.Equal(t, "i-9", id)
		return service.ErrNotFound
	}

	rec := serve(t, newTestRouter(t, mocks), http.MethodDelete, "/api/admin/invite-codes/i-9", "", testBearer)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeNotFound, decodeError(t, rec).Code)
}
