package service

import (
	"context"

	"github.com/MKhiriev/timi-sync/models"
)

// AuthService is the session authority: it registers accounts, issues
// tokens bound to the account's session epoch and validates them.
type AuthService interface {
	// Register consumes an invite code, creates the account together with
	// its empty sync document and returns a token for it.
	Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error)
	// Login checks credentials, invalidates every previously issued token
	// of the account and returns a fresh one.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	// Logout invalidates every token of the account.
	Logout(ctx context.Context, userID string) error
	// ChangePassword replaces the password and invalidates every token of
	// the account, including the one used for this call.
	ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error
	Me(ctx context.Context, userID string) (models.Profile, error)

	// Authenticate validates a bearer token against the account's current
	// status and session epoch.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	// EnsureAdmin creates the configured admin account when it is missing.
	EnsureAdmin(ctx context.Context) error
}

// SyncService reads and conditionally writes the per-user sync document.
type SyncService interface {
	Pull(ctx context.Context, userID string) (models.SyncDocument, error)
	// Push applies the present sections only if the stored version equals
	// push.Version. A stale push fails with a *VersionConflictError.
	Push(ctx context.Context, userID string, push models.SyncPush) (models.SyncPushResult, error)
}

// AdminService backs the admin console.
type AdminService interface {
	Stats(ctx context.Context) (models.Stats, error)
	ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	ToggleBan(ctx context.Context, userID string) (models.BanResult, error)
	ResetPassword(ctx context.Context, userID string, reset models.PasswordReset) error
	DeleteUser(ctx context.Context, userID string) error

	CreateInviteCodes(ctx context.Context, request models.CreateInviteCodesRequest) (models.CreateInviteCodesResponse, error)
	ListInviteCodes(ctx context.Context, page models.PageRequest) (models.InviteCodePage, error)
	DeleteInviteCode(ctx context.Context, id string) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// idGenerator issues identifiers for new rows.
type idGenerator interface {
	Generate() string
}
