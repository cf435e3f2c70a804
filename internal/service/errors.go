package service

import (
	"errors"

	"github.com/MKhiriev/timi-sync/internal/store"
)

// Errors returned by the services. Handlers map each of them to a status
// code and a machine-readable error code.
var (
	// ErrValidation wraps a validators error describing malformed input.
	ErrValidation = errors.New("validation error")

	ErrInvalidInviteCode = errors.New("invalid invite code")
	ErrInviteCodeUsed    = errors.New("invite code already used")
	ErrInviteCodeExpired = errors.New("invite code expired")
	ErrUsernameTaken     = errors.New("username already exists")

	// ErrMissingVersion is returned by a push without a base version.
	ErrMissingVersion = errors.New("version is required")

	// ErrBadCredentials is returned by login for an unknown username or a
	// wrong password. The two cases are indistinguishable to the caller.
	ErrBadCredentials = errors.New("wrong username or password")
	// ErrWrongPassword is returned by a password change with a wrong old
	// password.
	ErrWrongPassword = errors.New("wrong old password")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token is expired")
	// ErrUserNotFound is returned when a structurally valid token refers to
	// an account that no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionSuperseded is returned when the token's session epoch is
	// behind the account's: a later login, logout, password change or ban
	// has invalidated it.
	ErrSessionSuperseded = errors.New("session superseded by a newer login")
	ErrAccountBanned     = errors.New("account is banned")

	// ErrForbiddenOperation is returned for role restrictions and for
	// attempts to ban or delete an admin account.
	ErrForbiddenOperation = errors.New("operation forbidden")
	ErrNotFound           = errors.New("not found")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrVersionConflict is matched by every rejected push. The concrete error
// is a *VersionConflictError carrying the stored version.
var ErrVersionConflict = store.ErrVersionConflict

// VersionConflictError reports the version currently stored on the server.
type VersionConflictError = store.VersionConflictError
