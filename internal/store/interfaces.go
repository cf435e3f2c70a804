package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/timi-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their session epoch.
type UserRepository interface {
	// CreateUser inserts user and an empty sync document. When inviteCodeID
	// is non-nil, the invite code is consumed in the same transaction.
	CreateUser(ctx context.Context, user models.User, inviteCodeID *string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// IncrementSessionEpoch atomically bumps the session epoch and returns
	// the new value.
	IncrementSessionEpoch(ctx context.Context, id string) (int64, error)
	// UpdatePasswordHash stores a new hash and bumps the session epoch in
	// the same statement.
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) (int64, error)
	// ToggleBan flips the status of a non-admin user. The session epoch is
	// bumped only when the user becomes banned.
	ToggleBan(ctx context.Context, id string) (models.User, error)

	ListUsers(ctx context.Context, page models.PageRequest) ([]models.AdminUserView, int64, error)
	DeleteUser(ctx context.Context, id string) error
	Stats(ctx context.Context, since time.Time) (models.Stats, error)
}

// InviteCodeRepository manages registration invite codes.
type InviteCodeRepository interface {
	FindInviteCode(ctx context.Context, code string) (models.InviteCode, error)
	CreateInviteCodes(ctx context.Context, codes []models.InviteCode) ([]models.InviteCode, error)
	ListInviteCodes(ctx context.Context, page models.PageRequest) ([]models.InviteCodeView, int64, error)
	DeleteInviteCode(ctx context.Context, id string) error
}

// SyncRepository is the compare-and-swap store of per-user sync documents.
type SyncRepository interface {
	// GetDocument returns the stored document, or the empty default document
	// at version 0 when none exists.
	GetDocument(ctx context.Context, userID string) (models.SyncDocument, error)
	// PushDocument writes the given sections and increments the version,
	// only if the stored version equals expectedVersion. On mismatch it
	// returns a *VersionConflictError.
	PushDocument(ctx context.Context, userID string, sections map[string]json.RawMessage, expectedVersion int64) (int64, error)
}
