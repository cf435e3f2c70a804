// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client for the timi-sync HTTP API.
//
// [SyncClient] keeps the bearer token of the current session and attaches it
// to every authenticated call. Server failures are mapped to the sentinel
// errors in errors.go so callers can branch with [errors.Is]; a lost race on
// push surfaces as [*VersionConflictError] carrying the server's version.
package adapter

import (
	"context"

	"github.com/MKhiriev/timi-sync/models"
)

// SyncClient defines the calls a timi client makes against the server.
type SyncClient interface {
	// SetToken replaces the bearer token used for authenticated calls.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string

	// Register creates an account with an invite code and stores the issued
	// token.
	Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error)

	// Login authenticates with username and password and stores the issued
	// token. Any session held elsewhere is superseded.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Logout ends the current session on the server and forgets the token.
	Logout(ctx context.Context) error

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.Profile, error)

	// ChangePassword updates the password. The server revokes the session,
	// so the token is forgotten and a new Login is required.
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	// Pull fetches the whole sync document.
	Pull(ctx context.Context) (models.SyncDocument, error)

	// Push writes the present sections when push.Version still matches the
	// server. On a mismatch it returns a *VersionConflictError.
	Push(ctx context.Context, push models.SyncPush) (models.SyncPushResult, error)
}
