// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"
	"unicode/utf16"

	"github.com/MKhiriev/timi-sync/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldInviteCode  = "invite_code"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
	FieldVersion     = "version"
	FieldExpiresAt   = "expires_at"
)

const (
	MinUsernameLength = 2
	MaxUsernameLength = 20
	MinPasswordLength = 6

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// RequestValidator implements [Validator] for the request bodies accepted
// by the HTTP API: Registration, Credentials, PasswordChange, PasswordReset,
// SyncPush and CreateInviteCodesRequest.
//
// Checks run in the order of the requested fields and the first failure
// wins. With no fields the type's default set is checked.
type RequestValidator struct {
	now func() time.Time
}

// NewRequestValidator constructs a RequestValidator.
func NewRequestValidator() Validator {
	return &RequestValidator{now: time.Now}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	case models.PasswordReset:
		return v.validatePasswordReset(value, fields...)
	case *models.PasswordReset:
		return v.validatePasswordReset(*value, fields...)

	case models.SyncPush:
		return v.validateSyncPush(value, fields...)
	case *models.SyncPush:
		return v.validateSyncPush(*value, fields...)

	case models.CreateInviteCodesRequest:
		return v.validateCreateInviteCodes(value, fields...)
	case *models.CreateInviteCodesRequest:
		return v.validateCreateInviteCodes(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegistration checks username bounds, password length and
// invite code presence, in that order.
func (v *RequestValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldInviteCode}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := CheckUsername(r.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := CheckPassword(r.Password); err != nil {
				return err
			}
		case FieldInviteCode:
			if r.InviteCode == "" {
				return ErrEmptyInviteCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials only checks presence. Length rules are not applied
// at login so that accounts created under older rules can still sign in.
func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if c.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePasswordChange(c models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if c.OldPassword == "" {
				return ErrEmptyOldPassword
			}
		case FieldNewPassword:
			if err := CheckPassword(c.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePasswordReset(r models.PasswordReset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldNewPassword:
			if err := CheckPassword(r.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSyncPush requires the base version. Sections are opaque to the
// server and are not inspected.
func (v *RequestValidator) validateSyncPush(p models.SyncPush, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldVersion:
			if p.Version == nil {
				return ErrMissingVersion
			}
			if *p.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateInviteCodes rejects an expiry that has already passed. The
// requested count is clamped by the service rather than rejected.
func (v *RequestValidator) validateCreateInviteCodes(r models.CreateInviteCodesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldExpiresAt:
			if r.ExpiresAt != nil && !r.ExpiresAt.After(v.now()) {
				return ErrInvalidInviteExpiry
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// CheckUsername enforces the username length bounds. Length is counted in
// UTF-16 code units, the unit the web client validates with, so an emoji
// counts as two.
func CheckUsername(username string) error {
	n := TextLength(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return ErrInvalidUsername
	}
	return nil
}

// CheckPassword enforces the password bounds: at least MinPasswordLength
// UTF-16 code units and at most MaxPasswordBytes bytes.
func CheckPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if TextLength(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// TextLength returns the length of s in UTF-16 code units.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
