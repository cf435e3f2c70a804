package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername       = errors.New("username is required")
	ErrInvalidUsername     = errors.New("username must be 2-20 characters")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes")
	ErrEmptyInviteCode     = errors.New("invite code is required")
	ErrEmptyOldPassword    = errors.New("old password is required")
	ErrMissingVersion      = errors.New("version is required")
	ErrInvalidVersion      = errors.New("version must not be negative")
	ErrInvalidInviteExpiry = errors.New("invite code expiry must be in the future")
)
