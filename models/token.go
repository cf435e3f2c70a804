package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT with the claims the session authority relies on.
//
// The "sub" claim carries the user ID. SessionEpoch is serialized as
// "tokenVersion" so tokens stay readable by existing web clients.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Role         Role  `json:"role"`
	SessionEpoch int64 `json:"tokenVersion"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is a parsed copy of the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Credentials is the body of POST /api/auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the body of POST /api/auth/register.
type Registration struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	InviteCode string `json:"inviteCode"`
}

// PasswordChange is the body of POST /api/auth/change-password.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// PasswordReset is the body of PATCH /api/admin/users/{id}/reset-password.
type PasswordReset struct {
	NewPassword string `json:"newPassword"`
}
