package models

import "time"

// Role is the authorization level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserStatus reports whether an account may authenticate.
type UserStatus string

const (
	StatusActive UserStatus = "active"
	StatusBanned UserStatus = "banned"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned identifier (UUID).
	ID string `json:"id"`

	// Username is unique and immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	Role   Role       `json:"role"`
	Status UserStatus `json:"status,omitempty"`

	// SessionEpoch is embedded in every issued token. Incrementing it
	// invalidates all tokens issued before the increment.
	SessionEpoch int64 `json:"-"`

	// InviteCodeID references the invite code consumed at registration.
	// Nil for the bootstrap admin account.
	InviteCodeID *string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsBanned reports whether the account is currently banned.
func (u User) IsBanned() bool {
	return u.Status == StatusBanned
}

// IsAdmin reports whether the account has administrative rights.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the account summary returned next to a freshly issued token.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Public returns the subset of user fields that is safe to expose to the account owner.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Profile is the body of GET /api/auth/me.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminUserView is a user row as listed in the admin console, joined with
// the invite code it was registered with.
type AdminUserView struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Role       Role       `json:"role"`
	Status     UserStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	InviteCode *string    `json:"inviteCode"`
}
