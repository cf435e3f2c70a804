package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), models.Registration{Username: "alice"}, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Registration(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		reg     models.Registration
		wantErr error
	}{
		{
			name: "valid",
			reg:  models.Registration{Username: "alice", Password: "secret1", InviteCode: "CODE01"},
		},
		{
			name: "two-character username",
			reg:  models.Registration{Username: "al", Password: "secret1", InviteCode: "CODE01"},
		},
		{
			name: "cjk username counts one unit per character",
			reg:  models.Registration{Username: "小明", Password: "secret1", InviteCode: "CODE01"},
		},
		{
			name: "emoji counts two units",
			reg:  models.Registration{Username: "😀", Password: "secret1", InviteCode: "CODE01"},
		},
		{
			name:    "eleven emoji exceed twenty units",
			reg:     models.Registration{Username: strings.Repeat("😀", 11), Password: "secret1", InviteCode: "CODE01"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "username too short",
			reg:     models.Registration{Username: "a", Password: "secret1", InviteCode: "CODE01"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "username too long",
			reg:     models.Registration{Username: strings.Repeat("a", 21), Password: "secret1", InviteCode: "CODE01"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "missing password",
			reg:     models.Registration{Username: "alice", InviteCode: "CODE01"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "short password",
			reg:     models.Registration{Username: "alice", Password: "12345", InviteCode: "CODE01"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "password at bcrypt limit",
			reg:  models.Registration{Username: "alice", Password: strings.Repeat("x", MaxPasswordBytes), InviteCode: "CODE01"},
		},
		{
			name:    "password over bcrypt limit",
			reg:     models.Registration{Username: "alice", Password: strings.Repeat("x", MaxPasswordBytes+1), InviteCode: "CODE01"},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:    "multibyte password over bcrypt limit",
			reg:     models.Registration{Username: "alice", Password: strings.Repeat("密", 25), InviteCode: "CODE01"},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:    "missing invite code",
			reg:     models.Registration{Username: "alice", Password: "secret1"},
			wantErr: ErrEmptyInviteCode,
		},
		{
			name:    "first failing check wins",
			reg:     models.Registration{Username: "a", Password: "1"},
			wantErr: ErrInvalidUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.reg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Credentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "a", Password: "1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "secret1"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "alice"}), ErrEmptyPassword)
}

func TestValidate_PasswordChange(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PasswordChange{OldPassword: "x", NewPassword: "secret2"}))
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordChange{NewPassword: "secret2"}), ErrEmptyOldPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordChange{OldPassword: "x", NewPassword: "short"}), ErrPasswordTooShort)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordChange{OldPassword: "x", NewPassword: strings.Repeat("y", 80)}), ErrPasswordTooLong)
}

func TestValidate_PasswordReset(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.PasswordReset{NewPassword: "secret2"}))
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordReset{}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordReset{NewPassword: strings.Repeat("y", 80)}), ErrPasswordTooLong)
}

func TestTextLength(t *testing.T) {
	assert.Equal(t, 0, TextLength(""))
	assert.Equal(t, 5, TextLength("alice"))
	assert.Equal(t, 2, TextLength("小明"))
	assert.Equal(t, 2, TextLength("😀"))
}

func TestValidate_SyncPush(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.SyncPush{Version: int64Ptr(0)}))
	assert.NoError(t, v.Validate(ctx, &models.SyncPush{Version: int64Ptr(12)}))
	assert.ErrorIs(t, v.Validate(ctx, models.SyncPush{}), ErrMissingVersion)
	assert.ErrorIs(t, v.Validate(ctx, models.SyncPush{Version: int64Ptr(-1)}), ErrInvalidVersion)
}

func TestValidate_CreateInviteCodes(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	v := &RequestValidator{now: func() time.Time { return now }}
	ctx := context.Background()

	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	assert.NoError(t, v.Validate(ctx, models.CreateInviteCodesRequest{Count: 5}))
	assert.NoError(t, v.Validate(ctx, models.CreateInviteCodesRequest{Count: 5, ExpiresAt: &future}))
	assert.ErrorIs(t, v.Validate(ctx, models.CreateInviteCodesRequest{ExpiresAt: &past}), ErrInvalidInviteExpiry)
}
