package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInviteRepo(t *testing.T) (*inviteCodeRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &inviteCodeRepository{db: db, logger: logger.Nop()}, mock
}

func TestFindInviteCode(t *testing.T) {
	repo, mock := newTestInviteRepo(t)
	expires := time.Now().Add(24 * time.Hour)

	mock.ExpectQuery("FROM invite_codes\\s+WHERE code = \\$1").
		WithArgs("AB12CD34").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "used", "expires_at", "used_by", "created_at"}).
			AddRow("invite-1", "AB12CD34", false, expires, nil, time.Now()))

	code, err := repo.FindInviteCode(context.Background(), "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, "invite-1", code.ID)
	assert.False(t, code.Used)
	require.NotNil(t, code.ExpiresAt)
	assert.Nil(t, code.UsedBy)
}

func TestFindInviteCode_NotFound(t *testing.T) {
	repo, mock := newTestInviteRepo(t)
	mock.ExpectQuery("FROM invite_codes").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindInviteCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrInviteCodeNotFound)
}

func TestCreateInviteCodes_ReturnsStoredRows(t *testing.T) {
	repo, mock := newTestInviteRepo(t)
	now := time.Now()
	codes := []models.InviteCode{
		{ID: "id-1", Code: "AAAA0001"},
		{ID: "id-2", Code: "AAAA0002"},
	}

	// the second code collided and was skipped
	mock.ExpectQuery("INSERT INTO invite_codes \\(id,code,expires_at\\) VALUES \\(\\$1,\\$2,\\$3\\),\\(\\$4,\\$5,\\$6\\) ON CONFLICT \\(code\\) DO NOTHING").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "used", "expires_at", "created_at"}).
			AddRow("id-1", "AAAA0001", false, nil, now))

	created, err := repo.CreateInviteCodes(context.Background(), codes)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "AAAA0001", created[0].Code)
	assert.Nil(t, created[0].ExpiresAt)
}

func TestCreateInviteCodes_EmptyBatch(t *testing.T) {
	repo, _ := newTestInviteRepo(t)

	_, err := repo.CreateInviteCodes(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestListInviteCodes(t *testing.T) {
	repo, mock := newTestInviteRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM invite_codes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery("SELECT ic.id(.+) LEFT JOIN users u ON u.id = ic.used_by ORDER BY ic.created_at DESC LIMIT 20 OFFSET 0").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "used", "expires_at", "created_at", "username"}).
			AddRow("id-1", "AAAA0001", true, nil, now, "alice").
			AddRow("id-2", "AAAA0002", false, now.Add(time.Hour), now, nil))

	codes, total, err := repo.ListInviteCodes(context.Background(), models.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, codes, 2)
	require.NotNil(t, codes[0].UsedByUsername)
	assert.Equal(t, "alice", *codes[0].UsedByUsername)
	assert.Nil(t, codes[1].UsedByUsername)
	assert.NotNil(t, codes[1].ExpiresAt)
}

func TestDeleteInviteCode(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM invite_codes").WithArgs("id-1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM invite_codes").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrInviteCodeNotFound,
		},
		{
			name: "malformed id",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM invite_codes").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))
			},
			wantErr: ErrInviteCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestInviteRepo(t)
			tt.setup(mock)

			err := repo.DeleteInviteCode(context.Background(), "id-1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
