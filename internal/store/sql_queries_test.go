// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPushSyncDocumentQuery(t *testing.T) {
	sections := map[string]json.RawMessage{
		models.SectionMyProfile: json.RawMessage(`{"n":1}`),
		models.SectionContacts:  json.RawMessage(`[]`),
	}

	query, args, err := buildPushSyncDocumentQuery("user-1", sections, 7)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE sync_documents SET contacts = $1, my_profile = $2, version = version + 1, updated_at = NOW() WHERE user_id = $3 AND version = $4 RETURNING version",
		query)
	assert.Equal(t, []any{`[]`, `{"n":1}`, "user-1", int64(7)}, args)
}

func TestBuildInsertSyncDocumentQuery(t *testing.T) {
	query, args, err := buildInsertSyncDocumentQuery("user-1", map[string]json.RawMessage{
		models.SectionThoughtPresets: json.RawMessage(`[{"x":true}]`),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sync_documents (user_id,thought_presets,version) VALUES ($1,$2,$3) ON CONFLICT (user_id) DO NOTHING RETURNING version",
		query)
	assert.Equal(t, []any{"user-1", `[{"x":true}]`, 1}, args)
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "alice", want: "%alice%"},
		{in: "50%", want: `%50\%%`},
		{in: "a_b", want: `%a\_b%`},
		{in: `back\slash`, want: `%back\\slash%`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, likePattern(tt.in))
		})
	}
}

func TestBuildListUsersQuery(t *testing.T) {
	t.Run("without search", func(t *testing.T) {
		query, args, err := buildListUsersQuery(models.PageRequest{Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "LEFT JOIN invite_codes ic ON ic.id = u.invite_code_id")
		assert.Contains(t, query, "ORDER BY u.created_at DESC LIMIT 10 OFFSET 20")
		assert.Empty(t, args)
	})

	t.Run("with search", func(t *testing.T) {
		query, args, err := buildListUsersQuery(models.PageRequest{Page: 1, Limit: 20, Search: "Bob"})
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE u.username ILIKE $1")
		assert.Equal(t, []any{"%Bob%"}, args)
	})
}

func TestBuildCountUsersQuery(t *testing.T) {
	query, args, err := buildCountUsersQuery("")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM users u", query)
	assert.Empty(t, args)
}

func TestBuildInsertInviteCodesQuery(t *testing.T) {
	_, _, err := buildInsertInviteCodesQuery(nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)

	query, args, err := buildInsertInviteCodesQuery([]models.InviteCode{{ID: "id-1", Code: "C1"}})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO invite_codes (id,code,expires_at) VALUES ($1,$2,$3)")
	assert.Len(t, args, 3)
}
