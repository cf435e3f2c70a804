package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/timi-sync/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, username, password_hash, role, status, session_epoch, invite_code_id, created_at, updated_at`

const (
	createUser = `INSERT INTO users (id, username, password_hash, role, status, invite_code_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	createSyncDocument = `INSERT INTO sync_documents (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`

	findUserByUsername = `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	findUserRole = `SELECT role FROM users WHERE id = $1`

	incrementSessionEpoch = `UPDATE users
		SET session_epoch = session_epoch + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING session_epoch`

	updatePasswordHash = `UPDATE users
		SET password_hash = $2, session_epoch = session_epoch + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING session_epoch`

	// CASE expressions read the pre-update row, so the epoch only moves
	// when the user transitions into the banned state.
	toggleBan = `UPDATE users
		SET status = CASE WHEN status = 'banned' THEN 'active' ELSE 'banned' END,
			session_epoch = CASE WHEN status = 'banned' THEN session_epoch ELSE session_epoch + 1 END,
			updated_at = NOW()
		WHERE id = $1 AND role <> 'admin'
		RETURNING ` + userColumns

	deleteUser = `DELETE FROM users WHERE id = $1 AND role <> 'admin'`

	selectStats = `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM users WHERE status = 'active'),
		(SELECT COUNT(*) FROM users WHERE status = 'banned'),
		(SELECT COUNT(*) FROM invite_codes),
		(SELECT COUNT(*) FROM invite_codes WHERE used),
		(SELECT COUNT(*) FROM users WHERE created_at >= $1)`

	consumeInviteCode = `UPDATE invite_codes
		SET used = TRUE, used_by = $1
		WHERE id = $2 AND used = FALSE AND (expires_at IS NULL OR expires_at > NOW())
		RETURNING id`

	inviteCodeState = `SELECT used, expires_at FROM invite_codes WHERE id = $1`

	findInviteCodeByCode = `SELECT id, code, used, expires_at, used_by, created_at
		FROM invite_codes
		WHERE code = $1`

	deleteInviteCode = `DELETE FROM invite_codes WHERE id = $1`

	getSyncDocument = `SELECT contacts, world_books, user_persona_presets, thought_presets, my_profile, version, updated_at
		FROM sync_documents
		WHERE user_id = $1`

	getSyncDocumentVersion = `SELECT version FROM sync_documents WHERE user_id = $1`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// syncSectionColumns fixes the order in which present sections are written
// so generated SQL is stable.
var syncSectionColumns = []string{
	models.SectionContacts,
	models.SectionWorldBooks,
	models.SectionUserPersonaPresets,
	models.SectionThoughtPresets,
	models.SectionMyProfile,
}

// buildPushSyncDocumentQuery renders the compare-and-swap update: present
// sections are overwritten and the version is incremented only when the
// stored version equals expectedVersion.
func buildPushSyncDocumentQuery(userID string, sections map[string]json.RawMessage, expectedVersion int64) (string, []any, error) {
	builder := psql.Update("sync_documents")

	for _, column := range syncSectionColumns {
		if value, ok := sections[column]; ok {
			builder = builder.Set(column, string(value))
		}
	}

	return builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"version": expectedVersion}).
		Suffix("RETURNING version").
		ToSql()
}

// buildInsertSyncDocumentQuery renders the first write for a user that has
// no stored document. It lands at version 1.
func buildInsertSyncDocumentQuery(userID string, sections map[string]json.RawMessage) (string, []any, error) {
	columns := []string{"user_id"}
	values := []any{userID}

	for _, column := range syncSectionColumns {
		if value, ok := sections[column]; ok {
			columns = append(columns, column)
			values = append(values, string(value))
		}
	}

	columns = append(columns, "version")
	values = append(values, 1)

	return psql.Insert("sync_documents").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING version").
		ToSql()
}

// likePattern turns a free-text search into a case-insensitive substring
// pattern with LIKE wildcards escaped.
func likePattern(search string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(search) + "%"
}

func withUserSearch(builder sq.SelectBuilder, search string) sq.SelectBuilder {
	if search == "" {
		return builder
	}
	return builder.Where(sq.ILike{"u.username": likePattern(search)})
}

func buildListUsersQuery(page models.PageRequest) (string, []any, error) {
	builder := psql.
		Select("u.id", "u.username", "u.role", "u.status", "u.created_at", "ic.code").
		From("users u").
		LeftJoin("invite_codes ic ON ic.id = u.invite_code_id")

	return withUserSearch(builder, page.Search).
		OrderBy("u.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountUsersQuery(search string) (string, []any, error) {
	return withUserSearch(psql.Select("COUNT(*)").From("users u"), search).ToSql()
}

func buildListInviteCodesQuery(page models.PageRequest) (string, []any, error) {
	return psql.
		Select("ic.id", "ic.code", "ic.used", "ic.expires_at", "ic.created_at", "u.username").
		From("invite_codes ic").
		LeftJoin("users u ON u.id = ic.used_by").
		OrderBy("ic.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

const countInviteCodes = `SELECT COUNT(*) FROM invite_codes`

// buildInsertInviteCodesQuery inserts a batch of codes. Codes that collide
// with existing ones are skipped and therefore absent from RETURNING.
func buildInsertInviteCodesQuery(codes []models.InviteCode) (string, []any, error) {
	if len(codes) == 0 {
		return "", nil, fmt.Errorf("%w: empty invite code batch", ErrBuildingSQLQuery)
	}

	builder := psql.Insert("invite_codes").Columns("id", "code", "expires_at")
	for _, code := range codes {
		builder = builder.Values(code.ID, code.Code, code.ExpiresAt)
	}

	return builder.
		Suffix("ON CONFLICT (code) DO NOTHING RETURNING id, code, used, expires_at, created_at").
		ToSql()
}
