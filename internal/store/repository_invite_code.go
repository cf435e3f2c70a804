package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/jackc/pgerrcode"
)

type inviteCodeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInviteCodeRepository constructs an [InviteCodeRepository] backed by db.
func NewInviteCodeRepository(db *DB, logger *logger.Logger) InviteCodeRepository {
	logger.Debug().Msg("creating invite code repository")
	return &inviteCodeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *inviteCodeRepository) FindInviteCode(ctx context.Context, code string) (models.InviteCode, error) {
	var inviteCode models.InviteCode
	var expiresAt sql.NullTime
	var usedBy sql.NullString

	err := r.db.QueryRowContext(ctx, findInviteCodeByCode, code).Scan(
		&inviteCode.ID,
		&inviteCode.Code,
		&inviteCode.Used,
		&expiresAt,
		&usedBy,
		&inviteCode.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.InviteCode{}, ErrInviteCodeNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*inviteCodeRepository.FindInviteCode").Msg("error querying invite code")
		return models.InviteCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if expiresAt.Valid {
		inviteCode.ExpiresAt = &expiresAt.Time
	}
	if usedBy.Valid {
		inviteCode.UsedBy = &usedBy.String
	}

	return inviteCode, nil
}

// CreateInviteCodes inserts codes and returns the rows that were actually
// stored. Codes colliding with existing ones are silently skipped, so the
// result may be shorter than the input.
func (r *inviteCodeRepository) CreateInviteCodes(ctx context.Context, codes []models.InviteCode) ([]models.InviteCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertInviteCodesQuery(codes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*inviteCodeRepository.CreateInviteCodes").Int("count", len(codes)).Msg("error inserting invite codes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	created := make([]models.InviteCode, 0, len(codes))
	for rows.Next() {
		var code models.InviteCode
		var expiresAt sql.NullTime
		if err = rows.Scan(&code.ID, &code.Code, &code.Used, &expiresAt, &code.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if expiresAt.Valid {
			code.ExpiresAt = &expiresAt.Time
		}
		created = append(created, code)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Info().Str("func", "*inviteCodeRepository.CreateInviteCodes").Int("created", len(created)).Msg("invite codes stored")
	return created, nil
}

func (r *inviteCodeRepository) ListInviteCodes(ctx context.Context, page models.PageRequest) ([]models.InviteCodeView, int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countInviteCodes).Scan(&total); err != nil {
		log.Err(err).Str("func", "*inviteCodeRepository.ListInviteCodes").Msg("error counting invite codes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListInviteCodesQuery(page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*inviteCodeRepository.ListInviteCodes").Msg("error listing invite codes")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	codes := make([]models.InviteCodeView, 0, page.Limit)
	for rows.Next() {
		var code models.InviteCodeView
		var expiresAt sql.NullTime
		var username sql.NullString
		if err = rows.Scan(&code.ID, &code.Code, &code.Used, &expiresAt, &code.CreatedAt, &username); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if expiresAt.Valid {
			code.ExpiresAt = &expiresAt.Time
		}
		if username.Valid {
			code.UsedByUsername = &username.String
		}
		codes = append(codes, code)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return codes, total, nil
}

// DeleteInviteCode removes a code. A user registered with it keeps the
// account; the back-reference is cleared by ON DELETE SET NULL.
func (r *inviteCodeRepository) DeleteInviteCode(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteInviteCode, id)
	if postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrInviteCodeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*inviteCodeRepository.DeleteInviteCode").Msg("error deleting invite code")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrInviteCodeNotFound
	}

	return nil
}
