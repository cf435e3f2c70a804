package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// Every write to the session epoch is a single UPDATE with an increment
// expression, never a read followed by a write.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var inviteCodeID sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.SessionEpoch,
		&inviteCodeID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if inviteCodeID.Valid {
		user.InviteCodeID = &inviteCodeID.String
	}

	return user, nil
}

// CreateUser inserts the account and its empty sync document in a single
// transaction. When inviteCodeID is set the invite is consumed first with a
// conditional UPDATE, so two registrations racing for one code cannot both
// succeed.
//
// Error handling:
//   - invite already used / expired / missing → [ErrInviteCodeUsed],
//     [ErrInviteCodeExpired], [ErrInviteCodeNotFound].
//   - unique_violation on username → [ErrUsernameTaken].
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, inviteCodeID *string) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if inviteCodeID != nil {
			if err := r.consumeInviteCode(ctx, tx, *inviteCodeID, user.ID); err != nil {
				return err
			}
		}

		row := tx.QueryRowContext(ctx, createUser, user.ID, user.Username, user.PasswordHash, user.Role, user.Status, inviteCodeID)
		var err error
		created, err = scanUser(row)
		if err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrUsernameTaken
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if _, err = tx.ExecContext(ctx, createSyncDocument, created.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("user was not created")
		return models.User{}, err
	}

	log.Info().
		Str("func", "*userRepository.CreateUser").
		Str("user_id", created.ID).
		Msg("user created")

	return created, nil
}

// consumeInviteCode flips the invite to used. When the conditional update
// matches nothing, the current row is re-read to report why.
func (r *userRepository) consumeInviteCode(ctx context.Context, tx DBTX, inviteCodeID, userID string) error {
	var consumedID string
	err := tx.QueryRowContext(ctx, consumeInviteCode, userID, inviteCodeID).Scan(&consumedID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var used bool
	var expiresAt sql.NullTime
	err = tx.QueryRowContext(ctx, inviteCodeState, inviteCodeID).Scan(&used, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrInviteCodeNotFound
	case err != nil:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case used:
		return ErrInviteCodeUsed
	default:
		return ErrInviteCodeExpired
	}
}

// FindUserByUsername returns the account with the exact username or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID returns the account with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case postgresError(err) == pgerrcode.InvalidTextRepresentation:
		// malformed uuid
		return models.User{}, ErrUserNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) IncrementSessionEpoch(ctx context.Context, id string) (int64, error) {
	return r.bumpEpoch(ctx, "*userRepository.IncrementSessionEpoch", incrementSessionEpoch, id)
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) (int64, error) {
	return r.bumpEpoch(ctx, "*userRepository.UpdatePasswordHash", updatePasswordHash, id, passwordHash)
}

func (r *userRepository) bumpEpoch(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	var epoch int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&epoch)
	switch {
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return 0, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error updating session epoch")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", funcName).Int64("session_epoch", epoch).Msg("session epoch incremented")
	return epoch, nil
}

// ToggleBan flips active <-> banned in one statement. Admin rows are
// excluded by the WHERE clause; a miss is then resolved into
// [ErrAdminProtected] or [ErrUserNotFound].
func (r *userRepository) ToggleBan(ctx context.Context, id string) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, toggleBan, id))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, r.explainProtectedMiss(ctx, id)
	case postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.User{}, ErrUserNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ToggleBan").Msg("error toggling ban")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// DeleteUser removes a non-admin account. The sync document goes with it
// through ON DELETE CASCADE and invite code back-references are cleared by
// ON DELETE SET NULL.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return r.explainProtectedMiss(ctx, id)
	}

	return nil
}

func (r *userRepository) explainProtectedMiss(ctx context.Context, id string) error {
	var role models.Role
	err := r.db.QueryRowContext(ctx, findUserRole, id).Scan(&role)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	case err != nil:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case role == models.RoleAdmin:
		return ErrAdminProtected
	default:
		// row changed between the two statements
		return ErrUserNotFound
	}
}

// ListUsers returns one page of users, newest first, and the total number
// of users matching the search.
func (r *userRepository) ListUsers(ctx context.Context, page models.PageRequest) ([]models.AdminUserView, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersQuery(page.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListUsersQuery(page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.AdminUserView, 0, page.Limit)
	for rows.Next() {
		var user models.AdminUserView
		var code sql.NullString
		if err = rows.Scan(&user.ID, &user.Username, &user.Role, &user.Status, &user.CreatedAt, &code); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if code.Valid {
			user.InviteCode = &code.String
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, total, nil
}

// Stats counts users and invite codes for the admin dashboard. since is the
// start of the "registered today" window.
func (r *userRepository) Stats(ctx context.Context, since time.Time) (models.Stats, error) {
	var stats models.Stats
	err := r.db.QueryRowContext(ctx, selectStats, since).Scan(
		&stats.TotalUsers,
		&stats.ActiveUsers,
		&stats.BannedUsers,
		&stats.TotalCodes,
		&stats.UsedCodes,
		&stats.TodayRegistered,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Stats").Msg("error collecting stats")
		return models.Stats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}
