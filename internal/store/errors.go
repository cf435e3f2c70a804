package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when a user insert hits the unique
	// constraint on username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the given id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrInviteCodeNotFound is returned when no invite code matches.
	ErrInviteCodeNotFound = errors.New("invite code not found")

	// ErrInviteCodeUsed is returned when the conditional consume finds the
	// code already used.
	ErrInviteCodeUsed = errors.New("invite code already used")

	// ErrInviteCodeExpired is returned when the conditional consume finds
	// the code past its expiry.
	ErrInviteCodeExpired = errors.New("invite code expired")

	// ErrAdminProtected is returned when a ban or delete targets an admin.
	ErrAdminProtected = errors.New("admin accounts cannot be modified")

	// ErrInviteCodesNotGenerated is returned when unique codes could not be
	// produced after several collision rounds.
	ErrInviteCodesNotGenerated = errors.New("invite codes were not generated")

	// ErrVersionConflict is returned when an optimistic write finds that the
	// stored sync document has moved past the expected version. The
	// concrete error is a *VersionConflictError carrying the stored version.
	ErrVersionConflict = errors.New("sync document version conflict")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// VersionConflictError reports a rejected optimistic write together with
// the version currently stored on the server.
type VersionConflictError struct {
	ServerVersion int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: server version is %d", ErrVersionConflict, e.ServerVersion)
}

// Is makes errors.Is(err, ErrVersionConflict) match.
func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}
