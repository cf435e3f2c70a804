package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/store"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/internal/validators"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
//
// Single-session semantics rest entirely on the session epoch stored with
// each user: every token carries the epoch it was issued at, and every
// login, logout, password change or ban increments the stored value, so
// older tokens stop validating. No token state is kept in memory.
type authService struct {
	// userRepository persists accounts and their session epoch.
	userRepository store.UserRepository

	// inviteCodeRepository is consulted before registration to report the
	// precise reason an invite code is rejected.
	inviteCodeRepository store.InviteCodeRepository

	// validator checks request bodies before any storage call.
	validator validators.Validator

	// ids issues identifiers for new accounts.
	ids idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// adminUsername and adminPassword describe the bootstrap admin account.
	adminUsername string
	adminPassword string

	metrics *metrics.Metrics
	logger  *logger.Logger
	now     func() time.Time
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	inviteCodeRepository store.InviteCodeRepository,
	validator validators.Validator,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:       userRepository,
		inviteCodeRepository: inviteCodeRepository,
		validator:            validator,
		ids:                  utils.NewUUIDGenerator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		bcryptCost:           cfg.BcryptCost,
		adminUsername:        cfg.AdminUsername,
		adminPassword:        cfg.AdminPassword,
		metrics:              m,
		logger:               logger,
		now:                  time.Now,
	}
}

// Register creates a new account from an invite code.
//
// Checks run in this order and the first failure wins:
//   - username and password bounds, invite code presence → ErrValidation
//   - invite code exists, is unused and unexpired → ErrInvalidInviteCode,
//     ErrInviteCodeUsed, ErrInviteCodeExpired
//   - username is free → ErrUsernameTaken
//
// The invite check is repeated atomically inside the creating transaction,
// so a code raced away between the two checks is still reported correctly.
func (a *authService) Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, registration); err != nil {
		log.Debug().Err(err).Str("username", registration.Username).Msg("registration rejected by validation")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	inviteCode, err := a.inviteCodeRepository.FindInviteCode(ctx, registration.InviteCode)
	if err != nil {
		return models.AuthResponse{}, inviteError(err)
	}
	switch {
	case inviteCode.Used:
		return models.AuthResponse{}, ErrInviteCodeUsed
	case inviteCode.IsExpired(a.now()):
		return models.AuthResponse{}, ErrInviteCodeExpired
	}

	passwordHash, err := utils.HashPassword(registration.Password, a.bcryptCost)
	if err != nil {
		return models.AuthResponse{}, err
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Username:     registration.Username,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}

	created, err := a.userRepository.CreateUser(ctx, user, &inviteCode.ID)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.AuthResponse{}, ErrUsernameTaken
		}
		return models.AuthResponse{}, inviteError(err)
	}

	log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return a.authResponse(created)
}

// inviteError translates invite code failures of the store layer.
func inviteError(err error) error {
	switch {
	case errors.Is(err, store.ErrInviteCodeNotFound):
		return ErrInvalidInviteCode
	case errors.Is(err, store.ErrInviteCodeUsed):
		return ErrInviteCodeUsed
	case errors.Is(err, store.ErrInviteCodeExpired):
		return ErrInviteCodeExpired
	default:
		return fmt.Errorf("registration failed: %w", err)
	}
}

// Login authenticates an existing user and starts a new session.
//
// The session epoch is incremented on every successful login, so a login
// on a second device invalidates the token held by the first one.
//
// Returns:
//   - ErrValidation if username or password is empty.
//   - ErrBadCredentials for an unknown username or a wrong password.
//   - ErrAccountBanned if the password is right but the account is banned.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", credentials.Username).Msg("login for unknown username")
		return models.AuthResponse{}, ErrBadCredentials
	}
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, credentials.Password) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrBadCredentials
	}
	if user.IsBanned() {
		log.Info().Str("user_id", user.ID).Msg("banned user tried to log in")
		return models.AuthResponse{}, ErrAccountBanned
	}

	epoch, err := a.userRepository.IncrementSessionEpoch(ctx, user.ID)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("starting session failed: %w", err)
	}
	user.SessionEpoch = epoch

	log.Info().Str("user_id", user.ID).Int64("session_epoch", epoch).Msg("user logged in")

	return a.authResponse(user)
}

// Logout invalidates every outstanding token of the user.
func (a *authService) Logout(ctx context.Context, userID string) error {
	epoch, err := a.userRepository.IncrementSessionEpoch(ctx, userID)
	if err != nil {
		return notFound(err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Int64("session_epoch", epoch).Msg("user logged out")
	return nil
}

// ChangePassword verifies the old password, stores the new one and
// invalidates all sessions in the same statement. The caller has to log in
// again afterwards.
func (a *authService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	if err := a.validator.Validate(ctx, change); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return notFound(err)
	}
	if !utils.CheckPassword(user.PasswordHash, change.OldPassword) {
		return ErrWrongPassword
	}

	passwordHash, err := utils.HashPassword(change.NewPassword, a.bcryptCost)
	if err != nil {
		return err
	}
	if _, err = a.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return notFound(err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (a *authService) Me(ctx context.Context, userID string) (models.Profile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, notFound(err)
	}

	return models.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Authenticate validates tokenString and returns the account it belongs to.
//
// Checks, in order:
//   - signature, issuer and structure → ErrInvalidToken
//   - expiry → ErrTokenExpired
//   - the account still exists → ErrUserNotFound
//   - the account is not banned → ErrAccountBanned
//   - the token's session epoch equals the stored one → ErrSessionSuperseded
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.metrics.ObserveAuthRejection(metrics.RejectTokenExpired)
			return models.User{}, ErrTokenExpired
		}
		log.Debug().Err(err).Msg("token rejected")
		a.metrics.ObserveAuthRejection(metrics.RejectInvalidToken)
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		a.metrics.ObserveAuthRejection(metrics.RejectUserNotFound)
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.IsBanned() {
		a.metrics.ObserveAuthRejection(metrics.RejectBanned)
		return models.User{}, ErrAccountBanned
	}
	if token.SessionEpoch != user.SessionEpoch {
		log.Info().
			Str("user_id", user.ID).
			Int64("token_epoch", token.SessionEpoch).
			Int64("session_epoch", user.SessionEpoch).
			Msg("token from a superseded session")
		a.metrics.ObserveAuthRejection(metrics.RejectSuperseded)
		return models.User{}, ErrSessionSuperseded
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap admin account when no user with the
// configured admin username exists. An existing account is left untouched,
// whatever its role.
func (a *authService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, a.adminUsername)
	if err == nil {
		log.Debug().Str("username", a.adminUsername).Msg("admin account already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("admin account lookup failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(a.adminPassword, a.bcryptCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           a.ids.Generate(),
		Username:     a.adminUsername,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	}

	created, err := a.userRepository.CreateUser(ctx, admin, nil)
	if errors.Is(err, store.ErrUsernameTaken) {
		// another instance created it first
		return nil
	}
	if err != nil {
		return fmt.Errorf("admin account creation failed: %w", err)
	}

	log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("admin account created")
	return nil
}

// CreateToken issues a signed JWT bound to the user's current session epoch.
func (a *authService) CreateToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (a *authService) authResponse(user models.User) (models.AuthResponse, error) {
	token, err := a.CreateToken(user)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{Token: token.String(), User: user.Public()}, nil
}

// notFound turns a missing account into ErrNotFound and passes other
// errors through.
func notFound(err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
