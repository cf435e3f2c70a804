// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/store"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/internal/validators"
	"github.com/MKhiriev/timi-sync/models"
)

const (
	minInviteCodes = 1
	maxInviteCodes = 100

	// inviteCodeRounds bounds the regeneration of codes that collided with
	// existing ones.
	inviteCodeRounds = 5
)

// adminService is the concrete implementation of AdminService. Role checks
// happen in the transport layer; every method here assumes an admin caller.
type adminService struct {
	userRepository       store.UserRepository
	inviteCodeRepository store.InviteCodeRepository
	validator            validators.Validator

	ids          idGenerator
	generateCode func() (string, error)
	bcryptCost   int

	logger *logger.Logger
	now    func() time.Time
}

// NewAdminService constructs an AdminService.
func NewAdminService(
	userRepository store.UserRepository,
	inviteCodeRepository store.InviteCodeRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AdminService {
	return &adminService{
		userRepository:       userRepository,
		inviteCodeRepository: inviteCodeRepository,
		validator:            validator,
		ids:                  utils.NewUUIDGenerator(),
		generateCode:         utils.GenerateInviteCode,
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
		now:                  time.Now,
	}
}

// Stats counts users and invite codes. "Today" starts at local midnight.
func (s *adminService) Stats(ctx context.Context) (models.Stats, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.userRepository.Stats(ctx, midnight)
	if err != nil {
		return models.Stats{}, fmt.Errorf("collecting stats failed: %w", err)
	}
	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	users, total, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.UserPage{
		Users:      users,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}, nil
}

// ToggleBan flips the user between active and banned. Banning invalidates
// the user's sessions immediately; unbanning does not issue anything new.
func (s *adminService) ToggleBan(ctx context.Context, userID string) (models.BanResult, error) {
	user, err := s.userRepository.ToggleBan(ctx, userID)
	if err != nil {
		return models.BanResult{}, adminError(err)
	}

	logger.FromContext(ctx).Info().
		Str("target_user_id", user.ID).
		Str("status", string(user.Status)).
		Msg("user ban toggled")

	return models.BanResult{ID: user.ID, Status: user.Status}, nil
}

// ResetPassword sets a new password for the user and invalidates the
// user's sessions.
func (s *adminService) ResetPassword(ctx context.Context, userID string, reset models.PasswordReset) error {
	if err := s.validator.Validate(ctx, reset); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	passwordHash, err := utils.HashPassword(reset.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if _, err = s.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return adminError(err)
	}

	logger.FromContext(ctx).Info().Str("target_user_id", userID).Msg("password reset by admin")
	return nil
}

// DeleteUser removes a non-admin account and its sync document.
func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return adminError(err)
	}

	logger.FromContext(ctx).Info().Str("target_user_id", userID).Msg("user deleted")
	return nil
}

// CreateInviteCodes generates request.Count codes, clamped to 1..100.
// Codes colliding with stored ones are regenerated for a bounded number of
// rounds.
func (s *adminService) CreateInviteCodes(ctx context.Context, request models.CreateInviteCodesRequest) (models.CreateInviteCodesResponse, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.CreateInviteCodesResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	count := min(max(request.Count, minInviteCodes), maxInviteCodes)
	created := make([]models.InviteCode, 0, count)

	for round := 0; round < inviteCodeRounds && len(created) < count; round++ {
		batch, err := s.newInviteCodes(count-len(created), request.ExpiresAt)
		if err != nil {
			return models.CreateInviteCodesResponse{}, err
		}

		stored, err := s.inviteCodeRepository.CreateInviteCodes(ctx, batch)
		if err != nil {
			return models.CreateInviteCodesResponse{}, fmt.Errorf("storing invite codes failed: %w", err)
		}
		created = append(created, stored...)
	}

	if len(created) < count {
		logger.FromContext(ctx).Error().
			Int("requested", count).
			Int("created", len(created)).
			Msg("invite codes kept colliding")
		return models.CreateInviteCodesResponse{}, store.ErrInviteCodesNotGenerated
	}

	logger.FromContext(ctx).Info().Int("count", count).Msg("invite codes generated")
	return models.CreateInviteCodesResponse{Codes: created}, nil
}

func (s *adminService) newInviteCodes(n int, expiresAt *time.Time) ([]models.InviteCode, error) {
	codes := make([]models.InviteCode, 0, n)
	seen := make(map[string]struct{}, n)

	for len(codes) < n {
		code, err := s.generateCode()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		codes = append(codes, models.InviteCode{
			ID:        s.ids.Generate(),
			Code:      code,
			ExpiresAt: expiresAt,
		})
	}

	return codes, nil
}

func (s *adminService) ListInviteCodes(ctx context.Context, page models.PageRequest) (models.InviteCodePage, error) {
	codes, total, err := s.inviteCodeRepository.ListInviteCodes(ctx, page)
	if err != nil {
		return models.InviteCodePage{}, fmt.Errorf("listing invite codes failed: %w", err)
	}

	return models.InviteCodePage{
		Codes:      codes,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(total),
	}, nil
}

// DeleteInviteCode removes an invite code. Accounts registered with it are
// kept.
func (s *adminService) DeleteInviteCode(ctx context.Context, id string) error {
	err := s.inviteCodeRepository.DeleteInviteCode(ctx, id)
	if errors.Is(err, store.ErrInviteCodeNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("deleting invite code failed: %w", err)
	}
	return nil
}

func adminError(err error) error {
	switch {
	case errors.Is(err, store.ErrAdminProtected):
		return fmt.Errorf("%w: %w", ErrForbiddenOperation, err)
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}
