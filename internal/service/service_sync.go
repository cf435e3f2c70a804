package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/store"
	"github.com/MKhiriev/timi-sync/internal/validators"
	"github.com/MKhiriev/timi-sync/models"
)

// syncService is the concrete implementation of SyncService.
//
// It holds no state of its own. Concurrent pushes from two devices are
// ordered by the conditional update in the repository: only one of them
// can match a given base version, the other gets a conflict and has to
// pull and retry.
type syncService struct {
	syncRepository store.SyncRepository
	validator      validators.Validator
	metrics        *metrics.Metrics
	logger         *logger.Logger
}

// NewSyncService constructs a SyncService over the given repository.
func NewSyncService(syncRepository store.SyncRepository, validator validators.Validator, m *metrics.Metrics, logger *logger.Logger) SyncService {
	return &syncService{
		syncRepository: syncRepository,
		validator:      validator,
		metrics:        m,
		logger:         logger,
	}
}

// Pull returns the stored document, or the empty default document at
// version 0 when the user has none.
func (s *syncService) Pull(ctx context.Context, userID string) (models.SyncDocument, error) {
	doc, err := s.syncRepository.GetDocument(ctx, userID)
	if err != nil {
		return models.SyncDocument{}, fmt.Errorf("reading sync document failed: %w", err)
	}

	s.metrics.ObservePull()
	return doc, nil
}

// Push writes the present sections of push if the stored version equals
// push.Version and returns the incremented version.
//
// A push carrying only a version is accepted and still increments the
// version. Returns:
//   - ErrMissingVersion if push.Version is absent.
//   - ErrValidation if push.Version is negative.
//   - *VersionConflictError (matching ErrVersionConflict) when the stored
//     document has moved on.
func (s *syncService) Push(ctx context.Context, userID string, push models.SyncPush) (models.SyncPushResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, push); err != nil {
		if errors.Is(err, validators.ErrMissingVersion) {
			return models.SyncPushResult{}, ErrMissingVersion
		}
		return models.SyncPushResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	sections := push.Sections()
	version, err := s.syncRepository.PushDocument(ctx, userID, sections, *push.Version)
	switch {
	case err == nil:
		s.metrics.ObservePush(metrics.PushOK)
	case errors.Is(err, ErrVersionConflict):
		s.metrics.ObservePush(metrics.PushConflict)
		return models.SyncPushResult{}, err
	case errors.Is(err, store.ErrUserNotFound):
		s.metrics.ObservePush(metrics.PushError)
		return models.SyncPushResult{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		s.metrics.ObservePush(metrics.PushError)
		return models.SyncPushResult{}, fmt.Errorf("writing sync document failed: %w", err)
	}

	log.Info().
		Str("user_id", userID).
		Int64("version", version).
		Int("sections", len(sections)).
		Msg("sync document pushed")

	return models.SyncPushResult{Version: version}, nil
}
