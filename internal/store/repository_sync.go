// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/jackc/pgerrcode"
)

// syncRepository is the PostgreSQL-backed [SyncRepository].
//
// The version check and increment happen in one conditional UPDATE. Two
// writers with the same expected version cannot both match it: the second
// sees zero rows and gets a *VersionConflictError.
type syncRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSyncRepository constructs a [SyncRepository] backed by db.
func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	logger.Debug().Msg("creating sync repository")
	return &syncRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncRepository) GetDocument(ctx context.Context, userID string) (models.SyncDocument, error) {
	var doc models.SyncDocument
	var contacts, worldBooks, personaPresets, thoughtPresets, myProfile []byte
	var updatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, getSyncDocument, userID).Scan(
		&contacts,
		&worldBooks,
		&personaPresets,
		&thoughtPresets,
		&myProfile,
		&doc.Version,
		&updatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		logger.FromContext(ctx).Warn().
			Str("func", "*syncRepository.GetDocument").
			Str("user_id", userID).
			Msg("no sync document stored, serving defaults")
		return models.EmptySyncDocument(), nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*syncRepository.GetDocument").Msg("error reading sync document")
		return models.SyncDocument{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	doc.Contacts = json.RawMessage(contacts)
	doc.WorldBooks = json.RawMessage(worldBooks)
	doc.UserPersonaPresets = json.RawMessage(personaPresets)
	doc.ThoughtPresets = json.RawMessage(thoughtPresets)
	doc.MyProfile = json.RawMessage(myProfile)
	if updatedAt.Valid {
		doc.UpdatedAt = &updatedAt.Time
	}

	return doc, nil
}

// PushDocument applies sections with compare-and-swap semantics.
//
//  1. Conditional UPDATE ... WHERE version = expected RETURNING version.
//  2. On a miss, read the stored version and report a conflict with it.
//  3. A user without a stored document is treated as being at version 0;
//     a push expecting 0 creates the document at version 1.
func (r *syncRepository) PushDocument(ctx context.Context, userID string, sections map[string]json.RawMessage, expectedVersion int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPushSyncDocumentQuery(userID, sections, expectedVersion)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var newVersion int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&newVersion)
	if err == nil {
		log.Debug().
			Str("func", "*syncRepository.PushDocument").
			Int64("version", newVersion).
			Int("sections", len(sections)).
			Msg("sync document updated")
		return newVersion, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "*syncRepository.PushDocument").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error updating sync document")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var serverVersion int64
	err = r.db.QueryRowContext(ctx, getSyncDocumentVersion, userID).Scan(&serverVersion)
	switch {
	case err == nil:
		log.Info().
			Str("func", "*syncRepository.PushDocument").
			Int64("expected_version", expectedVersion).
			Int64("server_version", serverVersion).
			Msg("optimistic lock failed: version mismatch")
		return 0, &VersionConflictError{ServerVersion: serverVersion}
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case expectedVersion != 0:
		return 0, &VersionConflictError{ServerVersion: 0}
	}

	return r.insertFirstDocument(ctx, userID, sections)
}

func (r *syncRepository) insertFirstDocument(ctx context.Context, userID string, sections map[string]json.RawMessage) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSyncDocumentQuery(userID, sections)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&version)
	switch {
	case err == nil:
		log.Warn().
			Str("func", "*syncRepository.insertFirstDocument").
			Str("user_id", userID).
			Msg("sync document was missing and has been created")
		return version, nil
	case errors.Is(err, sql.ErrNoRows):
		// a concurrent first write won; it is now at version 1 or later
		var serverVersion int64
		if err = r.db.QueryRowContext(ctx, getSyncDocumentVersion, userID).Scan(&serverVersion); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return 0, &VersionConflictError{ServerVersion: serverVersion}
	case postgresError(err) == pgerrcode.ForeignKeyViolation:
		return 0, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*syncRepository.insertFirstDocument").Msg("error creating sync document")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
