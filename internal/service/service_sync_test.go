// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/mock"
	"github.com/MKhiriev/timi-sync/internal/store"
	"github.com/MKhiriev/timi-sync/internal/validators"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T) (*syncService, *mock.MockSyncRepository) {
	t.Helper()
	repo := mock.NewMockSyncRepository(gomock.NewController(t))
	svc := NewSyncService(repo, validators.NewRequestValidator(), metrics.New(), logger.Nop()).(*syncService)
	return svc, repo
}

func versionPtr(v int64) *int64 { return &v }

func TestSyncService_Pull(t *testing.T) {
	svc, repo := newTestSyncService(t)
	doc := models.EmptySyncDocument()
	repo.EXPECT().GetDocument(gomock.Any(), "user-1").Return(doc, nil)

	got, err := svc.Pull(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, doc, got)
	assert.Contains(t, scrapeMetrics(t, svc.metrics), "timi_sync_pull_total 1")
}

func TestSyncService_Pull_Error(t *testing.T) {
	svc, repo := newTestSyncService(t)
	dbErr := errors.New("timeout")
	repo.EXPECT().GetDocument(gomock.Any(), "user-1").Return(models.SyncDocument{}, dbErr)

	_, err := svc.Pull(context.Background(), "user-1")

	assert.ErrorIs(t, err, dbErr)
}

func TestSyncService_Push_Success(t *testing.T) {
	svc, repo := newTestSyncService(t)
	push := models.SyncPush{
		Contacts:  json.RawMessage(`[{"id":1}]`),
		MyProfile: json.RawMessage(`null`),
		Version:   versionPtr(4),
	}

	repo.EXPECT().PushDocument(gomock.Any(), "user-1", gomock.Any(), int64(4)).DoAndReturn(
		func(_ context.Context, _ string, sections map[string]json.RawMessage, _ int64) (int64, error) {
			assert.Equal(t, map[string]json.RawMessage{models.SectionContacts: json.RawMessage(`[{"id":1}]`)}, sections)
			return 5, nil
		},
	)

	result, err := svc.Push(context.Background(), "user-1", push)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Version)
	assert.Contains(t, scrapeMetrics(t, svc.metrics), `timi_sync_push_total{result="ok"} 1`)
}

func TestSyncService_Push_VersionOnly(t *testing.T) {
	svc, repo := newTestSyncService(t)
	repo.EXPECT().PushDocument(gomock.Any(), "user-1", map[string]json.RawMessage{}, int64(0)).Return(int64(1), nil)

	result, err := svc.Push(context.Background(), "user-1", models.SyncPush{Version: versionPtr(0)})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Version)
}

func TestSyncService_Push_Conflict(t *testing.T) {
	svc, repo := newTestSyncService(t)
	repo.EXPECT().PushDocument(gomock.Any(), "user-1", gomock.Any(), int64(2)).
		Return(int64(0), &store.VersionConflictError{ServerVersion: 7})

	_, err := svc.Push(context.Background(), "user-1", models.SyncPush{Contacts: json.RawMessage(`[]`), Version: versionPtr(2)})

	require.ErrorIs(t, err, ErrVersionConflict)
	var conflict *VersionConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(7), conflict.ServerVersion)
	assert.Contains(t, scrapeMetrics(t, svc.metrics), `timi_sync_push_total{result="conflict"} 1`)
}

func TestSyncService_Push_InvalidVersion(t *testing.T) {
	tests := []struct {
		name    string
		push    models.SyncPush
		wantErr error
	}{
		{name: "missing", push: models.SyncPush{Contacts: json.RawMessage(`[]`)}, wantErr: ErrMissingVersion},
		{name: "negative", push: models.SyncPush{Version: versionPtr(-1)}, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestSyncService(t)

			_, err := svc.Push(context.Background(), "user-1", tt.push)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSyncService_Push_StoreErrors(t *testing.T) {
	dbErr := errors.New("deadlock")

	tests := []struct {
		name     string
		storeErr error
		wantErr  error
	}{
		{name: "user vanished", storeErr: store.ErrUserNotFound, wantErr: ErrNotFound},
		{name: "database failure", storeErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestSyncService(t)
			repo.EXPECT().PushDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), tt.storeErr)

			_, err := svc.Push(context.Background(), "user-1", models.SyncPush{Version: versionPtr(1)})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, scrapeMetrics(t, svc.metrics), `timi_sync_push_total{result="error"} 1`)
		})
	}
}
