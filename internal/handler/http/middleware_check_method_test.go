// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPINotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		as     *models.User
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/does-not-exist"},
		{name: "unknown nested path", method: http.MethodPost, path: "/api/auth/refresh"},
		{name: "known path wrong method", method: http.MethodDelete, path: "/api/auth/login"},
		{name: "authenticated sync with PATCH", method: http.MethodPatch, path: "/api/sync", as: &testUser},
		{name: "authenticated unknown sync path", method: http.MethodGet, path: "/api/sync/history", as: &testUser},
		{name: "admin with wrong method", method: http.MethodPost, path: "/api/admin/stats", as: &testAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestServices(t)
			bearer := ""
			if tt.as != nil {
				mocks.authenticateAs(*tt.as)
				bearer = testBearer
			}

			rec := serve(t, newTestRouter(t, mocks), tt.method, tt.path, "", bearer)

			require.Equal(t, http.StatusNotFound, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, CodeNotFound, body.Code)
			assert.Equal(t, "API route not found", body.Error)
		})
	}
}

// Protected subtrees authenticate before resolving the route, so anonymous
// callers learn nothing about which paths or methods exist there.
func TestAPINotFound_ProtectedSubtreeNeedsAuth(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "sync with PATCH", method: http.MethodPatch, path: "/api/sync"},
		{name: "unknown sync path", method: http.MethodGet, path: "/api/sync/history"},
		{name: "admin with wrong method", method: http.MethodPost, path: "/api/admin/stats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestRouter(t, newTestServices(t)), tt.method, tt.path, "", "")

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, CodeUnauthorized, decodeError(t, rec).Code)
		})
	}
}
