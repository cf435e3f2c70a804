package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "timi-sync-test"
)

var testNow = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

// fixedID hands out the same identifier every time.
type fixedID string

func (f fixedID) Generate() string { return string(f) }

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

func fixedNow() time.Time { return testNow }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func scrapeMetrics(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}
