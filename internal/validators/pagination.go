package validators

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/timi-sync/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// ParsePageRequest reads page, limit and search from a query string.
// Missing or non-numeric values fall back to the defaults; out-of-range
// values are clamped.
func ParsePageRequest(query url.Values) models.PageRequest {
	page := parsePositive(query.Get("page"), DefaultPage)

	limit := parsePositive(query.Get("limit"), DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return models.PageRequest{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(query.Get("search")),
	}
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return fallback
	}
	if n < 1 {
		return 1
	}
	return n
}
