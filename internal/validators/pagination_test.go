package validators

import (
	"net/url"
	"testing"

	"github.com/MKhiriev/timi-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.PageRequest
	}{
		{name: "defaults", query: "", want: models.PageRequest{Page: 1, Limit: 20}},
		{name: "explicit", query: "page=3&limit=10", want: models.PageRequest{Page: 3, Limit: 10}},
		{name: "limit clamped", query: "limit=500", want: models.PageRequest{Page: 1, Limit: 50}},
		{name: "negative values clamp to one", query: "page=-2&limit=-5", want: models.PageRequest{Page: 1, Limit: 1}},
		{name: "zero falls back", query: "page=0&limit=0", want: models.PageRequest{Page: 1, Limit: 20}},
		{name: "non-numeric falls back", query: "page=abc&limit=x1", want: models.PageRequest{Page: 1, Limit: 20}},
		{name: "search trimmed", query: "search=%20bob%20", want: models.PageRequest{Page: 1, Limit: 20, Search: "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ParsePageRequest(query))
		})
	}
}
