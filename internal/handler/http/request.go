package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/timi-sync/internal/utils"
)

// decodeBody decodes the JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r.Body, dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// userIDFromRequest returns the id the auth middleware stored.
func userIDFromRequest(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
