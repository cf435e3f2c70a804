package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/timi-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	codeKicked          = "KICKED"
	codeVersionConflict = "VERSION_CONFLICT"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		body = models.ErrorResponse{Error: strings.TrimSpace(string(resp.Body()))}
	}
	if body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusConflict || body.Code == codeVersionConflict {
		conflict := &VersionConflictError{Message: body.Error}
		if body.ServerVersion != nil {
			conflict.ServerVersion = *body.ServerVersion
		}
		return conflict
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Code:       body.Code,
		Message:    body.Error,
		sentinel:   sentinelFor(resp.StatusCode(), body.Code),
	}
}

func sentinelFor(status int, code string) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		if code == codeKicked {
			return ErrSessionSuperseded
		}
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	}
	if status >= http.StatusInternalServerError {
		return ErrInternalServerError
	}
	return nil
}
