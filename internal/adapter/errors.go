package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAddress        = errors.New("empty server address")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrVersionConflict     = errors.New("version conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")

	// ErrSessionSuperseded also matches ErrUnauthorized.
	ErrSessionSuperseded = fmt.Errorf("%w: session superseded by another login", ErrUnauthorized)
)

// VersionConflictError is returned by Push when another client has written
// first. The caller should Pull, merge and retry with ServerVersion.
type VersionConflictError struct {
	ServerVersion int64
	Message       string
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s (server version %d)", e.Message, e.ServerVersion)
}

func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// APIError is a non-2xx server response. It unwraps to the sentinel matching
// its status and code.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	sentinel   error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
