package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/service"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/models"
)

// Machine-readable error codes. Clients branch on these, never on messages.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeInvalidInviteCode = "INVALID_INVITE_CODE"
	CodeInviteCodeUsed    = "INVITE_CODE_USED"
	CodeInviteCodeExpired = "INVITE_CODE_EXPIRED"
	CodeUsernameTaken     = "USERNAME_TAKEN"
	CodeMissingVersion    = "MISSING_VERSION"
	CodeBadCredentials    = "BAD_CREDENTIALS"
	CodeWrongPassword     = "WRONG_PASSWORD"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeKicked            = "KICKED"
	CodeAccountBanned     = "ACCOUNT_BANNED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeVersionConflict   = "VERSION_CONFLICT"
	CodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	CodeInternal          = "INTERNAL_ERROR"
)

const internalErrorMessage = "internal server error"

type errorMapping struct {
	status int
	code   string
}

// errorStatusMap is checked in order; the first target matched with
// errors.Is wins.
var errorStatusMap = []struct {
	target error
	errorMapping
}{
	{ErrInvalidJSON, errorMapping{http.StatusBadRequest, CodeValidation}},
	{ErrBodyTooLarge, errorMapping{http.StatusRequestEntityTooLarge, CodePayloadTooLarge}},
	{ErrEmptyAuthorizationHeader, errorMapping{http.StatusUnauthorized, CodeUnauthorized}},
	{ErrInvalidAuthorizationHeader, errorMapping{http.StatusUnauthorized, CodeUnauthorized}},
	{ErrNoUserInContext, errorMapping{http.StatusUnauthorized, CodeUnauthorized}},
	{ErrAPIRouteNotFound, errorMapping{http.StatusNotFound, CodeNotFound}},

	{service.ErrValidation, errorMapping{http.StatusBadRequest, CodeValidation}},
	{service.ErrMissingVersion, errorMapping{http.StatusBadRequest, CodeMissingVersion}},
	{service.ErrInvalidInviteCode, errorMapping{http.StatusBadRequest, CodeInvalidInviteCode}},
	{service.ErrInviteCodeUsed, errorMapping{http.StatusBadRequest, CodeInviteCodeUsed}},
	{service.ErrInviteCodeExpired, errorMapping{http.StatusBadRequest, CodeInviteCodeExpired}},
	{service.ErrUsernameTaken, errorMapping{http.StatusBadRequest, CodeUsernameTaken}},

	{service.ErrBadCredentials, errorMapping{http.StatusUnauthorized, CodeBadCredentials}},
	{service.ErrWrongPassword, errorMapping{http.StatusUnauthorized, CodeWrongPassword}},
	{service.ErrInvalidToken, errorMapping{http.StatusUnauthorized, CodeInvalidToken}},
	{service.ErrTokenExpired, errorMapping{http.StatusUnauthorized, CodeTokenExpired}},
	{service.ErrUserNotFound, errorMapping{http.StatusUnauthorized, CodeUserNotFound}},
	{service.ErrSessionSuperseded, errorMapping{http.StatusUnauthorized, CodeKicked}},

	{service.ErrAccountBanned, errorMapping{http.StatusForbidden, CodeAccountBanned}},
	{service.ErrForbiddenOperation, errorMapping{http.StatusForbidden, CodeForbidden}},
	{service.ErrNotFound, errorMapping{http.StatusNotFound, CodeNotFound}},
	{service.ErrVersionConflict, errorMapping{http.StatusConflict, CodeVersionConflict}},
}

// errorMessages overrides the client-facing message of a mapped error.
var errorMessages = map[error]string{
	service.ErrVersionConflict: "version conflict, pull the latest data first",
	ErrAPIRouteNotFound:        "API route not found",
}

// classifyError returns the status, code and client-facing message for err.
// Unknown errors map to 500 and never leak their text.
func classifyError(err error) (int, string, string) {
	for _, entry := range errorStatusMap {
		if !errors.Is(err, entry.target) {
			continue
		}

		message, ok := errorMessages[entry.target]
		switch {
		case ok:
		case entry.target == service.ErrValidation:
			// carries the validator's reason
			message = err.Error()
		default:
			message = entry.target.Error()
		}
		return entry.status, entry.code, message
	}

	return http.StatusInternalServerError, CodeInternal, internalErrorMessage
}

func statusFromError(err error) int {
	status, _, _ := classifyError(err)
	return status
}

// writeError writes the JSON error body for err. Server-side failures are
// logged with their full chain; the client gets a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, code, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("code", code).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("code", code).Int("status", status).Msg("request rejected")
	}

	body := models.ErrorResponse{Error: message, Code: code}

	var conflict *service.VersionConflictError
	if errors.As(err, &conflict) {
		serverVersion := conflict.ServerVersion
		body.ServerVersion = &serverVersion
	}

	utils.WriteJSON(w, body, status)
}
