package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/service"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The token from the "Authorization" header is checked by
// [service.AuthService.Authenticate], which verifies the signature and
// expiry and compares the token's session epoch with the stored one. On
// success the user's id and role are stored in the request context under
// [utils.UserIDCtxKey] and [utils.RoleCtxKey], and the request logger is
// tagged with them.
//
// Every rejection is a 401 with a machine-readable code, except a banned
// account, which gets 403 ACCOUNT_BANNED. A token outdated by a later login
// is reported as KICKED so clients can ask for a new login instead of
// retrying.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUser(r.Context(), user.ID, user.Role)
		ctx = logger.WithUser(ctx, user.ID, string(user.Role))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin rejects authenticated users without the admin role. It must
// run after auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserInContext)
			return
		}
		if role != models.RoleAdmin {
			writeError(w, r, fmt.Errorf("%w: admin role required", service.ErrForbiddenOperation))
			return
		}

		next.ServeHTTP(w, r)
	})
}
