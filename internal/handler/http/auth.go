package http

import (
	"net/http"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var registration models.Registration
	if err := decodeBody(r, &registration); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AuthService.Register(r.Context(), registration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("login attempt")

	response, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var change models.PasswordChange
	if err = decodeBody(r, &change); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), userID, change); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "password changed, please log in again"}, http.StatusOK)
}
