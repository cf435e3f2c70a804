package http

import (
	"net/http"

	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/internal/validators"
	"github.com/MKhiriev/timi-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.AdminService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page := validators.ParsePageRequest(r.URL.Query())

	users, err := h.services.AdminService.ListUsers(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) toggleBan(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.AdminService.ToggleBan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var reset models.PasswordReset
	if err := decodeBody(r, &reset); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AdminService.ResetPassword(r.Context(), chi.URLParam(r, "id"), reset); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "password reset"}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AdminService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "user deleted"}, http.StatusOK)
}

func (h *Handler) createInviteCodes(w http.ResponseWriter, r *http.Request) {
	var request models.CreateInviteCodesRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AdminService.CreateInviteCodes(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listInviteCodes(w http.ResponseWriter, r *http.Request) {
	page := validators.ParsePageRequest(r.URL.Query())

	codes, err := h.services.AdminService.ListInviteCodes(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, codes, http.StatusOK)
}

func (h *Handler) deleteInviteCode(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AdminService.DeleteInviteCode(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "invite code deleted"}, http.StatusOK)
}
