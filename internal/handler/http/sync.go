package http

import (
	"net/http"

	"github.com/MKhiriev/timi-sync/internal/utils"
	"github.com/MKhiriev/timi-sync/models"
)

// pull serves GET /api/sync and its legacy alias GET /api/sync/pull.
func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	document, err := h.services.SyncService.Pull(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, document, http.StatusOK)
}

// push serves PUT /api/sync.
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	result, ok := h.doPush(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// legacyPush serves POST /api/sync/push, whose success body also carries a
// message.
func (h *Handler) legacyPush(w http.ResponseWriter, r *http.Request) {
	result, ok := h.doPush(w, r)
	if !ok {
		return
	}

	result.Message = "sync succeeded"
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) doPush(w http.ResponseWriter, r *http.Request) (models.SyncPushResult, bool) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return models.SyncPushResult{}, false
	}

	var push models.SyncPush
	if err = decodeBody(r, &push); err != nil {
		writeError(w, r, err)
		return models.SyncPushResult{}, false
	}

	result, err := h.services.SyncService.Push(r.Context(), userID, push)
	if err != nil {
		writeError(w, r, err)
		return models.SyncPushResult{}, false
	}

	return result, true
}
