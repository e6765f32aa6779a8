package handlers

import (
	"encoding/json"
	"net/http"

	"bragboard/internal/middleware"

	"github.com/gorilla/mux"
)

// ToggleReaction adds the reaction if the viewer has not reacted with this
// emoji yet, removes it otherwise.
func (h *Handlers) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	shoutoutID := mux.Vars(r)["id"]

	var req struct {
		Emoji string `json:"emoji" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.ReactionService.Toggle(r.Context(), shoutoutID, userID, req.Emoji)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, result, http.StatusOK)
}
