package handlers

import (
	"encoding/json"
	"net/http"

	"bragboard/internal/middleware"

	"github.com/gorilla/mux"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	shoutoutID := mux.Vars(r)["id"]

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.Add(r.Context(), shoutoutID, userID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	shoutoutID := mux.Vars(r)["id"]

	comments, err := h.CommentService.List(r.Context(), shoutoutID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, comments, http.StatusOK)
}
