package handlers

import (
	"encoding/json"
	"net/http"

	"bragboard/internal/middleware"
	"bragboard/internal/service"
)

// GetUsers returns the user directory used by tag pickers and name
// resolution.
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		WriteError(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		DisplayName    string `json:"displayName"`
		Department     string `json:"department"`
		AvatarURL      string `json:"avatarUrl"`
		JoiningDate    string `json:"joiningDate"`
		CurrentProject string `json:"currentProject"`
		Skills         string `json:"skills"`
		Experience     string `json:"experience"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), service.UpdateProfileRequest{
		UserID:         userID,
		DisplayName:    req.DisplayName,
		Department:     req.Department,
		AvatarURL:      req.AvatarURL,
		JoiningDate:    req.JoiningDate,
		CurrentProject: req.CurrentProject,
		Skills:         req.Skills,
		Experience:     req.Experience,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}
