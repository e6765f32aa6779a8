package handlers

import (
	"net/http"
)

// GetDashboardStats backs the admin dashboard cards. Route is gated to
// admin/superadmin by middleware.
func (h *Handlers) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
