package handlers

import (
	"net/http"
	"strconv"
)

// RecentActivitiesHandler — лента последних событий, GET /api/activities/recent.
// limit по умолчанию 5, потолок 100.
func (h *Handler) RecentActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	items, err := h.Store.RecentActivities(r.Context(), limit)
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// DashboardStatsHandler — счётчики для дашборда
func (h *Handler) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.DashboardStats(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
