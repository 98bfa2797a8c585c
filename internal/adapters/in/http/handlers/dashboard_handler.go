// internal/adapters/in/http/handlers/dashboard_handler.go
package handlers

import (
	"net/http"

	"texia/internal/adapters/in/http/middleware"
	query "texia/internal/application/query"
)

// DashboardHandler serves GET /dashboard.
type DashboardHandler struct {
	q *query.DashboardQuery
}

func NewDashboardHandler(q *query.DashboardQuery) http.Handler {
	return &DashboardHandler{q: q}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	out, err := h.q.Summary(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
