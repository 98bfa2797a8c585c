// internal/adapters/in/http/handlers/progress_handler.go
package handlers

import (
	"net/http"

	"texia/internal/adapters/in/http/middleware"
	query "texia/internal/application/query"
)

// ProgressHandler serves GET /progreso. The estado parameter is a
// store-side predicate, not an in-memory filter.
type ProgressHandler struct {
	q *query.ProgressQuery
}

func NewProgressHandler(q *query.ProgressQuery) http.Handler {
	return &ProgressHandler{q: q}
}

func (h *ProgressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	out, err := h.q.Overview(r.Context(), uid, r.URL.Query().Get("estado"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
