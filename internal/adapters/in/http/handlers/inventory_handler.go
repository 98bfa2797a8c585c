// internal/adapters/in/http/handlers/inventory_handler.go
package handlers

import (
	"net/http"

	"texia/internal/adapters/in/http/middleware"
	query "texia/internal/application/query"
)

// InventoryHandler serves GET /inventario scoped to the signed-in
// user's lots.
type InventoryHandler struct {
	q *query.InventoryQuery
}

func NewInventoryHandler(q *query.InventoryQuery) http.Handler {
	return &InventoryHandler{q: q}
}

func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	p := query.InventoryParams{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("estado"),
		Sort:   r.URL.Query().Get("orden"),
	}

	out, err := h.q.List(r.Context(), uid, p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
