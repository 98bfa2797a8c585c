// internal/adapters/in/http/handlers/orders_handler.go
package handlers

import (
	"net/http"

	"texia/internal/adapters/in/http/middleware"
	query "texia/internal/application/query"
)

// OrdersHandler serves GET /ordenes with search/estado parameters.
type OrdersHandler struct {
	q *query.OrdersQuery
}

func NewOrdersHandler(q *query.OrdersQuery) http.Handler {
	return &OrdersHandler{q: q}
}

func (h *OrdersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	p := query.OrdersParams{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("estado"),
	}

	out, err := h.q.List(r.Context(), uid, p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
