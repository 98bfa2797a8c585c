// internal/adapters/in/http/handlers/catalog_handler.go
package handlers

import (
	"net/http"

	query "texia/internal/application/query"
)

// CatalogHandler serves GET /telas with search/categoria/orden query
// parameters.
type CatalogHandler struct {
	q *query.CatalogQuery
}

func NewCatalogHandler(q *query.CatalogQuery) http.Handler {
	return &CatalogHandler{q: q}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	p := query.CatalogParams{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("categoria"),
		Sort:     r.URL.Query().Get("orden"),
	}

	out, err := h.q.List(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
