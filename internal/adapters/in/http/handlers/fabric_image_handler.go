// internal/adapters/in/http/handlers/fabric_image_handler.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"texia/internal/adapters/in/http/middleware"
)

// FabricImageIssuer checks a stored tela image and issues a short-lived
// view URL for it.
type FabricImageIssuer interface {
	Exists(ctx context.Context, storedPath string) (bool, error)
	IssueSignedViewURL(ctx context.Context, storedPath string) (string, error)
}

// FabricImageHandler serves GET /telas/imagen?path=<objectPath>.
// The catalog list carries public URLs; this endpoint is for buckets
// that are not world-readable.
type FabricImageHandler struct {
	images FabricImageIssuer
}

func NewFabricImageHandler(images FabricImageIssuer) http.Handler {
	return &FabricImageHandler{images: images}
}

func (h *FabricImageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if _, ok := middleware.CurrentUID(r); !ok {
		unauthorized(w)
		return
	}

	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		writeError(w, http.StatusBadRequest, "Indique la imagen")
		return
	}

	ok, err := h.images.Exists(r.Context(), path)
	if err != nil {
		log.Printf("[fabric_image] exists path=%s: %v", path, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if !ok {
		notFound(w)
		return
	}

	url, err := h.images.IssueSignedViewURL(r.Context(), path)
	if err != nil {
		log.Printf("[fabric_image] sign path=%s: %v", path, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
