// internal/adapters/in/http/handlers/profile_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"texia/internal/adapters/in/http/middleware"
	usecase "texia/internal/application/usecase"
	profdom "texia/internal/domain/profile"
)

// ProfileHandler serves GET /perfil and PUT /perfil.
type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) http.Handler {
	return &ProfileHandler{uc: uc}
}

type profileBody struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Email     string `json:"email"`
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	p, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		if errors.Is(err, profdom.ErrNotFound) {
			// first visit: serve an empty profile pre-filled with the
			// token's email so the form starts with something
			email, _ := middleware.CurrentEmail(r)
			writeJSON(w, http.StatusOK, profileBody{Email: email})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profileBody{
		Nombre:    p.Name,
		Telefono:  p.Phone,
		Direccion: p.Address,
		Email:     p.Email,
	})
}

func (h *ProfileHandler) put(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	var body profileBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	p := profdom.Profile{
		UserID:  uid,
		Name:    body.Nombre,
		Phone:   body.Telefono,
		Address: body.Direccion,
		Email:   body.Email,
	}
	if err := h.uc.Save(r.Context(), p); err != nil {
		if errors.Is(err, profdom.ErrMissingName) {
			writeError(w, http.StatusBadRequest, profdom.UserMessage(err))
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
