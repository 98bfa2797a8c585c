// internal/adapters/in/http/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"texia/internal/adapters/in/http/middleware"
	usecase "texia/internal/application/usecase"
)

// AuthHandler serves /auth/register, /auth/login and /auth/logout.
// Register and login are public; logout runs behind the auth
// middleware because it needs the verified uid.
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	sess, err := h.uc.SignUp(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		writeAuthErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	sess, err := h.uc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// POST /auth/logout (authed)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	if err := h.uc.SignOut(r.Context(), uid); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}

func writeAuthErr(w http.ResponseWriter, err error) {
	if usecase.IsAuthValidationError(err) {
		writeError(w, http.StatusBadRequest, usecase.AuthUserMessage(err))
		return
	}
	// provider rejections (wrong password, duplicate email) pass
	// through verbatim
	writeError(w, http.StatusUnauthorized, err.Error())
}
