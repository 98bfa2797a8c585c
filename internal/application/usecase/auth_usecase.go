// internal/application/usecase/auth_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// Sign-up form sentinels, in check order. The messages operators see
// live in AuthUserMessage.
var (
	ErrAuthMissingFields    = errors.New("missing sign-up fields")
	ErrAuthPasswordMismatch = errors.New("passwords do not match")
	ErrAuthPasswordTooShort = errors.New("password shorter than 6 chars")
)

// minPasswordLen matches the provider-side minimum so the check fails
// locally before a doomed round trip.
const minPasswordLen = 6

// Session is the signed-in state handed back to the client.
type Session struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// CredentialSignIn exchanges email+password for a Session. Implemented
// by the Identity Toolkit REST client.
type CredentialSignIn interface {
	SignInWithPassword(ctx context.Context, email, password string) (Session, error)
}

// AuthUsecase wraps account creation, sign-in and sign-out. The admin
// client handles create/revoke; password checks need the REST flow.
type AuthUsecase struct {
	admin  *fbauth.Client
	signer CredentialSignIn
}

func NewAuthUsecase(admin *fbauth.Client, signer CredentialSignIn) *AuthUsecase {
	return &AuthUsecase{admin: admin, signer: signer}
}

// SignUp runs the form checks in their fixed order, creates the
// account and signs the new user straight in.
func (uc *AuthUsecase) SignUp(ctx context.Context, email, password, confirm string) (Session, error) {
	email = strings.TrimSpace(email)
	switch {
	case email == "" || password == "" || confirm == "":
		return Session{}, ErrAuthMissingFields
	case password != confirm:
		return Session{}, ErrAuthPasswordMismatch
	case len(password) < minPasswordLen:
		return Session{}, ErrAuthPasswordTooShort
	}

	if uc.admin == nil {
		return Session{}, errors.New("auth admin client is not configured")
	}

	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	u, err := uc.admin.CreateUser(ctx, params)
	if err != nil {
		return Session{}, err
	}
	log.Printf("[auth] user created uid=%s", u.UID)

	if uc.signer == nil {
		return Session{UID: u.UID, Email: email}, nil
	}
	return uc.signer.SignInWithPassword(ctx, email, password)
}

// SignIn checks both fields are present and delegates to the
// credential flow; provider rejections pass through verbatim.
func (uc *AuthUsecase) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrAuthMissingFields
	}
	if uc.signer == nil {
		return Session{}, errors.New("auth sign-in client is not configured")
	}
	return uc.signer.SignInWithPassword(ctx, email, password)
}

// SignOut revokes the user's refresh tokens. Issued ID tokens stay
// valid until they expire; revocation stops new ones.
func (uc *AuthUsecase) SignOut(ctx context.Context, uid string) error {
	if uc.admin == nil {
		return errors.New("auth admin client is not configured")
	}
	return uc.admin.RevokeRefreshTokens(ctx, uid)
}

// AuthUserMessage maps the sign-up sentinels to the operator-facing
// Spanish messages.
func AuthUserMessage(err error) string {
	switch {
	case errors.Is(err, ErrAuthMissingFields):
		return "Complete todos los campos"
	case errors.Is(err, ErrAuthPasswordMismatch):
		return "Las contraseñas no coinciden"
	case errors.Is(err, ErrAuthPasswordTooShort):
		return "Mínimo 6 caracteres"
	case err == nil:
		return ""
	}
	return err.Error()
}

// IsAuthValidationError reports whether err is a local form-check
// failure (nothing reached the provider).
func IsAuthValidationError(err error) bool {
	return errors.Is(err, ErrAuthMissingFields) ||
		errors.Is(err, ErrAuthPasswordMismatch) ||
		errors.Is(err, ErrAuthPasswordTooShort)
}
