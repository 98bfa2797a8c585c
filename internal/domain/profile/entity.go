// internal/domain/profile/entity.go
package profile

import (
	"errors"
	"strings"
)

var (
	ErrNotFound    = errors.New("profile not found")
	ErrMissingName = errors.New("missing name")
)

// Profile is the users/{uid} document.
type Profile struct {
	UserID  string
	Name    string // nombre
	Phone   string // telefono
	Address string // direccion
	Email   string // email
}

// Validate: nombre is the only required field.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// UserMessage maps profile errors to operator-facing text.
func UserMessage(err error) string {
	if errors.Is(err, ErrMissingName) {
		return "El nombre es obligatorio"
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
