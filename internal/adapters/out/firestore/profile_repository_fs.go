// internal/adapters/out/firestore/profile_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	profdom "texia/internal/domain/profile"
)

// ProfileRepositoryFS implements profile.RepositoryPort on
// users/{uid}.
type ProfileRepositoryFS struct {
	Client *firestore.Client
}

func NewProfileRepositoryFS(client *firestore.Client) *ProfileRepositoryFS {
	return &ProfileRepositoryFS{Client: client}
}

var _ profdom.RepositoryPort = (*ProfileRepositoryFS)(nil)

func (r *ProfileRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

func (r *ProfileRepositoryFS) Get(ctx context.Context, userID string) (profdom.Profile, error) {
	if r.Client == nil {
		return profdom.Profile{}, errors.New("firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return profdom.Profile{}, profdom.ErrNotFound
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return profdom.Profile{}, profdom.ErrNotFound
		}
		return profdom.Profile{}, err
	}

	return profileFromDoc(uid, snap.Data()), nil
}

// Save merge-upserts the document so fields written by other tools
// survive a partial profile update.
func (r *ProfileRepositoryFS) Save(ctx context.Context, p profdom.Profile) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}

	uid := strings.TrimSpace(p.UserID)
	if uid == "" {
		return profdom.ErrNotFound
	}

	data := map[string]any{
		"nombre":    strings.TrimSpace(p.Name),
		"telefono":  strings.TrimSpace(p.Phone),
		"direccion": strings.TrimSpace(p.Address),
		"email":     strings.TrimSpace(p.Email),
	}

	_, err := r.col().Doc(uid).Set(ctx, data, firestore.MergeAll)
	return err
}

func profileFromDoc(uid string, data map[string]any) profdom.Profile {
	if data == nil {
		data = map[string]any{}
	}
	return profdom.Profile{
		UserID:  uid,
		Name:    docStr(data, "nombre"),
		Phone:   docStr(data, "telefono"),
		Address: docStr(data, "direccion"),
		Email:   docStr(data, "email"),
	}
}
