// internal/domain/profile/repository_port.go
package profile

import "context"

// RepositoryPort is the outbound port for users/{uid}.
type RepositoryPort interface {
	// Get returns the stored profile; ErrNotFound when the document
	// does not exist yet.
	Get(ctx context.Context, userID string) (Profile, error)

	// Save merge-upserts the profile document (the single non-append
	// write in the system).
	Save(ctx context.Context, p Profile) error
}
