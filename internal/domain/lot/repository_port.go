// internal/domain/lot/repository_port.go
package lot

import "context"

// RepositoryPort is the outbound port for "inventario_telas".
type RepositoryPort interface {
	// ListByUser returns every lot owned by userID with Status
	// already classified.
	ListByUser(ctx context.Context, userID string) ([]Lot, error)
}
