// internal/domain/fabric/repository_port.go
package fabric

import "context"

// RepositoryPort is the outbound port for the "telas" collection.
// Firestore implements it under adapters/out; the application layer
// only sees this interface.
type RepositoryPort interface {
	// ListAll returns every listing. The catalog is small and is
	// filtered/sorted in memory by the query service.
	ListAll(ctx context.Context) ([]Fabric, error)
}
