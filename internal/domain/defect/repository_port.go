// internal/domain/defect/repository_port.go
package defect

import "context"

// RepositoryPort is the outbound port for "defectos". Append-only:
// there is deliberately no update or delete.
type RepositoryPort interface {
	// Create persists a new report and returns it with the assigned
	// id and the server timestamp filled in.
	Create(ctx context.Context, d Defect) (Defect, error)

	// ListRecentByReporter returns the reporter's newest reports,
	// fecha descending, capped at limit.
	ListRecentByReporter(ctx context.Context, userID string, limit int) ([]Defect, error)
}
