// internal/domain/task/repository_port.go
package task

import "context"

// RepositoryPort is the outbound port for the "tareas" collection.
type RepositoryPort interface {
	// ListByAssignee returns tasks assigned to userID.
	// status: exact-match estado predicate pushed to the store;
	// empty means no status predicate.
	// limit: result-count cap; <= 0 means uncapped.
	ListByAssignee(ctx context.Context, userID string, status string, limit int) ([]Task, error)
}
