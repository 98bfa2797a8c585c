// internal/application/query/orders_query.go
package query

import (
	"context"
	"errors"
	"strings"

	querydto "texia/internal/application/query/dto"
	taskdom "texia/internal/domain/task"
)

// ============================================================
// Query Service (assigned orders list)
// - estado and search narrow in memory; the store order is preserved
// ============================================================

type OrdersParams struct {
	Search string
	Status string
}

type OrdersQuery struct {
	tasks taskReader
}

func NewOrdersQuery(tasks taskReader) *OrdersQuery {
	return &OrdersQuery{tasks: tasks}
}

func (q *OrdersQuery) List(ctx context.Context, userID string, p OrdersParams) (querydto.OrdersDTO, error) {
	if q == nil || q.tasks == nil {
		return querydto.OrdersDTO{}, errors.New("orders query repository is not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return querydto.OrdersDTO{}, errors.New("userId is missing")
	}

	all, err := q.tasks.ListByAssignee(ctx, userID, "", 0)
	if err != nil {
		return querydto.OrdersDTO{}, err
	}

	rows := filterTasks(all, p.Search, p.Status)
	out := make([]querydto.TaskRowDTO, 0, len(rows))
	for _, t := range rows {
		out = append(out, toTaskRow(t))
	}
	return querydto.OrdersDTO{Ordenes: out, Total: len(out)}, nil
}

// filterTasks runs the text pass and then the estado pass, keeping
// the incoming order. Search matches nombre or numeroOrden.
func filterTasks(items []taskdom.Task, search, status string) []taskdom.Task {
	search = strings.TrimSpace(search)
	out := make([]taskdom.Task, 0, len(items))
	for _, t := range items {
		if search != "" &&
			!containsFold(t.Name, search) &&
			!containsFold(t.OrderNumber, search) {
			continue
		}
		if !isAll(status) && t.Status != strings.TrimSpace(status) {
			continue
		}
		out = append(out, t)
	}
	return out
}
