// internal/application/query/dashboard_query.go
package query

import (
	"context"
	"errors"
	"strings"

	querydto "texia/internal/application/query/dto"
	taskdom "texia/internal/domain/task"
)

// ============================================================
// Query Service (home dashboard read model)
// - counts and the produced-meters sum run over every assigned task
// - the row list is capped for the summary card
// ============================================================

// dashboardTaskCap bounds the task list on the dashboard card.
const dashboardTaskCap = 10

type taskReader interface {
	ListByAssignee(ctx context.Context, userID, status string, limit int) ([]taskdom.Task, error)
}

type DashboardQuery struct {
	tasks taskReader
}

func NewDashboardQuery(tasks taskReader) *DashboardQuery {
	return &DashboardQuery{tasks: tasks}
}

func (q *DashboardQuery) Summary(ctx context.Context, userID string) (querydto.DashboardDTO, error) {
	if q == nil || q.tasks == nil {
		return querydto.DashboardDTO{}, errors.New("dashboard query repository is not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return querydto.DashboardDTO{}, errors.New("userId is missing")
	}

	all, err := q.tasks.ListByAssignee(ctx, userID, "", 0)
	if err != nil {
		return querydto.DashboardDTO{}, err
	}

	out := querydto.DashboardDTO{Tareas: []querydto.TaskRowDTO{}}
	for _, t := range all {
		switch t.Status {
		case taskdom.StatusInProgress:
			out.EnCurso++
		case taskdom.StatusPending:
			out.Pendientes++
		case taskdom.StatusCompleted:
			out.MetrosProducidos += taskdom.MetersValue(t.Quantity)
		}
		if len(out.Tareas) < dashboardTaskCap {
			out.Tareas = append(out.Tareas, toTaskRow(t))
		}
	}
	return out, nil
}

func toTaskRow(t taskdom.Task) querydto.TaskRowDTO {
	return querydto.TaskRowDTO{
		ID:                t.ID,
		NumeroOrden:       t.OrderNumber,
		Nombre:            t.Name,
		TipoTela:          t.FabricType,
		Cantidad:          t.Quantity,
		TiempoRestante:    t.TimeLeft,
		Estado:            t.Status,
		Prioridad:         t.Priority,
		FechaCreacion:     t.CreatedAt,
		MetrosCompletados: t.Completed,
		FechaInicio:       t.StartedAt,
		FechaCompletado:   t.CompletedAt,
		TiempoTrabajado:   t.WorkedTime,
		Progreso:          t.Progress(),
	}
}
