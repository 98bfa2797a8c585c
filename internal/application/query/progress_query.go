// internal/application/query/progress_query.go
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"

	querydto "texia/internal/application/query/dto"
	taskdom "texia/internal/domain/task"
)

// ============================================================
// Query Service (production progress read model)
// - estado narrows at the STORE, not in memory: a filtered view is a
//   fresh query with the estado predicate, "TODAS" omits it
// - stats always run over the full set, so they need a second fetch
//   when the rows are narrowed
// ============================================================

type ProgressQuery struct {
	tasks taskReader
}

func NewProgressQuery(tasks taskReader) *ProgressQuery {
	return &ProgressQuery{tasks: tasks}
}

func (q *ProgressQuery) Overview(ctx context.Context, userID, status string) (querydto.ProgressDTO, error) {
	if q == nil || q.tasks == nil {
		return querydto.ProgressDTO{}, errors.New("progress query repository is not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return querydto.ProgressDTO{}, errors.New("userId is missing")
	}

	status = strings.TrimSpace(status)
	if isAll(status) {
		status = ""
	}

	rows, err := q.tasks.ListByAssignee(ctx, userID, status, 0)
	if err != nil {
		return querydto.ProgressDTO{}, err
	}

	all := rows
	if status != "" {
		if all, err = q.tasks.ListByAssignee(ctx, userID, "", 0); err != nil {
			return querydto.ProgressDTO{}, err
		}
	}

	out := querydto.ProgressDTO{
		Ordenes: make([]querydto.TaskRowDTO, 0, len(rows)),
		Stats:   progressStats(all),
	}
	for _, t := range rows {
		out.Ordenes = append(out.Ordenes, toTaskRow(t))
	}
	return out, nil
}

// progressStats aggregates the assignee's full task set: status
// counts, meters completed on finished orders, the mean progress
// percent and the completion rate.
func progressStats(items []taskdom.Task) querydto.ProgressStatsDTO {
	var s querydto.ProgressStatsDTO
	sum := 0
	for _, t := range items {
		switch t.Status {
		case taskdom.StatusCompleted:
			s.Completadas++
			s.MetrosProducidos += taskdom.MetersValue(t.Completed)
		case taskdom.StatusInProgress:
			s.EnCurso++
		case taskdom.StatusPending:
			s.Pendientes++
		}
		sum += t.Progress()
	}
	if n := len(items); n > 0 {
		s.PromedioProgreso = (sum + n/2) / n
	}
	s.Eficiencia = fmt.Sprintf("%d%%", taskdom.ProgressPercent(s.Completadas, len(items)))
	return s
}
