// internal/domain/task/entity.go
package task

import (
	"strconv"
	"strings"
	"time"
)

// Known estado values for a production order. Documents may carry any
// other string; unrecognized values are preserved verbatim, never
// rejected.
const (
	StatusPending    = "PENDIENTE"
	StatusInProgress = "EN_CURSO"
	StatusCompleted  = "COMPLETADA"
)

// Known prioridad values. Same rule: unknown values pass through.
const (
	PriorityLow    = "BAJA"
	PriorityMedium = "MEDIA"
	PriorityHigh   = "ALTA"
	PriorityUrgent = "URGENTE"
)

// Document-level defaults for the "tareas" collection.
const (
	DefaultStatus     = StatusPending
	DefaultPriority   = PriorityMedium
	DefaultFabricType = "Sin especificar"
	DefaultQuantity   = "0 mts"
	DefaultTimeLeft   = "Sin tiempo"
	DefaultCompleted  = "0"
	DefaultWorkedTime = "0h"
)

// Task is one document of the "tareas" collection, assigned to a
// user. It carries both the order-summary fields (dashboard, orders
// list) and the progress fields (progress screen); the query layer
// projects the subset each view needs.
type Task struct {
	ID          string
	OrderNumber string // numeroOrden
	Name        string // nombre
	FabricType  string // tipoTela
	Quantity    string // cantidad, e.g. "120 mts"
	TimeLeft    string // tiempoRestante
	Status      string // estado
	Priority    string // prioridad
	CreatedAt   *time.Time

	Completed   string // metrosCompletados, e.g. "30 mts"
	StartedAt   *time.Time
	CompletedAt *time.Time
	WorkedTime  string // tiempoTrabajado, e.g. "6h"
}

// MetersValue extracts the integer meter count out of a free-form
// quantity string ("120 mts" → 120). Non-digits are stripped; an
// empty or unparsable remainder yields 0.
func MetersValue(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// ProgressPercent is round(100·completed/total) clamped to [0,100];
// a non-positive total yields 0.
func ProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := (completed*100 + total/2) / total
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Progress is the task's own percent: meters completed over meters
// ordered.
func (t Task) Progress() int {
	return ProgressPercent(MetersValue(t.Completed), MetersValue(t.Quantity))
}
