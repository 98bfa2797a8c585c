// internal/application/query/dto/task_dto.go
package dto

import "time"

// ============================================================
// DTOs (production tasks: dashboard / orders / progress)
// ============================================================

type TaskRowDTO struct {
	ID                string     `json:"id"`
	NumeroOrden       string     `json:"numeroOrden"`
	Nombre            string     `json:"nombre"`
	TipoTela          string     `json:"tipoTela"`
	Cantidad          string     `json:"cantidad"`
	TiempoRestante    string     `json:"tiempoRestante"`
	Estado            string     `json:"estado"`
	Prioridad         string     `json:"prioridad"`
	FechaCreacion     *time.Time `json:"fechaCreacion,omitempty"`
	MetrosCompletados string     `json:"metrosCompletados"`
	FechaInicio       *time.Time `json:"fechaInicio,omitempty"`
	FechaCompletado   *time.Time `json:"fechaCompletado,omitempty"`
	TiempoTrabajado   string     `json:"tiempoTrabajado"`
	Progreso          int        `json:"progreso"`
}

type DashboardDTO struct {
	Tareas           []TaskRowDTO `json:"tareas"`
	EnCurso          int          `json:"tareasEnCurso"`
	Pendientes       int          `json:"tareasPendientes"`
	MetrosProducidos int          `json:"metrosProducidos"`
}

type OrdersDTO struct {
	Ordenes []TaskRowDTO `json:"ordenes"`
	Total   int          `json:"total"`
}

// ProgressStatsDTO always covers the assignee's full task set, even
// when the row list is narrowed to one estado.
type ProgressStatsDTO struct {
	Completadas      int    `json:"completadas"`
	EnCurso          int    `json:"enCurso"`
	Pendientes       int    `json:"pendientes"`
	MetrosProducidos int    `json:"metrosProducidos"`
	PromedioProgreso int    `json:"promedioProgreso"`
	Eficiencia       string `json:"eficiencia"`
}

type ProgressDTO struct {
	Ordenes []TaskRowDTO     `json:"ordenes"`
	Stats   ProgressStatsDTO `json:"estadisticas"`
}
