// internal/adapters/in/http/handlers/defect_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"texia/internal/adapters/in/http/middleware"
	querydto "texia/internal/application/query/dto"
	usecase "texia/internal/application/usecase"
	defdom "texia/internal/domain/defect"
)

// DefectHandler serves the quality-report endpoints:
//
//   - POST /defectos            (submit a report)
//   - GET  /defectos/recientes  (reporter's last five)
type DefectHandler struct {
	uc *usecase.DefectUsecase
}

func NewDefectHandler(uc *usecase.DefectUsecase) http.Handler {
	return &DefectHandler{uc: uc}
}

type defectRequest struct {
	NumeroOrden     string `json:"numeroOrden"`
	TipoDefecto     string `json:"tipoDefecto"`
	Descripcion     string `json:"descripcion"`
	Gravedad        string `json:"gravedad"`
	MetrosAfectados string `json:"metrosAfectados"`
}

func (h *DefectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/defectos":
		h.report(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/defectos/recientes"):
		h.recent(w, r)
	default:
		notFound(w)
	}
}

func (h *DefectHandler) report(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	var req defectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	in := defdom.Input{
		OrderNumber:    req.NumeroOrden,
		DefectType:     req.TipoDefecto,
		Description:    req.Descripcion,
		Severity:       req.Gravedad,
		MetersAffected: req.MetrosAfectados,
	}

	created, err := h.uc.Report(r.Context(), in, uid, middleware.CurrentDisplayName(r))
	if err != nil {
		writeDefectErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDefectRow(created))
}

func (h *DefectHandler) recent(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.CurrentUID(r)
	if !ok {
		unauthorized(w)
		return
	}

	items, err := h.uc.RecentReports(r.Context(), uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]querydto.DefectRowDTO, 0, len(items))
	for _, d := range items {
		rows = append(rows, toDefectRow(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"defectos": rows, "total": len(rows)})
}

func toDefectRow(d defdom.Defect) querydto.DefectRowDTO {
	return querydto.DefectRowDTO{
		ID:              d.ID,
		NumeroOrden:     d.OrderNumber,
		TipoDefecto:     d.DefectType,
		Descripcion:     d.Description,
		Gravedad:        d.Severity,
		MetrosAfectados: d.MetersAffected,
		Fecha:           d.ReportedAt,
		NombreUsuario:   d.ReporterName,
		Estado:          d.Status,
	}
}

func writeDefectErr(w http.ResponseWriter, err error) {
	if defdom.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, defdom.UserMessage(err))
		return
	}
	// store rejection: the message travels verbatim so the operator
	// sees what the remote said
	writeError(w, http.StatusBadGateway, err.Error())
}
