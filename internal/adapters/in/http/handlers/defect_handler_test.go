// internal/adapters/in/http/handlers/defect_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texia/internal/adapters/in/http/middleware"
	usecase "texia/internal/application/usecase"
	defdom "texia/internal/domain/defect"
)

type stubDefectRepo struct {
	created []defdom.Defect
	recent  []defdom.Defect
}

func (s *stubDefectRepo) Create(_ context.Context, d defdom.Defect) (defdom.Defect, error) {
	d.ID = "d-1"
	s.created = append(s.created, d)
	return d, nil
}

func (s *stubDefectRepo) ListRecentByReporter(context.Context, string, int) ([]defdom.Defect, error) {
	return s.recent, nil
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := middleware.WithIdentity(r.Context(), "u1", "maria@texia.pe", "María")
	return r.WithContext(ctx)
}

func TestDefectReportOK(t *testing.T) {
	repo := &stubDefectRepo{}
	h := NewDefectHandler(usecase.NewDefectUsecase(repo, nil))

	body := `{"numeroOrden":"ORD-9","tipoDefecto":"Agujeros","descripcion":"tres agujeros en el centro","metrosAfectados":"4"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPost, "/defectos", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "d-1", got["id"])
	assert.Equal(t, "REPORTADO", got["estado"])
	assert.Equal(t, "María", got["nombreUsuario"])
	assert.Equal(t, "MEDIA", got["gravedad"])

	require.Len(t, repo.created, 1)
	assert.Equal(t, "u1", repo.created[0].ReporterID)
}

func TestDefectReportValidationMessage(t *testing.T) {
	repo := &stubDefectRepo{}
	h := NewDefectHandler(usecase.NewDefectUsecase(repo, nil))

	body := `{"numeroOrden":"ORD-9","tipoDefecto":"Agujeros","metrosAfectados":"4","descripcion":"  "}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodPost, "/defectos", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Ingrese una descripción", got["error"])
	assert.Empty(t, repo.created)
}

func TestDefectReportRequiresIdentity(t *testing.T) {
	h := NewDefectHandler(usecase.NewDefectUsecase(&stubDefectRepo{}, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/defectos", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDefectRecentList(t *testing.T) {
	repo := &stubDefectRepo{recent: []defdom.Defect{
		{ID: "d-2", OrderNumber: "ORD-8", Status: "REPORTADO"},
		{ID: "d-1", OrderNumber: "ORD-7", Status: "REPORTADO"},
	}}
	h := NewDefectHandler(usecase.NewDefectUsecase(repo, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodGet, "/defectos/recientes", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Defectos []map[string]any `json:"defectos"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, "d-2", got.Defectos[0]["id"])
}

func TestDefectUnknownRouteIs404(t *testing.T) {
	h := NewDefectHandler(usecase.NewDefectUsecase(&stubDefectRepo{}, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(http.MethodDelete, "/defectos", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
