// internal/application/usecase/defect_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	defdom "texia/internal/domain/defect"
)

type fakeDefectRepo struct {
	created   []defdom.Defect
	recent    []defdom.Defect
	createErr error
	lastLimit int
}

func (f *fakeDefectRepo) Create(_ context.Context, d defdom.Defect) (defdom.Defect, error) {
	if f.createErr != nil {
		return defdom.Defect{}, f.createErr
	}
	d.ID = "generated"
	f.created = append(f.created, d)
	return d, nil
}

func (f *fakeDefectRepo) ListRecentByReporter(_ context.Context, _ string, limit int) ([]defdom.Defect, error) {
	f.lastLimit = limit
	return f.recent, nil
}

type fakeAlertSender struct {
	sent []defdom.Defect
	err  error
}

func (f *fakeAlertSender) SendDefectAlert(_ context.Context, d defdom.Defect) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, d)
	return f.err
}

func validDefectInput() defdom.Input {
	return defdom.Input{
		OrderNumber:    "ORD-101",
		DefectType:     "Mancha en tela",
		MetersAffected: "12",
		Description:    "mancha de aceite en el borde",
	}
}

func TestReportValidationFailureWritesNothing(t *testing.T) {
	repo := &fakeDefectRepo{}
	uc := NewDefectUsecase(repo, &fakeAlertSender{})

	in := validDefectInput()
	in.Description = "   "

	_, err := uc.Report(context.Background(), in, "u1", "María")
	require.Error(t, err)
	assert.Equal(t, "Ingrese una descripción", defdom.UserMessage(err))
	assert.Empty(t, repo.created, "no write on validation failure")
}

func TestReportPersistsWithReporterAndDefaults(t *testing.T) {
	repo := &fakeDefectRepo{}
	uc := NewDefectUsecase(repo, nil)

	got, err := uc.Report(context.Background(), validDefectInput(), "u1", "María")
	require.NoError(t, err)

	assert.Equal(t, "generated", got.ID)
	assert.Equal(t, "u1", got.ReporterID)
	assert.Equal(t, "María", got.ReporterName)
	assert.Equal(t, defdom.DefaultSeverity, got.Severity)
	assert.Equal(t, "REPORTADO", got.Status)
}

func TestReportCriticalSeverityFiresAlert(t *testing.T) {
	repo := &fakeDefectRepo{}
	alert := &fakeAlertSender{}
	uc := NewDefectUsecase(repo, alert)

	in := validDefectInput()
	in.Severity = defdom.SeverityCritical

	_, err := uc.Report(context.Background(), in, "u1", "María")
	require.NoError(t, err)
	require.Len(t, alert.sent, 1)
	assert.Equal(t, "ORD-101", alert.sent[0].OrderNumber)
}

func TestReportNonCriticalSeverityStaysQuiet(t *testing.T) {
	alert := &fakeAlertSender{}
	uc := NewDefectUsecase(&fakeDefectRepo{}, alert)

	_, err := uc.Report(context.Background(), validDefectInput(), "u1", "María")
	require.NoError(t, err)
	assert.Empty(t, alert.sent)
}

func TestReportAlertFailureDoesNotFailSubmission(t *testing.T) {
	alert := &fakeAlertSender{err: errors.New("sendgrid send failed: status=401")}
	uc := NewDefectUsecase(&fakeDefectRepo{}, alert)

	in := validDefectInput()
	in.Severity = defdom.SeverityCritical

	_, err := uc.Report(context.Background(), in, "u1", "María")
	assert.NoError(t, err)
}

func TestReportSurfacesStoreError(t *testing.T) {
	boom := errors.New("rpc error: permission denied")
	uc := NewDefectUsecase(&fakeDefectRepo{createErr: boom}, nil)

	_, err := uc.Report(context.Background(), validDefectInput(), "u1", "María")
	assert.ErrorIs(t, err, boom)
}

func TestRecentReportsCapsAtFive(t *testing.T) {
	repo := &fakeDefectRepo{}
	uc := NewDefectUsecase(repo, nil)

	_, err := uc.RecentReports(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastLimit)
}
