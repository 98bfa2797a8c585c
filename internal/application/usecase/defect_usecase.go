// internal/application/usecase/defect_usecase.go
package usecase

import (
	"context"
	"log"

	defdom "texia/internal/domain/defect"
)

// DefectRepository is the persistence contract for quality reports.
type DefectRepository interface {
	Create(ctx context.Context, d defdom.Defect) (defdom.Defect, error)
	ListRecentByReporter(ctx context.Context, userID string, limit int) ([]defdom.Defect, error)
}

// DefectAlertSender notifies supervisors about a critical report.
type DefectAlertSender interface {
	SendDefectAlert(ctx context.Context, d defdom.Defect) error
}

// recentDefectCap bounds the "recent reports" list on the form screen.
const recentDefectCap = 5

// DefectUsecase handles report submission and the reporter's recent
// list. alert may be nil; critical reports then go out unannounced.
type DefectUsecase struct {
	repo  DefectRepository
	alert DefectAlertSender
}

func NewDefectUsecase(repo DefectRepository, alert DefectAlertSender) *DefectUsecase {
	return &DefectUsecase{repo: repo, alert: alert}
}

// Report validates the form and appends the report. On a validation
// failure nothing is written and the sentinel carries the message for
// the operator. A CRÍTICA report additionally fires an alert mail;
// mail failure is logged and never fails the submission.
func (uc *DefectUsecase) Report(ctx context.Context, in defdom.Input, reporterID, reporterName string) (defdom.Defect, error) {
	d, err := defdom.New(in, reporterID, reporterName)
	if err != nil {
		return defdom.Defect{}, err
	}

	created, err := uc.repo.Create(ctx, d)
	if err != nil {
		return defdom.Defect{}, err
	}

	if created.Severity == defdom.SeverityCritical && uc.alert != nil {
		if err := uc.alert.SendDefectAlert(ctx, created); err != nil {
			log.Printf("[defect] WARN: alert mail for order=%s failed: %v", created.OrderNumber, err)
		}
	}
	return created, nil
}

// RecentReports returns the reporter's latest submissions, newest
// first, capped at five.
func (uc *DefectUsecase) RecentReports(ctx context.Context, reporterID string) ([]defdom.Defect, error) {
	return uc.repo.ListRecentByReporter(ctx, reporterID, recentDefectCap)
}
