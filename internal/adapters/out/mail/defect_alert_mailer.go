// internal/adapters/out/mail/defect_alert_mailer.go
package mail

import (
	"context"
	"fmt"
	"strings"

	defdom "texia/internal/domain/defect"
)

// DefectAlertMailerPort is the outbound port the application layer
// uses to notify supervisors about critical defect reports.
type DefectAlertMailerPort interface {
	SendDefectAlert(ctx context.Context, d defdom.Defect) error
}

// EmailClient abstracts the concrete mail transport (SendGrid, SMTP).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// DefectAlertMailer sends a plain-text alert for every CRÍTICA defect
// report. Delivery is best-effort; the caller decides what a failure
// means.
type DefectAlertMailer struct {
	client      EmailClient
	fromAddress string
	toAddress   string
}

func NewDefectAlertMailer(client EmailClient, fromAddress, toAddress string) *DefectAlertMailer {
	return &DefectAlertMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		toAddress:   strings.TrimSpace(toAddress),
	}
}

var _ DefectAlertMailerPort = (*DefectAlertMailer)(nil)

func (m *DefectAlertMailer) SendDefectAlert(ctx context.Context, d defdom.Defect) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("defect alert mailer is not configured")
	}

	subject := fmt.Sprintf("[TexIA] Defecto crítico en orden %s", d.OrderNumber)

	body := fmt.Sprintf(
		`Se registró un defecto de gravedad CRÍTICA.

  Orden          : %s
  Tipo de defecto: %s
  Metros afectados: %s
  Reportado por  : %s

Descripción:
%s

-- 
TexIA`,
		d.OrderNumber,
		d.DefectType,
		d.MetersAffected,
		d.ReporterName,
		strings.TrimSpace(d.Description),
	)

	return m.client.Send(ctx, m.fromAddress, m.toAddress, subject, body)
}
