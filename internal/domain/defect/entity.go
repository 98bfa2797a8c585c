// internal/domain/defect/entity.go
package defect

import (
	"errors"
	"strings"
	"time"
)

// Validation sentinels, one per required field, in check order.
var (
	ErrMissingOrderNumber = errors.New("missing order number")
	ErrMissingDefectType  = errors.New("missing defect type")
	ErrMissingMeters      = errors.New("missing affected meters")
	ErrMissingDescription = errors.New("missing description")
	ErrMissingReporter    = errors.New("missing reporter id")
)

// Severity values. Unknown values coming back from the store are
// preserved verbatim.
const (
	SeverityLow      = "BAJA"
	SeverityMedium   = "MEDIA"
	SeverityHigh     = "ALTA"
	SeverityCritical = "CRÍTICA"
)

const (
	DefaultSeverity = SeverityMedium
	DefaultStatus   = "REPORTADO"
)

// Types is the fixed vocabulary offered by the reporting form.
var Types = []string{
	"Mancha en tela",
	"Rotura de hilos",
	"Defecto de tejido",
	"Color irregular",
	"Ancho incorrecto",
	"Encogimiento",
	"Defecto de tinte",
	"Agujeros",
	"Otro",
}

// Defect is one quality report in the "defectos" collection.
// Reports are append-only; they are never updated or deleted.
type Defect struct {
	ID             string
	OrderNumber    string // numeroOrden
	DefectType     string // tipoDefecto
	Description    string // descripcion
	Severity       string // gravedad
	MetersAffected string // metrosAfectados
	ReportedAt     *time.Time
	ReporterID     string // usuarioReporte
	ReporterName   string // nombreUsuario
	Status         string // estado
}

// Input is the user-submitted form for a new report.
type Input struct {
	OrderNumber    string
	DefectType     string
	Description    string
	Severity       string
	MetersAffected string
}

// Validate runs the required-field checks in their fixed order and
// returns the first failure (only that one); nil when all pass.
func (in Input) Validate() error {
	switch {
	case strings.TrimSpace(in.OrderNumber) == "":
		return ErrMissingOrderNumber
	case strings.TrimSpace(in.DefectType) == "":
		return ErrMissingDefectType
	case strings.TrimSpace(in.MetersAffected) == "":
		return ErrMissingMeters
	case strings.TrimSpace(in.Description) == "":
		return ErrMissingDescription
	}
	return nil
}

// UserMessage maps a validation sentinel to the message shown to the
// reporting operator. Unknown errors fall through to err.Error().
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingOrderNumber):
		return "Ingrese el número de orden"
	case errors.Is(err, ErrMissingDefectType):
		return "Seleccione el tipo de defecto"
	case errors.Is(err, ErrMissingMeters):
		return "Ingrese los metros afectados"
	case errors.Is(err, ErrMissingDescription):
		return "Ingrese una descripción"
	case err == nil:
		return ""
	}
	return err.Error()
}

// IsValidationError reports whether err is one of the form-check
// sentinels (a local failure that never reached the store).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingOrderNumber) ||
		errors.Is(err, ErrMissingDefectType) ||
		errors.Is(err, ErrMissingMeters) ||
		errors.Is(err, ErrMissingDescription) ||
		errors.Is(err, ErrMissingReporter)
}

// New validates in and builds the report to be persisted. The
// timestamp is left nil on purpose: the repository attaches the
// server-assigned one on create.
func New(in Input, reporterID, reporterName string) (Defect, error) {
	if err := in.Validate(); err != nil {
		return Defect{}, err
	}

	rid := strings.TrimSpace(reporterID)
	if rid == "" {
		return Defect{}, ErrMissingReporter
	}

	sev := strings.TrimSpace(in.Severity)
	if sev == "" {
		sev = DefaultSeverity
	}

	return Defect{
		OrderNumber:    strings.TrimSpace(in.OrderNumber),
		DefectType:     strings.TrimSpace(in.DefectType),
		Description:    strings.TrimSpace(in.Description),
		Severity:       sev,
		MetersAffected: strings.TrimSpace(in.MetersAffected),
		ReporterID:     rid,
		ReporterName:   strings.TrimSpace(reporterName),
		Status:         DefaultStatus,
	}, nil
}
