// internal/adapters/out/firestore/defect_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	defdom "texia/internal/domain/defect"
)

// DefectRepositoryFS implements defect.RepositoryPort on "defectos".
type DefectRepositoryFS struct {
	Client *firestore.Client
}

func NewDefectRepositoryFS(client *firestore.Client) *DefectRepositoryFS {
	return &DefectRepositoryFS{Client: client}
}

var _ defdom.RepositoryPort = (*DefectRepositoryFS)(nil)

func (r *DefectRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("defectos")
}

// Create appends a new report. The id is store-assigned and fecha is
// the server timestamp, so the created report is read back once to
// return the resolved values.
func (r *DefectRepositoryFS) Create(ctx context.Context, d defdom.Defect) (defdom.Defect, error) {
	if r.Client == nil {
		return defdom.Defect{}, errors.New("firestore client is nil")
	}

	docRef := r.col().NewDoc()

	data := map[string]any{
		"numeroOrden":     d.OrderNumber,
		"tipoDefecto":     d.DefectType,
		"descripcion":     d.Description,
		"gravedad":        d.Severity,
		"metrosAfectados": d.MetersAffected,
		"fecha":           firestore.ServerTimestamp,
		"usuarioReporte":  d.ReporterID,
		"nombreUsuario":   d.ReporterName,
		"estado":          d.Status,
	}

	if _, err := docRef.Create(ctx, data); err != nil {
		return defdom.Defect{}, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return defdom.Defect{}, err
	}
	return defectFromDoc(snap.Ref.ID, snap.Data()), nil
}

func (r *DefectRepositoryFS) ListRecentByReporter(
	ctx context.Context,
	userID string,
	limit int,
) ([]defdom.Defect, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return []defdom.Defect{}, nil
	}
	if limit <= 0 {
		limit = 5
	}

	it := r.col().
		Where("usuarioReporte", "==", uid).
		OrderBy("fecha", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer it.Stop()

	out := []defdom.Defect{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, defectFromDoc(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

func defectFromDoc(id string, data map[string]any) defdom.Defect {
	if data == nil {
		data = map[string]any{}
	}
	return defdom.Defect{
		ID:             id,
		OrderNumber:    docStr(data, "numeroOrden"),
		DefectType:     docStr(data, "tipoDefecto"),
		Description:    docStr(data, "descripcion"),
		Severity:       docStrDefault(data, "gravedad", defdom.DefaultSeverity),
		MetersAffected: docStr(data, "metrosAfectados"),
		ReportedAt:     docTime(data, "fecha"),
		ReporterID:     docStr(data, "usuarioReporte"),
		ReporterName:   docStr(data, "nombreUsuario"),
		Status:         docStrDefault(data, "estado", defdom.DefaultStatus),
	}
}
