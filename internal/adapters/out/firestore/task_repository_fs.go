// internal/adapters/out/firestore/task_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	taskdom "texia/internal/domain/task"
)

// TaskRepositoryFS implements task.RepositoryPort on "tareas".
type TaskRepositoryFS struct {
	Client *firestore.Client
}

func NewTaskRepositoryFS(client *firestore.Client) *TaskRepositoryFS {
	return &TaskRepositoryFS{Client: client}
}

var _ taskdom.RepositoryPort = (*TaskRepositoryFS)(nil)

func (r *TaskRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("tareas")
}

func (r *TaskRepositoryFS) ListByAssignee(
	ctx context.Context,
	userID string,
	status string,
	limit int,
) ([]taskdom.Task, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return []taskdom.Task{}, nil
	}

	q := r.col().Where("usuarioAsignado", "==", uid)
	if st := strings.TrimSpace(status); st != "" {
		q = q.Where("estado", "==", st)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	out := []taskdom.Task{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, taskFromDoc(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

// taskFromDoc maps one tareas document. estado/prioridad strings are
// kept verbatim, including values outside the known vocabulary.
func taskFromDoc(id string, data map[string]any) taskdom.Task {
	if data == nil {
		data = map[string]any{}
	}
	return taskdom.Task{
		ID:          id,
		OrderNumber: docStr(data, "numeroOrden"),
		Name:        docStr(data, "nombre"),
		FabricType:  docStrDefault(data, "tipoTela", taskdom.DefaultFabricType),
		Quantity:    docStrDefault(data, "cantidad", taskdom.DefaultQuantity),
		TimeLeft:    docStrDefault(data, "tiempoRestante", taskdom.DefaultTimeLeft),
		Status:      docStrDefault(data, "estado", taskdom.DefaultStatus),
		Priority:    docStrDefault(data, "prioridad", taskdom.DefaultPriority),
		CreatedAt:   docTime(data, "fechaCreacion"),
		Completed:   docStrDefault(data, "metrosCompletados", taskdom.DefaultCompleted),
		StartedAt:   docTime(data, "fechaInicio"),
		CompletedAt: docTime(data, "fechaCompletado"),
		WorkedTime:  docStrDefault(data, "tiempoTrabajado", taskdom.DefaultWorkedTime),
	}
}
