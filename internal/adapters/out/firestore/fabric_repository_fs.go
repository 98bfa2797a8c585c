// internal/adapters/out/firestore/fabric_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	fabdom "texia/internal/domain/fabric"
)

// FabricRepositoryFS implements fabric.RepositoryPort with Firestore.
type FabricRepositoryFS struct {
	Client *firestore.Client
}

func NewFabricRepositoryFS(client *firestore.Client) *FabricRepositoryFS {
	return &FabricRepositoryFS{Client: client}
}

var _ fabdom.RepositoryPort = (*FabricRepositoryFS)(nil)

func (r *FabricRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("telas")
}

func (r *FabricRepositoryFS) ListAll(ctx context.Context) ([]fabdom.Fabric, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	out := []fabdom.Fabric{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, fabricFromDoc(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

// fabricFromDoc maps one telas document. Absent or mistyped fields
// take their documented defaults; the mapping itself cannot fail.
func fabricFromDoc(id string, data map[string]any) fabdom.Fabric {
	if data == nil {
		data = map[string]any{}
	}
	return fabdom.Fabric{
		ID:          id,
		Name:        docStr(data, "nombre"),
		Type:        docStr(data, "tipo"),
		Color:       docStr(data, "color"),
		Price:       docFloat(data, "precio"),
		Stock:       docInt(data, "stockDisponible"),
		Unit:        docStrDefault(data, "unidad", fabdom.DefaultUnit),
		Supplier:    docStr(data, "proveedor"),
		Location:    docStr(data, "ubicacion"),
		ImagePath:   docStr(data, "imagen"),
		Description: docStr(data, "descripcion"),
		OrderCount:  docInt(data, "ordenesNacionales"),
	}
}
