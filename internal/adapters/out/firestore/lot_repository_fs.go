// internal/adapters/out/firestore/lot_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	lotdom "texia/internal/domain/lot"
)

// LotRepositoryFS implements lot.RepositoryPort on the
// "inventario_telas" collection.
type LotRepositoryFS struct {
	Client *firestore.Client
}

func NewLotRepositoryFS(client *firestore.Client) *LotRepositoryFS {
	return &LotRepositoryFS{Client: client}
}

var _ lotdom.RepositoryPort = (*LotRepositoryFS)(nil)

func (r *LotRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("inventario_telas")
}

func (r *LotRepositoryFS) ListByUser(ctx context.Context, userID string) ([]lotdom.Lot, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return []lotdom.Lot{}, nil
	}

	it := r.col().Where("userId", "==", uid).Documents(ctx)
	defer it.Stop()

	out := []lotdom.Lot{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, lotFromDoc(doc.Ref.ID, doc.Data()))
	}
	return out, nil
}

// lotFromDoc maps one inventario_telas document and classifies its
// status from the three quantity fields.
func lotFromDoc(id string, data map[string]any) lotdom.Lot {
	if data == nil {
		data = map[string]any{}
	}

	purchased := docFloat(data, "cantidadComprada")
	used := docFloat(data, "cantidadUsada")
	reserved := docFloat(data, "cantidadEnProduccion")

	return lotdom.Lot{
		ID:            id,
		UserID:        docStr(data, "userId"),
		Name:          docStr(data, "nombre"),
		Type:          docStr(data, "tipo"),
		Color:         docStr(data, "color"),
		Purchased:     purchased,
		Used:          used,
		Reserved:      reserved,
		Unit:          docStrDefault(data, "unidad", lotdom.DefaultUnit),
		PurchasePrice: docFloat(data, "precioCompra"),
		Supplier:      docStr(data, "proveedor"),
		PurchasedAt:   docTime(data, "fechaCompra"),
		Location:      docStr(data, "ubicacionAlmacen"),
		LotCode:       docStr(data, "lote"),
		Status:        lotdom.ClassifyStatus(purchased, used, reserved),
	}
}
