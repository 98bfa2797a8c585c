// internal/application/query/catalog_query.go
package query

import (
	"context"
	"errors"
	"sort"
	"strings"

	querydto "texia/internal/application/query/dto"
	fabdom "texia/internal/domain/fabric"
)

// ============================================================
// Query Service (fabric catalog read model)
// - fetch once, then pure in-memory passes: search -> category -> sort
// - image object paths are resolved to browsable URLs per row
// ============================================================

// CatalogParams carries the list controls. Zero values mean "no
// search, every category, name ascending".
type CatalogParams struct {
	Search   string
	Category string
	Sort     string
}

type fabricReader interface {
	ListAll(ctx context.Context) ([]fabdom.Fabric, error)
}

// imageURLResolver turns a stored object path into a browsable URL.
// A nil resolver leaves rows without an image URL.
type imageURLResolver interface {
	ResolveForResponse(objectPath string) string
}

type CatalogQuery struct {
	fabrics fabricReader
	images  imageURLResolver
}

func NewCatalogQuery(fabrics fabricReader, images imageURLResolver) *CatalogQuery {
	return &CatalogQuery{fabrics: fabrics, images: images}
}

func (q *CatalogQuery) List(ctx context.Context, p CatalogParams) (querydto.CatalogDTO, error) {
	if q == nil || q.fabrics == nil {
		return querydto.CatalogDTO{}, errors.New("catalog query repository is not configured")
	}

	all, err := q.fabrics.ListAll(ctx)
	if err != nil {
		return querydto.CatalogDTO{}, err
	}

	rows := sortFabrics(filterFabrics(all, p.Search, p.Category), p.Sort)

	out := make([]querydto.FabricRowDTO, 0, len(rows))
	for _, f := range rows {
		out = append(out, q.toRow(f))
	}
	return querydto.CatalogDTO{Telas: out, Total: len(out)}, nil
}

func (q *CatalogQuery) toRow(f fabdom.Fabric) querydto.FabricRowDTO {
	row := querydto.FabricRowDTO{
		ID:          f.ID,
		Nombre:      f.Name,
		Tipo:        f.Type,
		Color:       f.Color,
		Precio:      f.Price,
		Stock:       f.Stock,
		Unidad:      f.Unit,
		Proveedor:   f.Supplier,
		Ubicacion:   f.Location,
		Descripcion: f.Description,
		Ordenes:     f.OrderCount,
	}
	if q.images != nil {
		row.ImagenURL = q.images.ResolveForResponse(f.ImagePath)
	}
	return row
}

// ------------------------------------------------------------
// Pure passes
// ------------------------------------------------------------

// filterFabrics runs the text pass and then the category pass over a
// fresh slice. Search matches nombre, tipo or color; the category
// compares against tipo, case-insensitively.
func filterFabrics(items []fabdom.Fabric, search, category string) []fabdom.Fabric {
	search = strings.TrimSpace(search)
	out := make([]fabdom.Fabric, 0, len(items))
	for _, f := range items {
		if search != "" &&
			!containsFold(f.Name, search) &&
			!containsFold(f.Type, search) &&
			!containsFold(f.Color, search) {
			continue
		}
		if !isAll(category) && !strings.EqualFold(f.Type, category) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Catalog sort keys.
const (
	SortFabricName      = "nombre"
	SortFabricPriceAsc  = "precio_asc"
	SortFabricPriceDesc = "precio_desc"
	SortFabricStock     = "stock"
	SortFabricOrders    = "ordenes"
)

// sortFabrics orders a copy of items by the given key. Unknown keys
// fall back to name ascending; the sort is stable so equal keys keep
// their incoming order.
func sortFabrics(items []fabdom.Fabric, key string) []fabdom.Fabric {
	out := make([]fabdom.Fabric, len(items))
	copy(out, items)

	var less func(i, j int) bool
	switch key {
	case SortFabricPriceAsc:
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case SortFabricPriceDesc:
		less = func(i, j int) bool { return out[i].Price > out[j].Price }
	case SortFabricStock:
		less = func(i, j int) bool { return out[i].Stock > out[j].Stock }
	case SortFabricOrders:
		less = func(i, j int) bool { return out[i].OrderCount > out[j].OrderCount }
	default:
		less = func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		}
	}
	sort.SliceStable(out, less)
	return out
}
