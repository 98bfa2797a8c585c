// internal/application/query/inventory_query.go
package query

import (
	"context"
	"errors"
	"sort"
	"strings"

	querydto "texia/internal/application/query/dto"
	lotdom "texia/internal/domain/lot"
)

// ============================================================
// Query Service (per-user inventory read model)
// - stats aggregate the FULL set; search/estado narrow only the rows
// - default order is purchase date, newest first
// ============================================================

type InventoryParams struct {
	Search string
	Status string
	Sort   string
}

type lotReader interface {
	ListByUser(ctx context.Context, userID string) ([]lotdom.Lot, error)
}

type InventoryQuery struct {
	lots lotReader
}

func NewInventoryQuery(lots lotReader) *InventoryQuery {
	return &InventoryQuery{lots: lots}
}

func (q *InventoryQuery) List(ctx context.Context, userID string, p InventoryParams) (querydto.InventoryDTO, error) {
	if q == nil || q.lots == nil {
		return querydto.InventoryDTO{}, errors.New("inventory query repository is not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return querydto.InventoryDTO{}, errors.New("userId is missing")
	}

	all, err := q.lots.ListByUser(ctx, userID)
	if err != nil {
		return querydto.InventoryDTO{}, err
	}

	stats := lotStats(all)
	rows := sortLots(filterLots(all, p.Search, p.Status), p.Sort)

	out := make([]querydto.LotRowDTO, 0, len(rows))
	for _, l := range rows {
		out = append(out, toLotRow(l))
	}
	return querydto.InventoryDTO{Lotes: out, Stats: stats, Total: len(out)}, nil
}

func toLotRow(l lotdom.Lot) querydto.LotRowDTO {
	return querydto.LotRowDTO{
		ID:           l.ID,
		Nombre:       l.Name,
		Tipo:         l.Type,
		Color:        l.Color,
		Comprada:     l.Purchased,
		Usada:        l.Used,
		EnProduccion: l.Reserved,
		Disponible:   l.Available(),
		Unidad:       l.Unit,
		PrecioCompra: l.PurchasePrice,
		Valor:        l.Value(),
		Proveedor:    l.Supplier,
		FechaCompra:  l.PurchasedAt,
		Ubicacion:    l.Location,
		Lote:         l.LotCode,
		Estado:       string(l.Status),
	}
}

// lotStats sums over every lot the user owns, not just the ones the
// current filter shows.
func lotStats(items []lotdom.Lot) querydto.InventoryStatsDTO {
	var s querydto.InventoryStatsDTO
	for _, l := range items {
		s.TotalComprado += l.Purchased
		s.TotalDisponible += l.Available()
		s.TotalEnProduccion += l.Reserved
		s.ValorTotal += l.Value()
	}
	return s
}

// ------------------------------------------------------------
// Pure passes
// ------------------------------------------------------------

// filterLots runs the text pass and then the estado pass. Search
// matches nombre, tipo, color or lote.
func filterLots(items []lotdom.Lot, search, status string) []lotdom.Lot {
	search = strings.TrimSpace(search)
	out := make([]lotdom.Lot, 0, len(items))
	for _, l := range items {
		if search != "" &&
			!containsFold(l.Name, search) &&
			!containsFold(l.Type, search) &&
			!containsFold(l.Color, search) &&
			!containsFold(l.LotCode, search) {
			continue
		}
		if !isAll(status) && string(l.Status) != strings.TrimSpace(status) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Inventory sort keys.
const (
	SortLotRecent    = "recientes"
	SortLotName      = "nombre"
	SortLotStockHigh = "stock_alto"
	SortLotStockLow  = "stock_bajo"
	SortLotValue     = "valor"
)

// sortLots orders a copy of items. The empty key means "recientes"
// (purchase date, newest first, undated lots last); any other unknown
// key falls back to name ascending.
func sortLots(items []lotdom.Lot, key string) []lotdom.Lot {
	out := make([]lotdom.Lot, len(items))
	copy(out, items)

	byName := func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	}

	var less func(i, j int) bool
	switch key {
	case "", SortLotRecent:
		less = func(i, j int) bool {
			a, b := out[i].PurchasedAt, out[j].PurchasedAt
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.After(*b)
			}
		}
	case SortLotStockHigh:
		less = func(i, j int) bool { return out[i].Available() > out[j].Available() }
	case SortLotStockLow:
		less = func(i, j int) bool { return out[i].Available() < out[j].Available() }
	case SortLotValue:
		less = func(i, j int) bool { return out[i].Value() > out[j].Value() }
	default:
		less = byName
	}
	sort.SliceStable(out, less)
	return out
}
