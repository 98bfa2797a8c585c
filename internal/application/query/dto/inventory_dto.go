// internal/application/query/dto/inventory_dto.go
package dto

import "time"

// ============================================================
// DTOs (per-user fabric inventory)
// ============================================================

type LotRowDTO struct {
	ID           string     `json:"id"`
	Nombre       string     `json:"nombre"`
	Tipo         string     `json:"tipo"`
	Color        string     `json:"color"`
	Comprada     float64    `json:"cantidadComprada"`
	Usada        float64    `json:"cantidadUsada"`
	EnProduccion float64    `json:"cantidadEnProduccion"`
	Disponible   float64    `json:"cantidadDisponible"`
	Unidad       string     `json:"unidad"`
	PrecioCompra float64    `json:"precioCompra"`
	Valor        float64    `json:"valorCompra"`
	Proveedor    string     `json:"proveedor,omitempty"`
	FechaCompra  *time.Time `json:"fechaCompra,omitempty"`
	Ubicacion    string     `json:"ubicacionAlmacen,omitempty"`
	Lote         string     `json:"lote,omitempty"`
	Estado       string     `json:"estado"`
}

// InventoryStatsDTO aggregates the full set, before any filter.
type InventoryStatsDTO struct {
	TotalComprado     float64 `json:"totalComprado"`
	TotalDisponible   float64 `json:"totalDisponible"`
	TotalEnProduccion float64 `json:"totalEnProduccion"`
	ValorTotal        float64 `json:"valorTotal"`
}

type InventoryDTO struct {
	Lotes []LotRowDTO       `json:"lotes"`
	Stats InventoryStatsDTO `json:"estadisticas"`
	Total int               `json:"total"`
}
