// internal/domain/lot/entity.go
package lot

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("lot not found")

// DefaultUnit matches fabric.DefaultUnit; kept local so the package
// stands alone.
const DefaultUnit = "metros"

// Status classifies a lot from its quantities. Values are stored and
// rendered verbatim, so they keep the Spanish wire form.
type Status string

const (
	StatusAvailable    Status = "DISPONIBLE"
	StatusInProduction Status = "EN_PRODUCCION"
	StatusLowStock     Status = "BAJO_STOCK"
	StatusExhausted    Status = "AGOTADO"
)

// LowStockRatio: a lot is low on stock when less than this share of
// the purchased quantity remains available.
const LowStockRatio = 0.2

// Lot is one batch of purchased fabric from "inventario_telas",
// scoped to the owning user.
type Lot struct {
	ID            string
	UserID        string     // userId
	Name          string     // nombre
	Type          string     // tipo
	Color         string     // color
	Purchased     float64    // cantidadComprada
	Used          float64    // cantidadUsada
	Reserved      float64    // cantidadEnProduccion
	Unit          string     // unidad, defaults to "metros"
	PurchasePrice float64    // precioCompra
	Supplier      string     // proveedor
	PurchasedAt   *time.Time // fechaCompra
	Location      string     // ubicacionAlmacen
	LotCode       string     // lote
	Status        Status     // derived, never read from the document
}

// Available is the derived remaining quantity:
// purchased − used − reserved.
func (l Lot) Available() float64 {
	return l.Purchased - l.Used - l.Reserved
}

// Value is the purchase value of the lot (purchased × price).
func (l Lot) Value() float64 {
	return l.Purchased * l.PurchasePrice
}

// ClassifyStatus derives the inventory status from the raw
// quantities. The checks run in a fixed priority order and exactly
// one status applies; an exhausted lot stays AGOTADO even with a
// nonzero reserved quantity.
func ClassifyStatus(purchased, used, reserved float64) Status {
	available := purchased - used - reserved
	switch {
	case available <= 0:
		return StatusExhausted
	case reserved > 0:
		return StatusInProduction
	case available < purchased*LowStockRatio:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}
