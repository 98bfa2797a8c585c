// internal/domain/fabric/entity.go
package fabric

import "errors"

var ErrNotFound = errors.New("fabric not found")

// DefaultUnit is the unit label substituted when a telas document
// carries no "unidad" field.
const DefaultUnit = "metros"

// Fabric is one purchasable listing from the "telas" collection.
// Fields mirror the document keys (Spanish) one to one; every field
// has a fixed default so a sparse document still maps cleanly.
type Fabric struct {
	ID          string
	Name        string  // nombre
	Type        string  // tipo (Algodón, Poliéster, Seda, Lino, ...)
	Color       string  // color
	Price       float64 // precio, per unit
	Stock       int     // stockDisponible
	Unit        string  // unidad, defaults to "metros"
	Supplier    string  // proveedor
	Location    string  // ubicacion
	ImagePath   string  // imagen (object path or absolute URL)
	Description string  // descripcion
	OrderCount  int     // ordenesNacionales
}
