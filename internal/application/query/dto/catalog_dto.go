// internal/application/query/dto/catalog_dto.go
package dto

// ============================================================
// DTOs (fabric catalog list)
// ============================================================

type FabricRowDTO struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Tipo        string  `json:"tipo"`
	Color       string  `json:"color"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stockDisponible"`
	Unidad      string  `json:"unidad"`
	Proveedor   string  `json:"proveedor"`
	Ubicacion   string  `json:"ubicacion,omitempty"`
	ImagenURL   string  `json:"imagenUrl,omitempty"`
	Descripcion string  `json:"descripcion,omitempty"`
	Ordenes     int     `json:"ordenesNacionales"`
}

type CatalogDTO struct {
	Telas []FabricRowDTO `json:"telas"`
	Total int            `json:"total"`
}
