// internal/application/query/dto/defect_dto.go
package dto

import "time"

type DefectRowDTO struct {
	ID              string     `json:"id"`
	NumeroOrden     string     `json:"numeroOrden"`
	TipoDefecto     string     `json:"tipoDefecto"`
	Descripcion     string     `json:"descripcion"`
	Gravedad        string     `json:"gravedad"`
	MetrosAfectados string     `json:"metrosAfectados"`
	Fecha           *time.Time `json:"fecha,omitempty"`
	NombreUsuario   string     `json:"nombreUsuario"`
	Estado          string     `json:"estado"`
}
