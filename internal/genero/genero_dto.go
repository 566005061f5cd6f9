package genero

import "time"

type GeneroDTO struct {
	IDGenero              int64      `json:"idGenero,omitempty"`
	Nombre                string     `json:"nombre"`
	Activo                bool       `json:"activo"`
	FecCreacion           *time.Time `json:"fecCreacion,omitempty"`
	FecUltimaModificacion *time.Time `json:"fecUltimaModificacion,omitempty"`
}

type GeneroForm struct {
	Nombre string `form:"nombre" binding:"required,min=3"`
	Activo bool   `form:"activo"`
}
