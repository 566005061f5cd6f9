package tipodocumento

import "time"

type TipoDocumentoDTO struct {
	IDTipoDocumento       int64      `json:"idTipoDocumento,omitempty"`
	Nombre                string     `json:"nombre"`
	Activo                bool       `json:"activo"`
	FecCreacion           *time.Time `json:"fecCreacion,omitempty"`
	FecUltimaModificacion *time.Time `json:"fecUltimaModificacion,omitempty"`
}

type TipoDocumentoForm struct {
	Nombre string `form:"nombre" binding:"required,min=3"`
	Activo bool   `form:"activo"`
}
