package situaciontrabajador

import "time"

type SituacionTrabajadorDTO struct {
	IDSituacion           int64      `json:"idSituacion,omitempty"`
	Nombre                string     `json:"nombre"`
	Activo                bool       `json:"activo"`
	FecCreacion           *time.Time `json:"fecCreacion,omitempty"`
	FecUltimaModificacion *time.Time `json:"fecUltimaModificacion,omitempty"`
}

type SituacionTrabajadorForm struct {
	Nombre string `form:"nombre" binding:"required,min=3"`
	Activo bool   `form:"activo"`
}
