package estadocivil

import "time"

type EstadoCivilDTO struct {
	IDEstadoCivil         int64      `json:"idEstadoCivil,omitempty"`
	Nombre                string     `json:"nombre"`
	Activo                bool       `json:"activo"`
	FecCreacion           *time.Time `json:"fecCreacion,omitempty"`
	FecUltimaModificacion *time.Time `json:"fecUltimaModificacion,omitempty"`
}

type EstadoCivilForm struct {
	Nombre string `form:"nombre" binding:"required,min=3"`
	Activo bool   `form:"activo"`
}
