package cargo

import "time"

// CargoDTO refleja el contrato del backend para /cargos.
type CargoDTO struct {
	IDCargo               int64      `json:"idCargo,omitempty"`
	Nombre                string     `json:"nombre"`
	Activo                bool       `json:"activo"`
	FecCreacion           *time.Time `json:"fecCreacion,omitempty"`
	FecUltimaModificacion *time.Time `json:"fecUltimaModificacion,omitempty"`
}

// CargoForm es lo que llega del formulario HTML. La validación corre
// en el binding, antes de tocar el backend.
type CargoForm struct {
	Nombre string `form:"nombre" binding:"required,min=3"`
	Activo bool   `form:"activo"`
}
