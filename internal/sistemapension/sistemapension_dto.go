package sistemapension

import "time"

// SistemaPensionDTO lleva, además del nombre, las tasas porcentuales
// que alimentan el cálculo de descuentos en la planilla.
type SistemaPensionDTO struct {
	IDSistemaPension      int64      `json:"idSistemaPension,omitempty"`
	Nombre                string     `json:"nombre"`
	Aporte                float64    `json:"aporte"`
	Comision              float64    `json:"comision"`
	Prima                 float64    `json:"prima"`
	Activo                bool       `json:"activo"`
	FecCreacion           *time.Time `json:"fecCreacion,omitempty"`
	FecUltimaModificacion *time.Time `json:"fecUltimaModificacion,omitempty"`
}

// Las tasas se expresan como porcentaje: fuera de [0, 100] el
// formulario no llega al backend.
type SistemaPensionForm struct {
	Nombre   string  `form:"nombre" binding:"required,min=3"`
	Aporte   float64 `form:"aporte" binding:"gte=0,lte=100"`
	Comision float64 `form:"comision" binding:"gte=0,lte=100"`
	Prima    float64 `form:"prima" binding:"gte=0,lte=100"`
	Activo   bool    `form:"activo"`
}
