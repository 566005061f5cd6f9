package planilla

// Los montos viajan como punteros: el backend omite los conceptos que
// no aplican al trabajador y la boleta los rinde como "S/ 0.00".
type PlanillaMensualResponse struct {
	IDPlanilla int64 `json:"idPlanilla,omitempty"`
	Anio       int   `json:"anio"`
	Mes        int   `json:"mes"`

	Trabajador *TrabajadorRef `json:"trabajador,omitempty"`

	HaberBasico       *float64 `json:"haberBasico,omitempty"`
	ValesEmpleado     *float64 `json:"valesEmpleado,omitempty"`
	BonificacionCargo *float64 `json:"bonificacionCargo,omitempty"`
	TotalIngreso      *float64 `json:"totalIngreso,omitempty"`
	Aporte            *float64 `json:"aporte,omitempty"`
	Comision          *float64 `json:"comision,omitempty"`
	Prima             *float64 `json:"prima,omitempty"`
	TotalDescuento    *float64 `json:"totalDescuento,omitempty"`
	EsSalud           *float64 `json:"esSalud,omitempty"`
	SeguroVidaLey     *float64 `json:"seguroVidaLey,omitempty"`
	TotalNetoBoleta   *float64 `json:"totalNetoBoleta,omitempty"`
}

type TrabajadorRef struct {
	IDTrabajador    int64     `json:"idTrabajador,omitempty"`
	Documento       string    `json:"documento"`
	Nombres         string    `json:"nombres"`
	ApellidoPaterno string    `json:"apellidoPaterno"`
	ApellidoMaterno string    `json:"apellidoMaterno"`
	FecIngreso      string    `json:"fecIngreso,omitempty"`
	Cargo           *CargoRef `json:"cargo,omitempty"`
}

type CargoRef struct {
	Nombre string `json:"nombre"`
}

func (t *TrabajadorRef) NombreCompleto() string {
	if t == nil {
		return ""
	}
	nombre := t.Nombres + " " + t.ApellidoPaterno
	if t.ApellidoMaterno != "" {
		nombre += " " + t.ApellidoMaterno
	}
	return nombre
}

// PlanillaPorDocumentoDTO agrega los conceptos que solo llegan en la
// búsqueda por documento, para armar la boleta.
type PlanillaPorDocumentoDTO struct {
	PlanillaMensualResponse

	VHorasExtra1       *float64 `json:"vhorasExtra1,omitempty"`
	VHorasExtra2       *float64 `json:"vhorasExtra2,omitempty"`
	VAsigFamiliar      *float64 `json:"vasigFamiliar,omitempty"`
	VFeriadoTrab       *float64 `json:"vferiadoTrab,omitempty"`
	TotalNetoBoletaCad string   `json:"totalNetoBoletaCad,omitempty"`
	NDiasTrab          float64  `json:"ndiasTrab"`
	NHorasNormal       float64  `json:"nhorasNormal"`
}
