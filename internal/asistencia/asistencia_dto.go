package asistencia

// AsistenciaRow es una fila del tablero mensual de asistencias.
type AsistenciaRow struct {
	IDAsistencia     int64   `json:"idAsistencia"`
	IDTrabajador     int64   `json:"idTrabajador"`
	Documento        string  `json:"documento"`
	Nombre           string  `json:"nombre"`
	DiasLaborales    float64 `json:"diasLaborales"`
	DiasDescanso     float64 `json:"diasDescanso"`
	DiasInasistencia float64 `json:"diasInasistencia"`
	DiasFeriados     float64 `json:"diasFeriados"`
	HorasExtra25     float64 `json:"horasExtra25"`
	HorasExtra35     float64 `json:"horasExtra35"`
}

// AsistenciaGuardarDTO es el payload del guardado masivo. El backend
// espera el período con eñe, tal cual.
type AsistenciaGuardarDTO struct {
	IDAsistencia     int64   `json:"idAsistencia"`
	IDTrabajador     int64   `json:"idTrabajador"`
	Anio             int     `json:"año"`
	Mes              int     `json:"mes"`
	DiasLaborales    float64 `json:"diasLaborales"`
	DiasDescanso     float64 `json:"diasDescanso"`
	DiasInasistencia float64 `json:"diasInasistencia"`
	DiasFeriados     float64 `json:"diasFeriados"`
	HorasExtra25     float64 `json:"horasExtra25"`
	HorasExtra35     float64 `json:"horasExtra35"`
}

// Valores agrupa los seis campos numéricos editables de una fila.
type Valores struct {
	DiasLaborales    float64
	DiasDescanso     float64
	DiasInasistencia float64
	DiasFeriados     float64
	HorasExtra25     float64
	HorasExtra35     float64
}

func (v Valores) Validos() bool {
	return v.DiasLaborales >= 0 &&
		v.DiasDescanso >= 0 &&
		v.DiasInasistencia >= 0 &&
		v.DiasFeriados >= 0 &&
		v.HorasExtra25 >= 0 &&
		v.HorasExtra35 >= 0
}
