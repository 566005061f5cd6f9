package trabajador

import "time"

// TrabajadorDTO es el payload de escritura hacia el backend. Las fechas
// viajan como yyyy-MM-dd, igual que las produce el input date del
// navegador.
type TrabajadorDTO struct {
	IDTrabajador     int64   `json:"idTrabajador,omitempty"`
	IDTipoDocumento  int64   `json:"idTipoDocumento"`
	Documento        string  `json:"documento"`
	Nombres          string  `json:"nombres"`
	ApellidoPaterno  string  `json:"apellidoPaterno"`
	ApellidoMaterno  string  `json:"apellidoMaterno,omitempty"`
	IDGenero         int64   `json:"idGenero"`
	IDEstadoCivil    int64   `json:"idEstadoCivil"`
	Direccion        string  `json:"direccion"`
	Email            string  `json:"email"`
	Hijos            int     `json:"hijos"`
	IDCargo          int64   `json:"idCargo"`
	FecNacimiento    string  `json:"fecNacimiento"`
	FecIngreso       string  `json:"fecIngreso"`
	IDSituacion      int64   `json:"idSituacion"`
	IDSistemaPension int64   `json:"idSistemaPension"`
	Foto             string  `json:"foto,omitempty"`
	Activo           bool    `json:"activo"`
	FecCreacion      *string `json:"fecCreacion,omitempty"`
}

// TrabajadorResponse es la fila del listado: trae los nombres de los
// catálogos relacionados ya resueltos por el backend.
type TrabajadorResponse struct {
	IDTrabajador    int64      `json:"idTrabajador"`
	Documento       string     `json:"documento"`
	Nombres         string     `json:"nombres"`
	ApellidoPaterno string     `json:"apellidoPaterno"`
	ApellidoMaterno string     `json:"apellidoMaterno"`
	Direccion       string     `json:"direccion"`
	Email           string     `json:"email"`
	Hijos           int        `json:"hijos"`
	FecNacimiento   string     `json:"fecNacimiento"`
	FecIngreso      string     `json:"fecIngreso"`
	Activo          bool       `json:"activo"`
	FecCreacion     *time.Time `json:"fecCreacion,omitempty"`

	TipoDocumento  string `json:"tipoDocumento,omitempty"`
	Genero         string `json:"genero,omitempty"`
	EstadoCivil    string `json:"estadoCivil,omitempty"`
	Cargo          string `json:"cargo,omitempty"`
	Situacion      string `json:"situacion,omitempty"`
	SistemaPension string `json:"sistemaPension,omitempty"`
}

func (r TrabajadorResponse) NombreCompleto() string {
	nombre := r.Nombres + " " + r.ApellidoPaterno
	if r.ApellidoMaterno != "" {
		nombre += " " + r.ApellidoMaterno
	}
	return nombre
}

// TrabajadorForm replica las reglas del formulario original: documento
// de 8+ caracteres, dirección de 10+, correo válido y todos los
// catálogos seleccionados.
type TrabajadorForm struct {
	IDTipoDocumento  int64  `form:"idTipoDocumento" binding:"required,gt=0"`
	Documento        string `form:"documento" binding:"required,min=8"`
	Nombres          string `form:"nombres" binding:"required,min=2"`
	ApellidoPaterno  string `form:"apellidoPaterno" binding:"required,min=2"`
	ApellidoMaterno  string `form:"apellidoMaterno" binding:"omitempty,min=2"`
	IDGenero         int64  `form:"idGenero" binding:"required,gt=0"`
	IDEstadoCivil    int64  `form:"idEstadoCivil" binding:"required,gt=0"`
	Direccion        string `form:"direccion" binding:"required,min=10"`
	Email            string `form:"email" binding:"required,email"`
	Hijos            int    `form:"hijos" binding:"gte=0"`
	IDCargo          int64  `form:"idCargo" binding:"required,gt=0"`
	FecNacimiento    string `form:"fecNacimiento" binding:"required"`
	FecIngreso       string `form:"fecIngreso" binding:"required"`
	IDSituacion      int64  `form:"idSituacion" binding:"required,gt=0"`
	IDSistemaPension int64  `form:"idSistemaPension" binding:"required,gt=0"`
	Activo           bool   `form:"activo"`
}

func (f TrabajadorForm) toDTO() TrabajadorDTO {
	return TrabajadorDTO{
		IDTipoDocumento:  f.IDTipoDocumento,
		Documento:        f.Documento,
		Nombres:          f.Nombres,
		ApellidoPaterno:  f.ApellidoPaterno,
		ApellidoMaterno:  f.ApellidoMaterno,
		IDGenero:         f.IDGenero,
		IDEstadoCivil:    f.IDEstadoCivil,
		Direccion:        f.Direccion,
		Email:            f.Email,
		Hijos:            f.Hijos,
		IDCargo:          f.IDCargo,
		FecNacimiento:    f.FecNacimiento,
		FecIngreso:       f.FecIngreso,
		IDSituacion:      f.IDSituacion,
		IDSistemaPension: f.IDSistemaPension,
		Activo:           f.Activo,
	}
}

// Opcion alimenta los selects del formulario.
type Opcion struct {
	Valor  int64
	Nombre string
}

// Referencias agrupa los seis catálogos activos que el formulario
// necesita. Se cargan juntos: si uno falla, el formulario no se abre.
type Referencias struct {
	TiposDocumento  []Opcion
	Generos         []Opcion
	EstadosCiviles  []Opcion
	Cargos          []Opcion
	Situaciones     []Opcion
	SistemasPension []Opcion
}
