package backend

// Tabla de endpoints del API de planillas. Es la misma configuración
// declarativa que usaba el front: un lugar único donde viven todas las
// rutas, tipado por recurso.

type AuthEndpoints struct {
	Login    string
	Register string
	Roles    string
}

// CatalogEndpoints cubre los seis catálogos maestros. Delete queda
// vacío en los catálogos que solo soportan baja lógica.
type CatalogEndpoints struct {
	List         string
	GetByID      string
	Create       string
	Update       string
	ChangeStatus string
	Delete       string
}

type AsistenciaEndpoints struct {
	List           string
	Buscar         string
	DescargarExcel string
	CargarExcel    string
	Guardar        string
}

type PlanillaEndpoints struct {
	Listar           string
	BuscarBoleta     string
	CalcularPlanilla string
	GuardarPlanilla  string
}

type ChatEndpoints struct {
	Message string
	Session string
}

type Endpoints struct {
	Auth                AuthEndpoints
	Cargo               CatalogEndpoints
	Genero              CatalogEndpoints
	EstadoCivil         CatalogEndpoints
	SistemaPension      CatalogEndpoints
	TipoDocumento       CatalogEndpoints
	SituacionTrabajador CatalogEndpoints
	Trabajador          CatalogEndpoints
	Asistencia          AsistenciaEndpoints
	Planilla            PlanillaEndpoints
	Chat                ChatEndpoints
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Auth: AuthEndpoints{
			Login:    "/auth/login",
			Register: "/auth/register",
			Roles:    "/auth/roles",
		},
		Cargo: CatalogEndpoints{
			List:         "/cargos/listar",
			GetByID:      "/cargos/obtenerById",
			Create:       "/cargos/insertar",
			Update:       "/cargos/actualizar",
			ChangeStatus: "/cargos/cambiarEstado",
			Delete:       "/cargos/eliminar",
		},
		Genero: CatalogEndpoints{
			List:         "/generos/listar",
			GetByID:      "/generos/obtenerById",
			Create:       "/generos/insertar",
			Update:       "/generos/actualizar",
			ChangeStatus: "/generos/cambiarEstado",
			// El backend no publica /generos/eliminar: el borrado duro
			// de géneros es un DELETE sobre la misma ruta de cambio de
			// estado.
			Delete: "/generos/cambiarEstado",
		},
		EstadoCivil: CatalogEndpoints{
			List:         "/estados-civiles/listar",
			GetByID:      "/estados-civiles/obtenerById",
			Create:       "/estados-civiles/insertar",
			Update:       "/estados-civiles/actualizar",
			ChangeStatus: "/estados-civiles/cambiarEstado",
		},
		SistemaPension: CatalogEndpoints{
			List:         "/sistemas-pension/listar",
			GetByID:      "/sistemas-pension/obtenerById",
			Create:       "/sistemas-pension/insertar",
			Update:       "/sistemas-pension/actualizar",
			ChangeStatus: "/sistemas-pension/cambiarEstado",
		},
		TipoDocumento: CatalogEndpoints{
			List:         "/tipos-documento/listar",
			GetByID:      "/tipos-documento/obtenerById",
			Create:       "/tipos-documento/insertar",
			Update:       "/tipos-documento/actualizar",
			ChangeStatus: "/tipos-documento/cambiarEstado",
		},
		SituacionTrabajador: CatalogEndpoints{
			List:         "/situaciones-trabajador/listar",
			GetByID:      "/situaciones-trabajador/obtenerById",
			Create:       "/situaciones-trabajador/insertar",
			Update:       "/situaciones-trabajador/actualizar",
			ChangeStatus: "/situaciones-trabajador/cambiarEstado",
		},
		Trabajador: CatalogEndpoints{
			List:         "/trabajador/listar",
			GetByID:      "/trabajador/obtenerById",
			Create:       "/trabajador/insertar",
			Update:       "/trabajador/actualizar",
			ChangeStatus: "/trabajador/cambiar-estado",
			Delete:       "/trabajador/eliminar",
		},
		Asistencia: AsistenciaEndpoints{
			List:           "/asistencias",
			Buscar:         "/asistencias/buscar",
			DescargarExcel: "/asistencias/descargar-excel",
			CargarExcel:    "/asistencias/cargar-excel",
			Guardar:        "/asistencias/guardar",
		},
		Planilla: PlanillaEndpoints{
			Listar:           "/planilla-mensual/listarPlanilla",
			BuscarBoleta:     "/planilla-mensual/buscarBoleta",
			CalcularPlanilla: "/planilla-mensual/calcularPlanilla",
			GuardarPlanilla:  "/planilla-mensual/guardarPlanilla",
		},
		Chat: ChatEndpoints{
			Message: "/chat/message",
			Session: "/chat/session",
		},
	}
}
