// Package catalogo concentra lo que los seis catálogos maestros tienen
// en común: el contrato de paginación del backend, el estado de
// filtros de una pantalla de listado, el modo de un formulario y el
// cliente REST genérico de pasamanos.
package catalogo

type Estado string

const (
	EstadoTodos    Estado = "TODOS"
	EstadoActivo   Estado = "ACTIVO"
	EstadoInactivo Estado = "INACTIVO"
)

func ParseEstado(s string) Estado {
	switch Estado(s) {
	case EstadoActivo, EstadoInactivo:
		return Estado(s)
	default:
		return EstadoTodos
	}
}

// Page replica la respuesta paginada del backend.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// EmptyPage es a lo que degrada un listado cuando la consulta falla:
// la tabla se muestra vacía en lugar de romper la pantalla.
func EmptyPage[T any](size int) Page[T] {
	return Page[T]{
		Content: []T{},
		Size:    size,
		First:   true,
		Last:    true,
	}
}
