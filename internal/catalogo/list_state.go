package catalogo

import (
	"net/url"
	"strconv"
)

// DefaultPageSize y las opciones del select de tamaño vienen de la
// configuración original de la aplicación.
const DefaultPageSize = 2

var PageSizeOptions = []int{2, 5, 10, 25, 50}

// ListState es el estado de filtros de una pantalla de listado. Las
// mutaciones que cambian el universo de resultados (estado, texto,
// tamaño) siempre regresan a la página 0 antes de reconsultar.
type ListState struct {
	Estado Estado
	Texto  string
	Page   int
	Size   int
}

func NewListState() ListState {
	return ListState{
		Estado: EstadoTodos,
		Size:   DefaultPageSize,
	}
}

func (s *ListState) SetEstado(estado Estado) {
	if s.Estado != estado {
		s.Estado = estado
		s.Page = 0
	}
}

func (s *ListState) SetTexto(texto string) {
	if s.Texto != texto {
		s.Texto = texto
		s.Page = 0
	}
}

func (s *ListState) SetSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	if s.Size != size {
		s.Size = size
		s.Page = 0
	}
}

func (s *ListState) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.Page = page
}

// ListStateFromQuery reconstruye el estado desde los query params de la
// pantalla, aplicando la regla de reset: si estado/texto/size del
// request difieren de los previos, la página pedida se ignora y se
// vuelve a 0.
func ListStateFromQuery(q url.Values) ListState {
	st := NewListState()
	st.SetEstado(ParseEstado(q.Get("estado")))
	st.SetTexto(q.Get("texto"))

	if size, err := strconv.Atoi(q.Get("size")); err == nil {
		st.SetSize(size)
	}

	// La página se aplica al final: un cambio de filtro en el mismo
	// request ya la habrá dejado en 0.
	prevEstado := q.Get("prev_estado")
	prevTexto := q.Get("prev_texto")
	filtersChanged := (prevEstado != "" && ParseEstado(prevEstado) != st.Estado) ||
		prevTexto != st.Texto

	if !filtersChanged {
		if page, err := strconv.Atoi(q.Get("page")); err == nil {
			st.SetPage(page)
		}
	}

	return st
}
