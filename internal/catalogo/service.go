package catalogo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
)

// ErrOperacionNoSoportada responde cuando un catálogo no expone un
// verbo (p.ej. eliminar en los catálogos de solo baja lógica).
var ErrOperacionNoSoportada = apperror.New(
	apperror.CodeInvalidState,
	"Operación no soportada para este catálogo.",
	http.StatusMethodNotAllowed,
)

// Service es el pasamanos REST de un catálogo: un concepto de UI, una
// llamada al backend. No hay lógica compartida más allá del armado de
// parámetros.
type Service[T any] struct {
	api *backend.Client
	ep  backend.CatalogEndpoints
}

func NewService[T any](api *backend.Client, ep backend.CatalogEndpoints) *Service[T] {
	return &Service[T]{api: api, ep: ep}
}

func (s *Service[T]) Listar(ctx context.Context, st ListState) (Page[T], error) {
	params := backend.Params(map[string]any{
		"estado": string(st.Estado),
		"Texto":  st.Texto,
		"page":   st.Page,
		"size":   st.Size,
	})

	var page Page[T]
	if err := s.api.Get(ctx, s.ep.List, params, &page); err != nil {
		return Page[T]{}, err
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	return page, nil
}

// ListarActivos trae todos los elementos activos de una vez, para
// poblar selects de formularios.
func (s *Service[T]) ListarActivos(ctx context.Context) ([]T, error) {
	st := ListState{Estado: EstadoActivo, Size: 1000}
	page, err := s.Listar(ctx, st)
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

func (s *Service[T]) ObtenerPorID(ctx context.Context, id int64) (T, error) {
	var item T
	err := s.api.Get(ctx, fmt.Sprintf("%s/%d", s.ep.GetByID, id), nil, &item)
	return item, err
}

func (s *Service[T]) Crear(ctx context.Context, item T) (T, error) {
	var created T
	err := s.api.Post(ctx, s.ep.Create, item, &created)
	return created, err
}

func (s *Service[T]) Actualizar(ctx context.Context, id int64, item T) (T, error) {
	var updated T
	err := s.api.Put(ctx, fmt.Sprintf("%s/%d", s.ep.Update, id), item, &updated)
	return updated, err
}

func (s *Service[T]) CambiarEstado(ctx context.Context, id int64) error {
	return s.api.Patch(ctx, fmt.Sprintf("%s/%d", s.ep.ChangeStatus, id), nil, nil)
}

func (s *Service[T]) Eliminar(ctx context.Context, id int64) error {
	if s.ep.Delete == "" {
		return ErrOperacionNoSoportada
	}
	return s.api.Delete(ctx, fmt.Sprintf("%s/%d", s.ep.Delete, id))
}

// SoportaEliminar indica si el catálogo permite eliminación física.
func (s *Service[T]) SoportaEliminar() bool {
	return s.ep.Delete != ""
}
