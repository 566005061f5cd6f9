package trabajador

import (
	"context"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/catalogo"

	"golang.org/x/sync/errgroup"
)

// Tipos mínimos para decodificar los catálogos relacionados; solo nos
// interesan el id y el nombre para armar los selects.
type refTipoDocumento struct {
	ID     int64  `json:"idTipoDocumento"`
	Nombre string `json:"nombre"`
}

type refGenero struct {
	ID     int64  `json:"idGenero"`
	Nombre string `json:"nombre"`
}

type refEstadoCivil struct {
	ID     int64  `json:"idEstadoCivil"`
	Nombre string `json:"nombre"`
}

type refCargo struct {
	ID     int64  `json:"idCargo"`
	Nombre string `json:"nombre"`
}

type refSituacion struct {
	ID     int64  `json:"idSituacion"`
	Nombre string `json:"nombre"`
}

type refSistemaPension struct {
	ID     int64  `json:"idSistemaPension"`
	Nombre string `json:"nombre"`
}

//go:generate mockgen -source=trabajador_service.go -destination=mocks/mock_service.go -package=mocks

// ServiceAPI es lo que el handler necesita del servicio de trabajadores.
type ServiceAPI interface {
	Listar(ctx context.Context, st catalogo.ListState) (catalogo.Page[TrabajadorResponse], error)
	ObtenerPorID(ctx context.Context, id int64) (TrabajadorDTO, error)
	Crear(ctx context.Context, dto TrabajadorDTO) (TrabajadorDTO, error)
	Actualizar(ctx context.Context, id int64, dto TrabajadorDTO) (TrabajadorDTO, error)
	CambiarEstado(ctx context.Context, id int64) error
	Eliminar(ctx context.Context, id int64) error
	CargarReferencias(ctx context.Context) (Referencias, error)
}

// Service combina el CRUD de trabajadores con la carga de los seis
// catálogos de referencia del formulario.
type Service struct {
	listado *catalogo.Service[TrabajadorResponse]
	crud    *catalogo.Service[TrabajadorDTO]

	tiposDocumento  *catalogo.Service[refTipoDocumento]
	generos         *catalogo.Service[refGenero]
	estadosCiviles  *catalogo.Service[refEstadoCivil]
	cargos          *catalogo.Service[refCargo]
	situaciones     *catalogo.Service[refSituacion]
	sistemasPension *catalogo.Service[refSistemaPension]
}

func NewService(api *backend.Client, ep backend.Endpoints) *Service {
	return &Service{
		listado: catalogo.NewService[TrabajadorResponse](api, ep.Trabajador),
		crud:    catalogo.NewService[TrabajadorDTO](api, ep.Trabajador),

		tiposDocumento:  catalogo.NewService[refTipoDocumento](api, ep.TipoDocumento),
		generos:         catalogo.NewService[refGenero](api, ep.Genero),
		estadosCiviles:  catalogo.NewService[refEstadoCivil](api, ep.EstadoCivil),
		cargos:          catalogo.NewService[refCargo](api, ep.Cargo),
		situaciones:     catalogo.NewService[refSituacion](api, ep.SituacionTrabajador),
		sistemasPension: catalogo.NewService[refSistemaPension](api, ep.SistemaPension),
	}
}

func (s *Service) Listar(ctx context.Context, st catalogo.ListState) (catalogo.Page[TrabajadorResponse], error) {
	return s.listado.Listar(ctx, st)
}

func (s *Service) ObtenerPorID(ctx context.Context, id int64) (TrabajadorDTO, error) {
	return s.crud.ObtenerPorID(ctx, id)
}

func (s *Service) Crear(ctx context.Context, dto TrabajadorDTO) (TrabajadorDTO, error) {
	return s.crud.Crear(ctx, dto)
}

func (s *Service) Actualizar(ctx context.Context, id int64, dto TrabajadorDTO) (TrabajadorDTO, error) {
	return s.crud.Actualizar(ctx, id, dto)
}

func (s *Service) CambiarEstado(ctx context.Context, id int64) error {
	return s.crud.CambiarEstado(ctx, id)
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.crud.Eliminar(ctx, id)
}

// CargarReferencias trae los seis catálogos activos en paralelo. La
// carga es todo-o-nada: con un catálogo caído el formulario quedaría
// inconsistente, así que el primer error cancela el resto.
func (s *Service) CargarReferencias(ctx context.Context) (Referencias, error) {
	var refs Referencias

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.tiposDocumento.ListarActivos(gctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			refs.TiposDocumento = append(refs.TiposDocumento, Opcion{Valor: it.ID, Nombre: it.Nombre})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.generos.ListarActivos(gctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			refs.Generos = append(refs.Generos, Opcion{Valor: it.ID, Nombre: it.Nombre})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.estadosCiviles.ListarActivos(gctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			refs.EstadosCiviles = append(refs.EstadosCiviles, Opcion{Valor: it.ID, Nombre: it.Nombre})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.cargos.ListarActivos(gctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			refs.Cargos = append(refs.Cargos, Opcion{Valor: it.ID, Nombre: it.Nombre})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.situaciones.ListarActivos(gctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			refs.Situaciones = append(refs.Situaciones, Opcion{Valor: it.ID, Nombre: it.Nombre})
		}
		return nil
	})
	g.Go(func() error {
		items, err := s.sistemasPension.ListarActivos(gctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			refs.SistemasPension = append(refs.SistemasPension, Opcion{Valor: it.ID, Nombre: it.Nombre})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Referencias{}, err
	}
	return refs, nil
}
