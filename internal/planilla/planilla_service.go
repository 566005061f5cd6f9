package planilla

import (
	"context"

	"github.com/Mauricio62/planilla-web/internal/backend"
)

type Service struct {
	api *backend.Client
	ep  backend.PlanillaEndpoints
}

func NewService(api *backend.Client, ep backend.PlanillaEndpoints) *Service {
	return &Service{api: api, ep: ep}
}

// Listar trae las planillas ya persistidas del período. Ojo: este
// endpoint nombra el año sin eñe; calcular y buscarBoleta lo nombran
// con eñe. Así está publicado el backend.
func (s *Service) Listar(ctx context.Context, anio, mes int) ([]PlanillaMensualResponse, error) {
	var out []PlanillaMensualResponse
	params := backend.Params(map[string]any{"anio": anio, "mes": mes})
	if err := s.api.Get(ctx, s.ep.Listar, params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []PlanillaMensualResponse{}
	}
	return out, nil
}

// Calcular es una lectura pura: el backend calcula y devuelve las
// planillas del período sin persistir nada.
func (s *Service) Calcular(ctx context.Context, anio, mes int) ([]PlanillaMensualResponse, error) {
	var out []PlanillaMensualResponse
	params := backend.Params(map[string]any{"año": anio, "mes": mes})
	if err := s.api.Get(ctx, s.ep.CalcularPlanilla, params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []PlanillaMensualResponse{}
	}
	return out, nil
}

// Guardar persiste un lote previamente calculado.
func (s *Service) Guardar(ctx context.Context, planillas []PlanillaMensualResponse) error {
	return s.api.Post(ctx, s.ep.GuardarPlanilla, planillas, nil)
}

// BuscarBoleta trae el detalle de la boleta de un trabajador.
func (s *Service) BuscarBoleta(ctx context.Context, anio, mes int, documento string) (PlanillaPorDocumentoDTO, error) {
	var out PlanillaPorDocumentoDTO
	params := backend.Params(map[string]any{"año": anio, "mes": mes, "documento": documento})
	if err := s.api.Get(ctx, s.ep.BuscarBoleta, params, &out); err != nil {
		return PlanillaPorDocumentoDTO{}, err
	}
	return out, nil
}
