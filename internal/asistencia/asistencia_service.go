package asistencia

import (
	"context"
	"io"
	"strconv"

	"github.com/Mauricio62/planilla-web/internal/backend"
)

type Service struct {
	api *backend.Client
	ep  backend.AsistenciaEndpoints
}

func NewService(api *backend.Client, ep backend.AsistenciaEndpoints) *Service {
	return &Service{api: api, ep: ep}
}

// El backend nombra el período con eñe en el query string.
func periodo(anio, mes int) map[string]any {
	return map[string]any{
		"año": anio,
		"mes": mes,
	}
}

// Buscar trae el tablero de un período en una sola petición.
func (s *Service) Buscar(ctx context.Context, anio, mes int) ([]AsistenciaRow, error) {
	var rows []AsistenciaRow
	if err := s.api.Get(ctx, s.ep.Buscar, backend.Params(periodo(anio, mes)), &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []AsistenciaRow{}
	}
	return rows, nil
}

func (s *Service) DescargarExcel(ctx context.Context, anio, mes int) (backend.Blob, error) {
	return s.api.GetBlob(ctx, s.ep.DescargarExcel, backend.Params(periodo(anio, mes)))
}

// CargarExcel sube la plantilla y devuelve el tablero que el backend
// armó a partir del archivo.
func (s *Service) CargarExcel(ctx context.Context, anio, mes int, fileName string, file io.Reader) ([]AsistenciaRow, error) {
	fields := map[string]string{
		"año": strconv.Itoa(anio),
		"mes": strconv.Itoa(mes),
	}

	var out struct {
		Data []AsistenciaRow `json:"data"`
	}
	if err := s.api.PostMultipart(ctx, s.ep.CargarExcel, fields, "archivo", fileName, file, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []AsistenciaRow{}
	}
	return out.Data, nil
}

// Guardar envía el tablero completo, no solo las filas tocadas: el
// backend reemplaza el período entero.
func (s *Service) Guardar(ctx context.Context, datos []AsistenciaGuardarDTO) error {
	return s.api.Post(ctx, s.ep.Guardar, datos, nil)
}
