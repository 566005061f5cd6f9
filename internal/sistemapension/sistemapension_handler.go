package sistemapension

import (
	"strconv"
	"strings"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func webConfig() catalogo.WebConfig[SistemaPensionDTO] {
	return catalogo.WebConfig[SistemaPensionDTO]{
		Prefix:        "/sistema-pension",
		Active:        "sistema-pension",
		TitlePlural:   "Sistemas de Pensión",
		TitleSingular: "Sistema de Pensión",
		Columns: []webui.Column{
			{Header: "Nombre"},
			{Header: "Aporte (%)"},
			{Header: "Comisión (%)"},
			{Header: "Prima (%)"},
		},
		Row: func(d SistemaPensionDTO) webui.Row {
			return webui.Row{
				ID:     d.IDSistemaPension,
				Activo: d.Activo,
				Cells: []string{
					d.Nombre,
					porcentaje(d.Aporte),
					porcentaje(d.Comision),
					porcentaje(d.Prima),
				},
			}
		},
		Fields: func(d SistemaPensionDTO, mode catalogo.Mode) []webui.Field {
			activo := d.Activo
			if mode.IsCreate() {
				activo = true
			}
			return []webui.Field{
				{Name: "nombre", Label: "Nombre", Type: "text", Value: d.Nombre},
				{Name: "aporte", Label: "Aporte (%)", Type: "number", Value: porcentaje(d.Aporte), Min: "0", Max: "100", Step: "0.01"},
				{Name: "comision", Label: "Comisión (%)", Type: "number", Value: porcentaje(d.Comision), Min: "0", Max: "100", Step: "0.01"},
				{Name: "prima", Label: "Prima (%)", Type: "number", Value: porcentaje(d.Prima), Min: "0", Max: "100", Step: "0.01"},
				{Name: "activo", Label: "Activo", Type: "checkbox", Value: webui.BoolString(activo)},
			}
		},
		ParseForm: parseForm,
	}
}

func parseForm(c *gin.Context) (SistemaPensionDTO, error) {
	var req SistemaPensionForm
	if err := c.ShouldBind(&req); err != nil {
		return SistemaPensionDTO{}, err
	}
	return SistemaPensionDTO{
		Nombre:   strings.TrimSpace(req.Nombre),
		Aporte:   req.Aporte,
		Comision: req.Comision,
		Prima:    req.Prima,
		Activo:   req.Activo,
	}, nil
}

func porcentaje(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
