package estadocivil

import (
	"strings"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func webConfig() catalogo.WebConfig[EstadoCivilDTO] {
	return catalogo.WebConfig[EstadoCivilDTO]{
		Prefix:        "/estado-civil",
		Active:        "estado-civil",
		TitlePlural:   "Estados Civiles",
		TitleSingular: "Estado Civil",
		Columns: []webui.Column{
			{Header: "Nombre"},
			{Header: "Fecha Creación"},
			{Header: "Última Modificación"},
		},
		Row: func(d EstadoCivilDTO) webui.Row {
			return webui.Row{
				ID:     d.IDEstadoCivil,
				Activo: d.Activo,
				Cells: []string{
					d.Nombre,
					webui.FechaCorta(d.FecCreacion),
					webui.FechaCorta(d.FecUltimaModificacion),
				},
			}
		},
		Fields: func(d EstadoCivilDTO, mode catalogo.Mode) []webui.Field {
			activo := d.Activo
			if mode.IsCreate() {
				activo = true
			}
			return []webui.Field{
				{Name: "nombre", Label: "Nombre", Type: "text", Value: d.Nombre},
				{Name: "activo", Label: "Activo", Type: "checkbox", Value: webui.BoolString(activo)},
			}
		},
		ParseForm: parseForm,
	}
}

func parseForm(c *gin.Context) (EstadoCivilDTO, error) {
	var req EstadoCivilForm
	if err := c.ShouldBind(&req); err != nil {
		return EstadoCivilDTO{}, err
	}
	return EstadoCivilDTO{Nombre: strings.TrimSpace(req.Nombre), Activo: req.Activo}, nil
}
