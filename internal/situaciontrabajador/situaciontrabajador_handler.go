package situaciontrabajador

import (
	"strings"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func webConfig() catalogo.WebConfig[SituacionTrabajadorDTO] {
	return catalogo.WebConfig[SituacionTrabajadorDTO]{
		Prefix:        "/situacion-trabajador",
		Active:        "situacion-trabajador",
		TitlePlural:   "Situaciones del Trabajador",
		TitleSingular: "Situación del Trabajador",
		Columns: []webui.Column{
			{Header: "Nombre"},
			{Header: "Fecha Creación"},
			{Header: "Última Modificación"},
		},
		Row: func(d SituacionTrabajadorDTO) webui.Row {
			return webui.Row{
				ID:     d.IDSituacion,
				Activo: d.Activo,
				Cells: []string{
					d.Nombre,
					webui.FechaCorta(d.FecCreacion),
					webui.FechaCorta(d.FecUltimaModificacion),
				},
			}
		},
		Fields: func(d SituacionTrabajadorDTO, mode catalogo.Mode) []webui.Field {
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

func parseForm(c *gin.Context) (SituacionTrabajadorDTO, error) {
	var req SituacionTrabajadorForm
	if err := c.ShouldBind(&req); err != nil {
		return SituacionTrabajadorDTO{}, err
	}
	return SituacionTrabajadorDTO{Nombre: strings.TrimSpace(req.Nombre), Activo: req.Activo}, nil
}
