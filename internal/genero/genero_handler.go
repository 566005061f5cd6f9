package genero

import (
	"strings"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func webConfig() catalogo.WebConfig[GeneroDTO] {
	return catalogo.WebConfig[GeneroDTO]{
		Prefix:        "/genero",
		Active:        "genero",
		TitlePlural:   "Géneros",
		TitleSingular: "Género",
		Columns: []webui.Column{
			{Header: "Nombre"},
			{Header: "Fecha Creación"},
			{Header: "Última Modificación"},
		},
		Row: func(d GeneroDTO) webui.Row {
			return webui.Row{
				ID:     d.IDGenero,
				Activo: d.Activo,
				Cells: []string{
					d.Nombre,
					webui.FechaCorta(d.FecCreacion),
					webui.FechaCorta(d.FecUltimaModificacion),
				},
			}
		},
		Fields: func(d GeneroDTO, mode catalogo.Mode) []webui.Field {
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

func parseForm(c *gin.Context) (GeneroDTO, error) {
	var req GeneroForm
	if err := c.ShouldBind(&req); err != nil {
		return GeneroDTO{}, err
	}
	return GeneroDTO{Nombre: strings.TrimSpace(req.Nombre), Activo: req.Activo}, nil
}
