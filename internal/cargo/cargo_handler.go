package cargo

import (
	"strings"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func webConfig() catalogo.WebConfig[CargoDTO] {
	return catalogo.WebConfig[CargoDTO]{
		Prefix:        "/cargo",
		Active:        "cargo",
		TitlePlural:   "Cargos",
		TitleSingular: "Cargo",
		Columns: []webui.Column{
			{Header: "Nombre"},
			{Header: "Fecha Creación"},
			{Header: "Última Modificación"},
		},
		Row: func(d CargoDTO) webui.Row {
			return webui.Row{
				ID:     d.IDCargo,
				Activo: d.Activo,
				Cells: []string{
					d.Nombre,
					webui.FechaCorta(d.FecCreacion),
					webui.FechaCorta(d.FecUltimaModificacion),
				},
			}
		},
		Fields: func(d CargoDTO, mode catalogo.Mode) []webui.Field {
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

func parseForm(c *gin.Context) (CargoDTO, error) {
	var req CargoForm
	if err := c.ShouldBind(&req); err != nil {
		return CargoDTO{}, err
	}
	return CargoDTO{Nombre: strings.TrimSpace(req.Nombre), Activo: req.Activo}, nil
}
