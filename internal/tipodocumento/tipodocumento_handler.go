package tipodocumento

import (
	"strings"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func webConfig() catalogo.WebConfig[TipoDocumentoDTO] {
	return catalogo.WebConfig[TipoDocumentoDTO]{
		Prefix:        "/tipo-documento",
		Active:        "tipo-documento",
		TitlePlural:   "Tipos de Documento",
		TitleSingular: "Tipo de Documento",
		Columns: []webui.Column{
			{Header: "Nombre"},
			{Header: "Fecha Creación"},
			{Header: "Última Modificación"},
		},
		Row: func(d TipoDocumentoDTO) webui.Row {
			return webui.Row{
				ID:     d.IDTipoDocumento,
				Activo: d.Activo,
				Cells: []string{
					d.Nombre,
					webui.FechaCorta(d.FecCreacion),
					webui.FechaCorta(d.FecUltimaModificacion),
				},
			}
		},
		Fields: func(d TipoDocumentoDTO, mode catalogo.Mode) []webui.Field {
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

func parseForm(c *gin.Context) (TipoDocumentoDTO, error) {
	var req TipoDocumentoForm
	if err := c.ShouldBind(&req); err != nil {
		return TipoDocumentoDTO{}, err
	}
	return TipoDocumentoDTO{Nombre: strings.TrimSpace(req.Nombre), Activo: req.Activo}, nil
}
