package asistencia

import (
	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, api *backend.Client, ep backend.AsistenciaEndpoints, deps webui.Deps) {
	h := NewHandler(NewService(api, ep), NewEditores(), deps)

	grp := r.Group("/asistencia")
	{
		grp.GET("", h.List)
		grp.GET("/descargar", h.DescargarExcel)
		grp.POST("/cargar", h.CargarExcel)
		grp.POST("/guardar", h.Guardar)
		grp.POST("/fila/:idx/edit", h.EditRow)
		grp.POST("/fila/:idx/cancel", h.CancelRow)
		grp.POST("/fila/:idx/save", h.SaveRow)
	}
}
