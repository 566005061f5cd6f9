package planilla

import (
	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, api *backend.Client, ep backend.PlanillaEndpoints, calculos *Calculos, deps webui.Deps) {
	h := NewHandler(NewService(api, ep), calculos, deps)

	grupo := r.Group("/planilla-mensual")
	{
		grupo.GET("", h.List)
		grupo.GET("/boleta", h.Boleta)
		grupo.POST("/calcular", h.Calcular)
		grupo.POST("/guardar", h.Guardar)
	}
}
