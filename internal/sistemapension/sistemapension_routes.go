package sistemapension

import (
	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, api *backend.Client, ep backend.CatalogEndpoints, deps webui.Deps) {
	svc := catalogo.NewService[SistemaPensionDTO](api, ep)
	h := catalogo.NewWebHandler(webConfig(), svc, deps)
	catalogo.RegisterWebRoutes(r, h)
}
