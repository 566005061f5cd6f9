package trabajador

import (
	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, api *backend.Client, ep backend.Endpoints, deps webui.Deps) {
	h := NewHandler(NewService(api, ep), deps)

	grp := r.Group("/trabajador")
	{
		grp.GET("", h.List)
		grp.GET("/create", h.Form("create"))
		grp.GET("/edit/:id", h.Form("edit"))
		grp.GET("/view/:id", h.Form("view"))
		grp.POST("/save", h.Save)
		grp.POST("/toggle/:id", h.Toggle)
		grp.POST("/delete/:id", h.Delete)
	}
}
