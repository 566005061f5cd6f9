package chat

import (
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r gin.IRouter, api *backend.Client, ep backend.ChatEndpoints, bootstrapTimeout time.Duration, widgets *Widgets, deps webui.Deps, logger *zap.Logger) {
	h := NewHandler(NewService(api, ep), widgets, bootstrapTimeout, deps, logger)

	r.GET("/chat", h.Page)

	grupo := r.Group("/api/chat")
	{
		grupo.POST("/message", h.Message)
		grupo.POST("/clear", h.Clear)
		grupo.POST("/teardown", h.Teardown)
	}
}
