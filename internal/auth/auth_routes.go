package auth

import (
	"github.com/Mauricio62/planilla-web/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes cuelga las pantallas de autenticación. Van fuera del
// grupo protegido: son las únicas rutas accesibles sin sesión.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	grupo := r.Group("/auth")
	{
		grupo.GET("/login", h.LoginPage)
		grupo.POST("/login", middleware.RateLimitByIP(0.5, 5), h.Login)
		grupo.GET("/register", h.RegisterPage)
		grupo.POST("/register", h.Register)
		grupo.GET("/logout", h.Logout)
	}
}
