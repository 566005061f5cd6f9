package middleware

import (
	"github.com/Mauricio62/planilla-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger cuelga un logger con metadata de la petición en el
// contexto estándar, para que los servicios lo recuperen vía
// contextutil sin conocer gin. Corre después de Attach, así el
// username ya está disponible.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		username := ""
		if user, ok := CurrentUser(c); ok {
			username = user.Username
		}

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("username", username),
		)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
