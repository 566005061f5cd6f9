package middleware

import (
	"net/http"

	"github.com/Mauricio62/planilla-web/internal/bootstrap"
	"github.com/Mauricio62/planilla-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

// AuditActions registra las operaciones de negocio declaradas en el
// mapa ("MÉTODO /ruta" → acción). Se audita el intento con el status
// final; el sink decide qué hacer con él.
func AuditActions(audit bootstrap.AuditLogger, acciones map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		accion, ok := acciones[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		ctx := c.Request.Context()
		audit.Log(ctx, bootstrap.AuditLog{
			Action:   accion,
			Username: contextutil.GetUsername(ctx),
			Message:  http.StatusText(c.Writer.Status()),
			Meta: map[string]any{
				"path":   c.Request.URL.Path,
				"status": c.Writer.Status(),
			},
		})
	}
}
