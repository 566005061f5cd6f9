package webui

import (
	"github.com/gin-gonic/gin"
)

// BaseFunc arma los datos comunes de toda página (título, usuario,
// toasts, entrada de menú activa). La implementación real vive en el
// registry porque necesita la sesión y el centro de notificaciones.
type BaseFunc func(c *gin.Context, title, active string) gin.H

// Deps agrupa lo que todo handler web necesita además de su servicio:
// el centro de toasts, el armador del view-model base y el callback
// que cierra la sesión cuando el backend responde 401.
type Deps struct {
	Notif       NotificationCenter
	Base        BaseFunc
	ForceLogout func(c *gin.Context)
}

// NotificationCenter es lo que los handlers usan del centro de
// notificaciones; la implementación real vive en internal/notificacion.
type NotificationCenter interface {
	Success(sessionID, message string)
	Error(sessionID, message string)
	Warning(sessionID, message string)
	Info(sessionID, message string)
}

// Merge combina el view-model base con los datos propios de la página.
func Merge(base gin.H, extra gin.H) gin.H {
	out := gin.H{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
