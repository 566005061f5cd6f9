package middleware

import (
	"net/http"

	"github.com/Mauricio62/planilla-web/internal/session"
	"github.com/Mauricio62/planilla-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionManager conecta la cookie del navegador con el estado guardado
// en Redis. Attach corre en toda petición; RequireAuth solo en las rutas
// protegidas.
type SessionManager struct {
	store  *session.Store
	logger *zap.Logger
}

func NewSessionManager(store *session.Store, logger *zap.Logger) *SessionManager {
	return &SessionManager{store: store, logger: logger}
}

// Attach asegura que la petición tenga un session id (emitiendo la
// cookie si hace falta) y, si hay sesión iniciada, propaga el token y
// el usuario al contexto estándar para que el cliente del backend los use.
func (m *SessionManager) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.CookieName)
		if err != nil || sid == "" {
			sid = session.NewSessionID()
			c.SetCookie(session.CookieName, sid, 0, "/", "", false, true)
		}
		c.Set("session_id", sid)

		ctx := c.Request.Context()

		token, err := m.store.Token(ctx, sid)
		if err == nil && token != "" {
			user, uerr := m.store.CurrentUser(ctx, sid)
			if uerr == nil {
				c.Set("current_user", &user)
				ctx = contextutil.WithToken(ctx, token)
				ctx = contextutil.WithUsername(ctx, user.Username)
				c.Request = c.Request.WithContext(ctx)
			}
		}

		c.Next()
	}
}

// RequireAuth corta la navegación antes de llegar al handler: sin
// sesión iniciada no se renderiza nada, se redirige al login.
func (m *SessionManager) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("current_user"); !exists {
			c.Redirect(http.StatusSeeOther, "/auth/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ForceLogout limpia la sesión local y manda al login. Se usa cuando el
// backend responde 401: el token guardado ya no sirve.
func (m *SessionManager) ForceLogout(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid != "" {
		if err := m.store.Clear(c.Request.Context(), sid); err != nil {
			m.logger.Warn("⚠️ no se pudo limpiar la sesión", zap.Error(err))
		}
	}
	c.Redirect(http.StatusSeeOther, "/auth/login")
	c.Abort()
}

// CurrentUser recupera el usuario que Attach dejó en el contexto de gin.
func CurrentUser(c *gin.Context) (*session.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*session.User)
	return user, ok
}
