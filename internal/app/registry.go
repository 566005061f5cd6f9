package app

import (
	"net/http"

	"github.com/Mauricio62/planilla-web/internal/asistencia"
	"github.com/Mauricio62/planilla-web/internal/auth"
	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/bootstrap"
	"github.com/Mauricio62/planilla-web/internal/cargo"
	"github.com/Mauricio62/planilla-web/internal/chat"
	"github.com/Mauricio62/planilla-web/internal/config"
	"github.com/Mauricio62/planilla-web/internal/estadocivil"
	"github.com/Mauricio62/planilla-web/internal/genero"
	"github.com/Mauricio62/planilla-web/internal/middleware"
	"github.com/Mauricio62/planilla-web/internal/notificacion"
	"github.com/Mauricio62/planilla-web/internal/planilla"
	"github.com/Mauricio62/planilla-web/internal/session"
	"github.com/Mauricio62/planilla-web/internal/shared/response"
	"github.com/Mauricio62/planilla-web/internal/sistemapension"
	"github.com/Mauricio62/planilla-web/internal/situaciontrabajador"
	"github.com/Mauricio62/planilla-web/internal/tipodocumento"
	"github.com/Mauricio62/planilla-web/internal/trabajador"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
	api *backend.Client,
	audit bootstrap.AuditLogger,
) error {
	logger := zap.L()

	sessions := session.NewStore(rdb, cfg.SessionTTL)
	manager := middleware.NewSessionManager(sessions, logger.Named("session"))
	notif := notificacion.NewCenter()

	deps := webui.Deps{
		Notif:       notif,
		ForceLogout: manager.ForceLogout,
		Base: func(c *gin.Context, title, active string) gin.H {
			h := gin.H{"Title": title, "Active": active}
			if user, ok := middleware.CurrentUser(c); ok {
				h["User"] = user
			}
			if sid := c.GetString("session_id"); sid != "" {
				h["Notifications"] = notif.Consume(sid)
			}
			return h
		},
	}

	enforcer, err := middleware.NewEnforcer()
	if err != nil {
		return err
	}

	router.Use(
		middleware.RequestID(),
		manager.Attach(),
		middleware.ContextLogger(logger),
	)

	ep := backend.DefaultEndpoints()

	// Pantallas públicas.
	authSvc := auth.NewService(api, ep.Auth, sessions, audit)
	auth.RegisterRoutes(router, auth.NewHandler(authSvc, deps))

	router.GET("/unauthorized", func(c *gin.Context) {
		c.HTML(http.StatusOK, "unauthorized.tmpl", deps.Base(c, "Acceso denegado", ""))
	})

	// Todo lo demás exige sesión iniciada y pasa por la política RBAC.
	protegido := router.Group("")
	protegido.Use(
		manager.RequireAuth(),
		middleware.Authorize(enforcer),
		middleware.AuditActions(audit, map[string]string{
			"POST /asistencia/guardar":       bootstrap.AuditAttendanceBulkSave,
			"POST /planilla-mensual/guardar": bootstrap.AuditPayrollSave,
		}),
	)

	protegido.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/main-menu")
	})
	protegido.GET("/main-menu", func(c *gin.Context) {
		c.HTML(http.StatusOK, "menu.tmpl", deps.Base(c, "Menú principal", "main-menu"))
	})
	protegido.GET("/dashboard", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.tmpl", deps.Base(c, "Dashboard", "dashboard"))
	})

	// El spinner global consulta si hay llamadas al backend en vuelo.
	protegido.GET("/api/loading", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"activo": api.InFlight() > 0}, nil)
	})

	cargo.RegisterRoutes(protegido, api, ep.Cargo, deps)
	genero.RegisterRoutes(protegido, api, ep.Genero, deps)
	estadocivil.RegisterRoutes(protegido, api, ep.EstadoCivil, deps)
	sistemapension.RegisterRoutes(protegido, api, ep.SistemaPension, deps)
	tipodocumento.RegisterRoutes(protegido, api, ep.TipoDocumento, deps)
	situaciontrabajador.RegisterRoutes(protegido, api, ep.SituacionTrabajador, deps)
	trabajador.RegisterRoutes(protegido, api, ep, deps)
	asistencia.RegisterRoutes(protegido, api, ep.Asistencia, deps)
	planilla.RegisterRoutes(protegido, api, ep.Planilla, planilla.NewCalculos(), deps)
	chat.RegisterRoutes(protegido, api, ep.Chat, cfg.ChatBootstrapTimeout, chat.NewWidgets(), deps, logger.Named("chat"))

	// Cualquier ruta desconocida vuelve al login, como el comodín del
	// router original.
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/auth/login")
	})

	return nil
}
