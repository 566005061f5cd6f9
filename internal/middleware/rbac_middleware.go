package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
)

// Modelo RBAC en memoria: sujeto = rol del usuario, objeto = ruta,
// acción = método HTTP. keyMatch2 entiende comodines tipo /cargo/*.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// NewEnforcer arma el enforcer con las políticas de navegación. El rol
// ADMIN ve todo; USER opera los catálogos, trabajadores y asistencias
// pero no la planilla mensual.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{"ADMIN", "/*", "*"},
		{"USER", "/main-menu", "*"},
		{"USER", "/dashboard", "*"},
		{"USER", "/unauthorized", "*"},
		{"USER", "/cargo/*", "*"},
		{"USER", "/cargo", "*"},
		{"USER", "/genero/*", "*"},
		{"USER", "/genero", "*"},
		{"USER", "/estado-civil/*", "*"},
		{"USER", "/estado-civil", "*"},
		{"USER", "/sistema-pension/*", "*"},
		{"USER", "/sistema-pension", "*"},
		{"USER", "/tipo-documento/*", "*"},
		{"USER", "/tipo-documento", "*"},
		{"USER", "/situacion-trabajador/*", "*"},
		{"USER", "/situacion-trabajador", "*"},
		{"USER", "/trabajador/*", "*"},
		{"USER", "/trabajador", "*"},
		{"USER", "/asistencia/*", "*"},
		{"USER", "/asistencia", "*"},
		{"USER", "/chat", "*"},
		{"USER", "/api/*", "*"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Authorize evalúa cada rol del usuario contra la política; basta con
// que uno permita la ruta. Sin permiso se redirige a la pantalla de
// acceso denegado, nunca al handler.
func Authorize(e *casbin.Enforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/auth/login")
			c.Abort()
			return
		}

		for _, role := range user.Roles {
			allowed, err := e.Enforce(role, c.Request.URL.Path, c.Request.Method)
			if err == nil && allowed {
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusSeeOther, "/unauthorized")
		c.Abort()
	}
}
