package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mauricio62/planilla-web/internal/session"

	"github.com/gin-gonic/gin"
	redismock "github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequireAuth_SinSesionRedirigeAlLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	manager := NewSessionManager(session.NewStore(rdb, time.Hour), zap.NewNop())

	mock.ExpectGet("session:auth_token:sid-x").RedisNil()

	alcanzado := false
	r := gin.New()
	r.Use(manager.Attach(), manager.RequireAuth())
	r.GET("/cargo", func(c *gin.Context) { alcanzado = true })

	req := httptest.NewRequest(http.MethodGet, "/cargo", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-x"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
	assert.False(t, alcanzado, "el handler no debe ejecutarse sin sesión")
}

func TestAttach_EmiteCookieCuandoNoHay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	manager := NewSessionManager(session.NewStore(rdb, time.Hour), zap.NewNop())
	mock.Regexp().ExpectGet("session:auth_token:.+").RedisNil()

	var sid string
	r := gin.New()
	r.Use(manager.Attach())
	r.GET("/", func(c *gin.Context) { sid = c.GetString("session_id") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, sid)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, sid, cookies[0].Value)
}

func conUsuario(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session_id", "sid-rbac")
		c.Set("current_user", &session.User{Username: "ana", Roles: roles})
	}
}

func TestAuthorize_UsuarioNoVeLaPlanilla(t *testing.T) {
	gin.SetMode(gin.TestMode)

	e, err := NewEnforcer()
	require.NoError(t, err)

	r := gin.New()
	r.Use(conUsuario("USER"), Authorize(e))
	r.GET("/planilla-mensual", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/cargo", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/planilla-mensual", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/unauthorized", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cargo", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorize_AdminVeTodo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	e, err := NewEnforcer()
	require.NoError(t, err)

	r := gin.New()
	r.Use(conUsuario("ADMIN"), Authorize(e))
	r.POST("/planilla-mensual/guardar", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/planilla-mensual/guardar", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitByIP_CortaTrasElBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/login", RateLimitByIP(0.01, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	var ultimo int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		ultimo = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, ultimo)
}
