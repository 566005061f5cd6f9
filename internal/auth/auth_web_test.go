package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/bootstrap"
	"github.com/Mauricio62/planilla-web/internal/notificacion"
	"github.com/Mauricio62/planilla-web/internal/session"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	redismock "github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionID = "sid-auth"

type auditRecorder struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (a *auditRecorder) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *auditRecorder) acciones() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

func newTestRouter(backendURL string) (*gin.Engine, *notificacion.Center, redismock.ClientMock, *auditRecorder) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.SetHTMLTemplate(webui.Templates())

	notif := notificacion.NewCenter()
	api := backend.NewClient(backendURL, time.Second, zap.NewNop())

	rdb, mock := redismock.NewClientMock()
	sessions := session.NewStore(rdb, 8*time.Hour)

	audit := &auditRecorder{}
	svc := NewService(api, backend.DefaultEndpoints().Auth, sessions, audit)

	deps := webui.Deps{
		Notif: notif,
		Base: func(c *gin.Context, title, active string) gin.H {
			return gin.H{"Title": title, "Active": active}
		},
		ForceLogout: func(c *gin.Context) {
			c.Redirect(http.StatusSeeOther, "/auth/login")
			c.Abort()
		},
	}

	grp := r.Group("")
	grp.Use(func(c *gin.Context) { c.Set("session_id", testSessionID) })
	RegisterRoutes(grp, NewHandler(svc, deps))

	return r, notif, mock, audit
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Exitoso_GuardaLaSesionYRedirige(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req.Username)
		assert.Equal(t, "secreta", req.Password)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-123","type":"Bearer","username":"admin","roles":["ADMIN"]}`))
	}))
	defer srv.Close()

	router, notif, mock, audit := newTestRouter(srv.URL)

	rawUser, err := json.Marshal(session.User{Username: "admin", Roles: []string{"ADMIN"}})
	require.NoError(t, err)

	mock.ExpectTxPipeline()
	mock.ExpectSet("session:auth_token:"+testSessionID, "tok-123", 8*time.Hour).SetVal("OK")
	mock.ExpectSet("session:current_user:"+testSessionID, rawUser, 8*time.Hour).SetVal("OK")
	mock.ExpectTxPipelineExec()

	w := postForm(router, "/auth/login", url.Values{"username": {"admin"}, "password": {"secreta"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/main-menu", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{bootstrap.AuditLogin}, audit.acciones())

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, "Login exitoso", toasts[0].Message)
	}
}

func TestLogin_CredencialesInvalidas_NoGuardaLaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	router, _, mock, audit := newTestRouter(srv.URL)

	w := postForm(router, "/auth/login", url.Values{"username": {"admin"}, "password": {"equivocada"}})

	// Vuelve a la pantalla de login con el error inline; redis nunca se
	// toca.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Usuario o contraseña incorrectos")
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, audit.acciones())
}

func TestLogin_FormularioIncompleto_NoLlamaAlBackend(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	router, _, _, _ := newTestRouter(srv.URL)

	w := postForm(router, "/auth/login", url.Values{"username": {"ad"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ingrese usuario y contraseña válidos")
	assert.Zero(t, hits)
}

func TestRegisterPage_CargaLosRolesDelBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/roles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"value":"ADMIN","description":"Administrador"},{"value":"USER","description":"Usuario"}]`))
	}))
	defer srv.Close()

	router, _, _, _ := newTestRouter(srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/auth/register", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Administrador")
	assert.Contains(t, w.Body.String(), `value="USER"`)
}

func TestRegister_Exitoso_VuelveAlLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/register":
			var req RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "nuevo", req.Username)
			assert.Equal(t, "USER", req.Role)
			w.Write([]byte(`{"success":true,"message":"Usuario registrado exitosamente","username":"nuevo","role":"USER"}`))
		case "/auth/roles":
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	router, notif, _, _ := newTestRouter(srv.URL)

	w := postForm(router, "/auth/register", url.Values{
		"username": {"nuevo"},
		"email":    {"nuevo@empresa.pe"},
		"password": {"secreta1"},
		"role":     {"USER"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, "Usuario registrado exitosamente", toasts[0].Message)
	}
}

func TestRegister_BackendRechaza_MuestraElMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/register":
			w.Write([]byte(`{"success":false,"message":"El usuario ya existe"}`))
		case "/auth/roles":
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	router, _, _, _ := newTestRouter(srv.URL)

	w := postForm(router, "/auth/register", url.Values{
		"username": {"nuevo"},
		"email":    {"nuevo@empresa.pe"},
		"password": {"secreta1"},
		"role":     {"USER"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "El usuario ya existe")
}

func TestLogout_LimpiaLaSesionYAudita(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	router, _, mock, audit := newTestRouter(srv.URL)

	mock.ExpectTxPipeline()
	mock.ExpectDel("session:auth_token:" + testSessionID).SetVal(1)
	mock.ExpectDel("session:current_user:" + testSessionID).SetVal(1)
	mock.ExpectTxPipelineExec()

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{bootstrap.AuditLogout}, audit.acciones())
}
