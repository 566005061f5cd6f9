package cargo

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/notificacion"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSessionID = "sid-test"

func newTestRouter(backendURL string) (*gin.Engine, *notificacion.Center) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.SetHTMLTemplate(webui.Templates())

	notif := notificacion.NewCenter()
	api := backend.NewClient(backendURL, time.Second, zap.NewNop())

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
	RegisterRoutes(grp, api, backend.DefaultEndpoints().Cargo, deps)

	return r, notif
}

func TestSave_NombreMuyCorto_NoLlamaAlBackend(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	router, notif := newTestRouter(srv.URL)

	form := url.Values{"mode": {"create"}, "nombre": {"ab"}, "activo": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/cargo/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cargo/create", w.Header().Get("Location"))
	assert.Equal(t, int64(0), hits.Load(), "la validación debe cortar antes de emitir la petición")

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelError, toasts[0].Level)
	}
}

func TestSave_Valido_CreaEnElBackend(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"idCargo":1,"nombre":"Analista","activo":true}`))
	}))
	defer srv.Close()

	router, notif := newTestRouter(srv.URL)

	form := url.Values{"mode": {"create"}, "nombre": {"Analista"}, "activo": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/cargo/save", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cargo", w.Header().Get("Location"))
	assert.Equal(t, "/cargos/insertar", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelSuccess, toasts[0].Level)
		assert.Equal(t, "Cargo creado exitosamente", toasts[0].Message)
	}
}

func TestList_BackendCaido_RindePaginaVaciaConToast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	router, notif := newTestRouter(srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/cargo", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// La pantalla no se cae: responde 200 con la tabla vacía y el error
	// queda encolado como toast para el siguiente render.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cargos")

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelError, toasts[0].Level)
	}
}

func TestList_Backend401_CierraSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	router, _ := newTestRouter(srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/cargo", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}
