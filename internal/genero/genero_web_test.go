package genero

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"
	"github.com/Mauricio62/planilla-web/internal/notificacion"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Género es uno de los dos catálogos que soportan borrado físico,
// además de la desactivación lógica.
func TestDelete_GeneroBorraConDeleteSobreCambiarEstado(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(webui.Templates())

	notif := notificacion.NewCenter()
	api := backend.NewClient(srv.URL, time.Second, zap.NewNop())
	deps := webui.Deps{
		Notif: notif,
		Base: func(c *gin.Context, title, active string) gin.H {
			return gin.H{"Title": title, "Active": active}
		},
		ForceLogout: func(c *gin.Context) { c.Abort() },
	}

	grp := router.Group("")
	grp.Use(func(c *gin.Context) { c.Set("session_id", "sid") })
	RegisterRoutes(grp, api, backend.DefaultEndpoints().Genero, deps)

	req := httptest.NewRequest(http.MethodPost, "/genero/delete/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/genero", w.Header().Get("Location"))
	assert.Equal(t, "/generos/cambiarEstado/5", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)

	toasts := notif.Consume("sid")
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, "Género eliminado exitosamente", toasts[0].Message)
	}
}
