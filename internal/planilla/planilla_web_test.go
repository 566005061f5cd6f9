package planilla

import (
	"io"
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
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionID = "sid-planilla"

func newTestRouter(backendURL string) (*gin.Engine, *notificacion.Center, *Calculos) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.SetHTMLTemplate(webui.Templates())

	notif := notificacion.NewCenter()
	api := backend.NewClient(backendURL, time.Second, zap.NewNop())
	calculos := NewCalculos()

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
	RegisterRoutes(grp, api, backend.DefaultEndpoints().Planilla, calculos, deps)

	return r, notif, calculos
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListar_NombraElAnioSinEnie(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotQuery, err = url.ParseQuery(r.URL.RawQuery)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	router, _, _ := newTestRouter(srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/planilla-mensual?anio=2024&mes=6", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024", gotQuery.Get("anio"))
	assert.Equal(t, "6", gotQuery.Get("mes"))
	assert.Empty(t, gotQuery.Get("año"))
}

func TestCalcular_NombraElAnioConEnieYRetieneElCalculo(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var err error
		gotQuery, err = url.ParseQuery(r.URL.RawQuery)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"anio":2024,"mes":6,"trabajador":{"documento":"44556677","nombres":"Rosa","apellidoPaterno":"Campos"},"totalNetoBoleta":1825.50}]`))
	}))
	defer srv.Close()

	router, notif, calculos := newTestRouter(srv.URL)

	w := postForm(router, "/planilla-mensual/calcular", url.Values{"anio": {"2024"}, "mes": {"6"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/planilla-mensual?anio=2024&mes=6", w.Header().Get("Location"))
	assert.Equal(t, "/planilla-mensual/calcularPlanilla", gotPath)
	assert.Equal(t, "2024", gotQuery.Get("año"))
	assert.Equal(t, "6", gotQuery.Get("mes"))

	calc, ok := calculos.Get(testSessionID)
	require.True(t, ok, "el cálculo debe quedar retenido en la sesión")
	require.Len(t, calc.Planillas, 1)
	assert.Equal(t, "44556677", calc.Planillas[0].Trabajador.Documento)

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelSuccess, toasts[0].Level)
	}
}

func TestGuardar_SinCalculoPrevio_NoLlamaAlBackend(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	router, notif, _ := newTestRouter(srv.URL)

	w := postForm(router, "/planilla-mensual/guardar", url.Values{"anio": {"2024"}, "mes": {"6"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, int64(0), hits.Load(), "sin cálculo previo no hay nada que persistir")

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelError, toasts[0].Level)
		assert.Equal(t, "No hay planillas calculadas para guardar.", toasts[0].Message)
	}
}

func TestGuardar_PersisteElCalculoYLoDescarta(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if b, err := io.ReadAll(r.Body); err == nil {
			gotBody = string(b)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	router, notif, calculos := newTestRouter(srv.URL)

	neto := 1825.50
	calculos.Put(testSessionID, Calculo{Anio: 2024, Mes: 6, Planillas: []PlanillaMensualResponse{{
		Anio:            2024,
		Mes:             6,
		Trabajador:      &TrabajadorRef{Documento: "44556677", Nombres: "Rosa", ApellidoPaterno: "Campos"},
		TotalNetoBoleta: &neto,
	}}})

	w := postForm(router, "/planilla-mensual/guardar", url.Values{"anio": {"2024"}, "mes": {"6"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/planilla-mensual/guardarPlanilla", gotPath)
	assert.Contains(t, gotBody, `"documento":"44556677"`)
	assert.Contains(t, gotBody, `"totalNetoBoleta":1825.5`)

	_, ok := calculos.Get(testSessionID)
	assert.False(t, ok, "el cálculo guardado deja de estar pendiente")

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelSuccess, toasts[0].Level)
		assert.Equal(t, "Planillas guardadas correctamente", toasts[0].Message)
	}
}

func TestBoleta_ConceptosAusentesSalenEnCero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q, err := url.ParseQuery(r.URL.RawQuery)
		require.NoError(t, err)
		assert.Equal(t, "2024", q.Get("año"))
		assert.Equal(t, "6", q.Get("mes"))
		assert.Equal(t, "44556677", q.Get("documento"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"anio": 2024, "mes": 6,
			"trabajador": {"documento":"44556677","nombres":"Rosa","apellidoPaterno":"Campos","fecIngreso":"2020-03-01","cargo":{"nombre":"Contadora"}},
			"haberBasico": 2500.00,
			"totalIngreso": 2500.00,
			"totalDescuento": 325.00,
			"totalNetoBoleta": 2175.00,
			"totalNetoBoletaCad": "DOS MIL CIENTO SETENTA Y CINCO CON 00/100 SOLES",
			"ndiasTrab": 30,
			"nhorasNormal": 240
		}`))
	}))
	defer srv.Close()

	router, _, _ := newTestRouter(srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/planilla-mensual/boleta?anio=2024&mes=6&documento=44556677", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "BOLETA DE PAGO")
	assert.Contains(t, body, "44556677 - Rosa Campos")
	assert.Contains(t, body, "Contadora")
	assert.Contains(t, body, "S/ 2,500.00")
	assert.Contains(t, body, "DOS MIL CIENTO SETENTA Y CINCO CON 00/100 SOLES")
	// Los conceptos que el backend omitió (horas extra, vales, asignación
	// familiar) salen como S/ 0.00, nunca en blanco.
	assert.Contains(t, body, "S/ 0.00")
	assert.NotContains(t, body, "&lt;nil&gt;")
}

func TestBoleta_SinDocumento_VuelveAlListado(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	router, notif, _ := newTestRouter(srv.URL)

	req := httptest.NewRequest(http.MethodGet, "/planilla-mensual/boleta?anio=2024&mes=6", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, int64(0), hits.Load())

	toasts := notif.Consume(testSessionID)
	if assert.Len(t, toasts, 1) {
		assert.Equal(t, notificacion.LevelError, toasts[0].Level)
	}
}

func TestList_ConCalculoPendiente_NoConsultaAlBackend(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	router, _, calculos := newTestRouter(srv.URL)

	calculos.Put(testSessionID, Calculo{Anio: 2024, Mes: 6, Planillas: []PlanillaMensualResponse{{
		Anio: 2024, Mes: 6,
		Trabajador: &TrabajadorRef{Documento: "44556677", Nombres: "Rosa", ApellidoPaterno: "Campos"},
	}}})

	req := httptest.NewRequest(http.MethodGet, "/planilla-mensual?anio=2024&mes=6", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(0), hits.Load(), "el cálculo pendiente manda sobre lo persistido")
	assert.Contains(t, w.Body.String(), "44556677")

	// Otro período sí vuelve al backend.
	req = httptest.NewRequest(http.MethodGet, "/planilla-mensual?anio=2024&mes=7", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), hits.Load())
}
