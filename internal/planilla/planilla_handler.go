package planilla

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

// Calculo es el resultado de un cálculo pendiente de guardar. Vive en
// memoria por sesión: guardar solo persiste lo que esa sesión calculó.
// Una vez publicado en el registro es de solo lectura; recalcular
// publica un Calculo nuevo.
type Calculo struct {
	Anio      int
	Mes       int
	Planillas []PlanillaMensualResponse
}

type Calculos struct {
	mu        sync.Mutex
	porSesion map[string]Calculo
}

func NewCalculos() *Calculos {
	return &Calculos{porSesion: make(map[string]Calculo)}
}

func (c *Calculos) Get(sessionID string) (Calculo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	calc, ok := c.porSesion[sessionID]
	return calc, ok
}

func (c *Calculos) Put(sessionID string, calc Calculo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.porSesion[sessionID] = calc
}

func (c *Calculos) Drop(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.porSesion, sessionID)
}

type Handler struct {
	svc      *Service
	calculos *Calculos
	deps     webui.Deps
}

func NewHandler(svc *Service, calculos *Calculos, deps webui.Deps) *Handler {
	return &Handler{svc: svc, calculos: calculos, deps: deps}
}

func (h *Handler) fail(c *gin.Context, sid string, err error, mensaje, returnTo string) {
	if apperror.IsUnauthorized(err) {
		h.deps.ForceLogout(c)
		return
	}
	h.deps.Notif.Error(sid, mensaje)
	c.Redirect(http.StatusSeeOther, returnTo)
}

func periodoDesdeQuery(c *gin.Context) (int, int) {
	ahora := time.Now()
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil || anio <= 0 {
		anio = ahora.Year()
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil || mes < 1 || mes > 12 {
		mes = int(ahora.Month())
	}
	return anio, mes
}

func periodoDesdeForm(c *gin.Context) (int, int) {
	ahora := time.Now()
	anio, err := strconv.Atoi(c.PostForm("anio"))
	if err != nil || anio <= 0 {
		anio = ahora.Year()
	}
	mes, err := strconv.Atoi(c.PostForm("mes"))
	if err != nil || mes < 1 || mes > 12 {
		mes = int(ahora.Month())
	}
	return anio, mes
}

func rutaPeriodo(anio, mes int) string {
	return fmt.Sprintf("/planilla-mensual?anio=%d&mes=%d", anio, mes)
}

// List muestra las planillas del período. Si la sesión tiene un cálculo
// pendiente del mismo período, ese cálculo manda sobre lo persistido:
// es lo que el usuario está por guardar.
func (h *Handler) List(c *gin.Context) {
	sid := c.GetString("session_id")
	anio, mes := periodoDesdeQuery(c)

	if calc, ok := h.calculos.Get(sid); ok && calc.Anio == anio && calc.Mes == mes {
		h.render(c, anio, mes, calc.Planillas, true)
		return
	}

	planillas, err := h.svc.Listar(c.Request.Context(), anio, mes)
	if err != nil {
		if apperror.IsUnauthorized(err) {
			h.deps.ForceLogout(c)
			return
		}
		h.deps.Notif.Error(sid, "Error al cargar las planillas. Intente nuevamente.")
		planillas = []PlanillaMensualResponse{}
	}
	h.render(c, anio, mes, planillas, false)
}

func (h *Handler) render(c *gin.Context, anio, mes int, planillas []PlanillaMensualResponse, pendiente bool) {
	c.HTML(http.StatusOK, "planilla_list.tmpl", webui.Merge(h.deps.Base(c, "Planilla Mensual", "planilla-mensual"), gin.H{
		"Anio":      anio,
		"Mes":       mes,
		"Anios":     webui.Anios(),
		"Meses":     webui.Meses(),
		"Planillas": planillas,
		"Pendiente": pendiente,
	}))
}

// Calcular pide al backend el cálculo del período y lo retiene en la
// sesión; nada se persiste hasta Guardar.
func (h *Handler) Calcular(c *gin.Context) {
	sid := c.GetString("session_id")
	anio, mes := periodoDesdeForm(c)

	planillas, err := h.svc.Calcular(c.Request.Context(), anio, mes)
	if err != nil {
		h.fail(c, sid, err, "Error al calcular las planillas. Intente nuevamente.", rutaPeriodo(anio, mes))
		return
	}

	h.calculos.Put(sid, Calculo{Anio: anio, Mes: mes, Planillas: planillas})
	h.deps.Notif.Success(sid, "Planillas calculadas correctamente")
	c.Redirect(http.StatusSeeOther, rutaPeriodo(anio, mes))
}

// Guardar persiste el cálculo retenido. Sin cálculo previo no hay nada
// que mandar al backend.
func (h *Handler) Guardar(c *gin.Context) {
	sid := c.GetString("session_id")
	anio, mes := periodoDesdeForm(c)

	calc, ok := h.calculos.Get(sid)
	if !ok || len(calc.Planillas) == 0 {
		h.deps.Notif.Error(sid, "No hay planillas calculadas para guardar.")
		c.Redirect(http.StatusSeeOther, rutaPeriodo(anio, mes))
		return
	}

	if err := h.svc.Guardar(c.Request.Context(), calc.Planillas); err != nil {
		h.fail(c, sid, err, "Error al guardar las planillas. Intente nuevamente.", rutaPeriodo(calc.Anio, calc.Mes))
		return
	}

	h.calculos.Drop(sid)
	h.deps.Notif.Success(sid, "Planillas guardadas correctamente")
	c.Redirect(http.StatusSeeOther, rutaPeriodo(calc.Anio, calc.Mes))
}

// Boleta sirve la boleta de pago de un trabajador como documento
// imprimible.
func (h *Handler) Boleta(c *gin.Context) {
	sid := c.GetString("session_id")
	anio, mes := periodoDesdeQuery(c)

	documento := c.Query("documento")
	if documento == "" {
		h.deps.Notif.Error(sid, "Seleccione un trabajador")
		c.Redirect(http.StatusSeeOther, rutaPeriodo(anio, mes))
		return
	}

	boleta, err := h.svc.BuscarBoleta(c.Request.Context(), anio, mes, documento)
	if err != nil {
		h.fail(c, sid, err, "Error al obtener la boleta. Intente nuevamente.", rutaPeriodo(anio, mes))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(GenerarBoletaHTML(boleta, anio, mes)))
}
