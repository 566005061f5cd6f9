package asistencia

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      *Service
	editores *Editores
	deps     webui.Deps
}

func NewHandler(svc *Service, editores *Editores, deps webui.Deps) *Handler {
	return &Handler{svc: svc, editores: editores, deps: deps}
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

func rutaPeriodo(anio, mes int) string {
	return fmt.Sprintf("/asistencia?anio=%d&mes=%d", anio, mes)
}

// List muestra el tablero del período. Con buscar=1 (o un período
// distinto al del editor vigente) emite una sola petición al backend;
// de lo contrario rinde el tablero en memoria, con sus ediciones.
func (h *Handler) List(c *gin.Context) {
	sid := c.GetString("session_id")
	anio, mes := periodoDesdeQuery(c)

	ed, ok := h.editores.Get(sid)
	if !ok || c.Query("buscar") == "1" || ed.Anio != anio || ed.Mes != mes {
		rows, err := h.svc.Buscar(c.Request.Context(), anio, mes)
		if err != nil {
			if apperror.IsUnauthorized(err) {
				h.deps.ForceLogout(c)
				return
			}
			h.deps.Notif.Error(sid, "Error al buscar asistencias")
			rows = []AsistenciaRow{}
		} else if c.Query("buscar") == "1" {
			// El aviso corresponde a una búsqueda explícita, no a la
			// carga inicial de la pantalla.
			h.deps.Notif.Success(sid, "Búsqueda completada")
		}
		ed = NewEditor(anio, mes, rows)
		h.editores.Put(sid, ed)
	}

	h.render(c, ed)
}

type filaView struct {
	Index   int
	Row     AsistenciaRow
	Editing bool
}

func (h *Handler) render(c *gin.Context, ed *Editor) {
	rows, editing := ed.Filas()
	filas := make([]filaView, 0, len(rows))
	for i, r := range rows {
		filas = append(filas, filaView{Index: i, Row: r, Editing: editing[i]})
	}

	c.HTML(http.StatusOK, "asistencia_list.tmpl", webui.Merge(h.deps.Base(c, "Asistencias", "asistencia"), gin.H{
		"Anio":       ed.Anio,
		"Mes":        ed.Mes,
		"Anios":      webui.Anios(),
		"Meses":      webui.Meses(),
		"Filas":      filas,
		"HasUnsaved": ed.HasUnsaved(),
	}))
}

// editorDe recupera el editor de la sesión; sin tablero cargado las
// acciones de fila no tienen sobre qué operar.
func (h *Handler) editorDe(c *gin.Context, sid string) (*Editor, bool) {
	ed, ok := h.editores.Get(sid)
	if !ok {
		h.deps.Notif.Error(sid, "Primero realice una búsqueda")
		c.Redirect(http.StatusSeeOther, "/asistencia")
		return nil, false
	}
	return ed, true
}

func indice(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("idx"))
}

func (h *Handler) EditRow(c *gin.Context) {
	sid := c.GetString("session_id")
	ed, ok := h.editorDe(c, sid)
	if !ok {
		return
	}

	idx, err := indice(c)
	if err == nil {
		err = ed.StartEdit(idx)
	}
	if err != nil {
		h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	}
	c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
}

func (h *Handler) CancelRow(c *gin.Context) {
	sid := c.GetString("session_id")
	ed, ok := h.editorDe(c, sid)
	if !ok {
		return
	}

	idx, err := indice(c)
	if err == nil {
		err = ed.Cancel(idx)
	}
	if err != nil {
		h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	}
	c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
}

func valoresDesdeForm(c *gin.Context) (Valores, error) {
	var v Valores
	campos := []struct {
		nombre string
		dest   *float64
	}{
		{"diasLaborales", &v.DiasLaborales},
		{"diasDescanso", &v.DiasDescanso},
		{"diasInasistencia", &v.DiasInasistencia},
		{"diasFeriados", &v.DiasFeriados},
		{"horasExtra25", &v.HorasExtra25},
		{"horasExtra35", &v.HorasExtra35},
	}
	for _, campo := range campos {
		val, err := strconv.ParseFloat(c.PostForm(campo.nombre), 64)
		if err != nil {
			return Valores{}, err
		}
		*campo.dest = val
	}
	return v, nil
}

// SaveRow aplica la edición localmente; el backend recién se entera en
// el guardado masivo.
func (h *Handler) SaveRow(c *gin.Context) {
	sid := c.GetString("session_id")
	ed, ok := h.editorDe(c, sid)
	if !ok {
		return
	}

	idx, err := indice(c)
	if err != nil {
		h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
		c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
		return
	}

	v, err := valoresDesdeForm(c)
	if err == nil {
		err = ed.SaveRow(idx, v)
	}
	if err != nil {
		h.deps.Notif.Error(sid, "Por favor, ingresa valores válidos")
	} else {
		h.deps.Notif.Success(sid, "Cambios guardados localmente")
	}
	c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
}

// Guardar manda el tablero completo al backend y vuelve a consultar el
// período para quedar consistente con lo persistido.
func (h *Handler) Guardar(c *gin.Context) {
	sid := c.GetString("session_id")
	ed, ok := h.editorDe(c, sid)
	if !ok {
		return
	}

	if err := h.svc.Guardar(c.Request.Context(), ed.PayloadGuardar()); err != nil {
		h.fail(c, sid, err, "Error al guardar los cambios", rutaPeriodo(ed.Anio, ed.Mes))
		return
	}
	h.deps.Notif.Success(sid, "Cambios guardados exitosamente")

	rows, err := h.svc.Buscar(c.Request.Context(), ed.Anio, ed.Mes)
	if err == nil {
		h.editores.Put(sid, NewEditor(ed.Anio, ed.Mes, rows))
	}
	c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
}

func (h *Handler) DescargarExcel(c *gin.Context) {
	sid := c.GetString("session_id")
	anio, mes := periodoDesdeQuery(c)
	if ed, ok := h.editores.Get(sid); ok {
		anio, mes = ed.Anio, ed.Mes
	}

	blob, err := h.svc.DescargarExcel(c.Request.Context(), anio, mes)
	if err != nil {
		h.fail(c, sid, err, "Error al descargar el archivo", rutaPeriodo(anio, mes))
		return
	}

	nombre := fmt.Sprintf("asistencias_%d_%d.xlsx", anio, mes)
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

func (h *Handler) CargarExcel(c *gin.Context) {
	sid := c.GetString("session_id")
	ed, ok := h.editorDe(c, sid)
	if !ok {
		return
	}

	fh, err := c.FormFile("archivo")
	if err != nil {
		h.deps.Notif.Error(sid, "Seleccione un archivo")
		c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.deps.Notif.Error(sid, "Error al cargar el archivo")
		c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
		return
	}
	defer f.Close()

	rows, err := h.svc.CargarExcel(c.Request.Context(), ed.Anio, ed.Mes, fh.Filename, f)
	if err != nil {
		h.fail(c, sid, err, "Error al cargar el archivo", rutaPeriodo(ed.Anio, ed.Mes))
		return
	}

	h.editores.Put(sid, NewEditor(ed.Anio, ed.Mes, rows))
	h.deps.Notif.Success(sid, "Archivo cargado exitosamente")
	c.Redirect(http.StatusSeeOther, rutaPeriodo(ed.Anio, ed.Mes))
}
