package catalogo

import (
	"net/http"
	"strconv"

	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

// WebConfig parametriza la pantalla de un catálogo: rutas, títulos,
// columnas del listado y el mapeo DTO <-> formulario. Todo lo demás
// (filtros, paginación, modos, acciones de fila) es idéntico entre
// catálogos y vive en WebHandler.
type WebConfig[T any] struct {
	Prefix        string // ej. "/cargo"
	Active        string // clave del menú
	TitlePlural   string
	TitleSingular string

	Columns   []webui.Column
	Row       func(T) webui.Row
	Fields    func(item T, mode Mode) []webui.Field
	ParseForm func(c *gin.Context) (T, error)
}

type WebHandler[T any] struct {
	cfg  WebConfig[T]
	svc  *Service[T]
	deps webui.Deps
}

func NewWebHandler[T any](cfg WebConfig[T], svc *Service[T], deps webui.Deps) *WebHandler[T] {
	return &WebHandler[T]{cfg: cfg, svc: svc, deps: deps}
}

// fail traduce un error del backend a navegación: un 401 cierra la
// sesión; cualquier otro error se muestra como toast y vuelve a returnTo.
func (h *WebHandler[T]) fail(c *gin.Context, sid string, err error, returnTo string) {
	if apperror.IsUnauthorized(err) {
		h.deps.ForceLogout(c)
		return
	}
	h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	c.Redirect(http.StatusSeeOther, returnTo)
}

// listStateView baja ListState a strings planos para la plantilla.
type listStateView struct {
	Estado string
	Texto  string
	Page   int
	Size   int
}

func (h *WebHandler[T]) List(c *gin.Context) {
	st := ListStateFromQuery(c.Request.URL.Query())
	sid := c.GetString("session_id")

	page, err := h.svc.Listar(c.Request.Context(), st)
	if err != nil {
		if apperror.IsUnauthorized(err) {
			h.deps.ForceLogout(c)
			return
		}
		// La tabla degrada a página vacía; el error se ve como toast.
		page = EmptyPage[T](st.Size)
		h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	}

	rows := make([]webui.Row, 0, len(page.Content))
	for _, item := range page.Content {
		rows = append(rows, h.cfg.Row(item))
	}

	c.HTML(http.StatusOK, "catalogo_list.tmpl", webui.Merge(h.deps.Base(c, h.cfg.TitlePlural, h.cfg.Active), gin.H{
		"Prefix":      h.cfg.Prefix,
		"State":       listStateView{Estado: string(st.Estado), Texto: st.Texto, Page: st.Page, Size: st.Size},
		"SizeOptions": PageSizeOptions,
		"Columns":     h.cfg.Columns,
		"Rows":        rows,
		"Page":        pageView(page),
		"CanDelete":   h.svc.SoportaEliminar(),
	}))
}

type pageMeta struct {
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

func pageView[T any](p Page[T]) pageMeta {
	return pageMeta{
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
	}
}

// Form atiende create, edit/:id y view/:id. El modo se resuelve aquí,
// una vez, y de ahí en adelante viaja como valor.
func (h *WebHandler[T]) Form(segment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")

		mode, err := ParseMode(segment, c.Param("id"))
		if err != nil {
			h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
			c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
			return
		}

		var item T
		if id, ok := mode.ID(); ok {
			item, err = h.svc.ObtenerPorID(c.Request.Context(), id)
			if err != nil {
				h.fail(c, sid, err, h.cfg.Prefix)
				return
			}
		}

		h.renderForm(c, mode, item)
	}
}

func (h *WebHandler[T]) renderForm(c *gin.Context, mode Mode, item T) {
	title := h.cfg.TitleSingular
	switch {
	case mode.IsCreate():
		title = "Nuevo " + title
	case mode.IsEdit():
		title = "Editar " + title
	default:
		title = "Ver " + title
	}

	entityID := int64(0)
	if id, ok := mode.ID(); ok {
		entityID = id
	}

	c.HTML(http.StatusOK, "catalogo_form.tmpl", webui.Merge(h.deps.Base(c, title, h.cfg.Active), gin.H{
		"Prefix":   h.cfg.Prefix,
		"Mode":     mode.String(),
		"EntityID": entityID,
		"ViewOnly": mode.IsView(),
		"Fields":   h.cfg.Fields(item, mode),
	}))
}

// Save crea o actualiza según el modo que viajó en el formulario. La
// validación corta antes de emitir cualquier petición al backend.
func (h *WebHandler[T]) Save(c *gin.Context) {
	sid := c.GetString("session_id")

	item, err := h.cfg.ParseForm(c)
	if err != nil {
		h.deps.Notif.Error(sid, apperror.ToHTTP(apperror.MapValidationError(err)).Message)
		c.Redirect(http.StatusSeeOther, h.cfg.Prefix+"/"+formReturnPath(c))
		return
	}

	if c.PostForm("mode") == "edit" {
		id, convErr := strconv.ParseInt(c.PostForm("id"), 10, 64)
		if convErr != nil || id <= 0 {
			h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
			c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
			return
		}
		if _, err := h.svc.Actualizar(c.Request.Context(), id, item); err != nil {
			h.fail(c, sid, err, h.cfg.Prefix+"/edit/"+c.PostForm("id"))
			return
		}
		h.deps.Notif.Success(sid, h.cfg.TitleSingular+" actualizado exitosamente")
	} else {
		if _, err := h.svc.Crear(c.Request.Context(), item); err != nil {
			h.fail(c, sid, err, h.cfg.Prefix+"/create")
			return
		}
		h.deps.Notif.Success(sid, h.cfg.TitleSingular+" creado exitosamente")
	}

	c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
}

func formReturnPath(c *gin.Context) string {
	if c.PostForm("mode") == "edit" {
		return "edit/" + c.PostForm("id")
	}
	return "create"
}

func (h *WebHandler[T]) Toggle(c *gin.Context) {
	sid := c.GetString("session_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
		c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
		return
	}

	if err := h.svc.CambiarEstado(c.Request.Context(), id); err != nil {
		h.fail(c, sid, err, h.cfg.Prefix)
		return
	}
	h.deps.Notif.Success(sid, "Estado actualizado")
	c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
}

func (h *WebHandler[T]) Delete(c *gin.Context) {
	sid := c.GetString("session_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
		c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
		return
	}

	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.fail(c, sid, err, h.cfg.Prefix)
		return
	}
	h.deps.Notif.Success(sid, h.cfg.TitleSingular+" eliminado exitosamente")
	c.Redirect(http.StatusSeeOther, h.cfg.Prefix)
}

// RegisterWebRoutes cuelga las rutas estándar de un catálogo bajo su
// prefijo. El grupo ya llega con los guards aplicados.
func RegisterWebRoutes[T any](r *gin.RouterGroup, h *WebHandler[T]) {
	grp := r.Group(h.cfg.Prefix)
	{
		grp.GET("", h.List)
		grp.GET("/create", h.Form("create"))
		grp.GET("/edit/:id", h.Form("edit"))
		grp.GET("/view/:id", h.Form("view"))
		grp.POST("/save", h.Save)
		grp.POST("/toggle/:id", h.Toggle)
		grp.POST("/delete/:id", h.Delete)
	}
}
