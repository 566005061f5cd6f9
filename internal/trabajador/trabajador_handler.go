package trabajador

import (
	"net/http"
	"strconv"

	"github.com/Mauricio62/planilla-web/internal/catalogo"
	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc  ServiceAPI
	deps webui.Deps
}

func NewHandler(svc ServiceAPI, deps webui.Deps) *Handler {
	return &Handler{svc: svc, deps: deps}
}

func (h *Handler) fail(c *gin.Context, sid string, err error, returnTo string) {
	if apperror.IsUnauthorized(err) {
		h.deps.ForceLogout(c)
		return
	}
	h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	c.Redirect(http.StatusSeeOther, returnTo)
}

func (h *Handler) List(c *gin.Context) {
	st := catalogo.ListStateFromQuery(c.Request.URL.Query())
	sid := c.GetString("session_id")

	page, err := h.svc.Listar(c.Request.Context(), st)
	if err != nil {
		if apperror.IsUnauthorized(err) {
			h.deps.ForceLogout(c)
			return
		}
		page = catalogo.EmptyPage[TrabajadorResponse](st.Size)
		h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	}

	c.HTML(http.StatusOK, "trabajador_list.tmpl", webui.Merge(h.deps.Base(c, "Trabajadores", "trabajador"), gin.H{
		"State": gin.H{
			"Estado": string(st.Estado),
			"Texto":  st.Texto,
			"Page":   st.Page,
			"Size":   st.Size,
		},
		"SizeOptions": catalogo.PageSizeOptions,
		"Rows":        page.Content,
		"Page": gin.H{
			"TotalElements": page.TotalElements,
			"TotalPages":    page.TotalPages,
			"First":         page.First,
			"Last":          page.Last,
		},
	}))
}

// Form abre el formulario de trabajador. Los seis catálogos de
// referencia se cargan primero; si la carga falla no hay formulario a
// medias, se vuelve al listado con el error.
func (h *Handler) Form(segment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetString("session_id")

		mode, err := catalogo.ParseMode(segment, c.Param("id"))
		if err != nil {
			h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
			c.Redirect(http.StatusSeeOther, "/trabajador")
			return
		}

		refs, err := h.svc.CargarReferencias(c.Request.Context())
		if err != nil {
			h.fail(c, sid, err, "/trabajador")
			return
		}

		var item TrabajadorDTO
		if id, ok := mode.ID(); ok {
			item, err = h.svc.ObtenerPorID(c.Request.Context(), id)
			if err != nil {
				h.fail(c, sid, err, "/trabajador")
				return
			}
		} else {
			item.Activo = true
		}

		h.renderForm(c, mode, item, refs)
	}
}

func (h *Handler) renderForm(c *gin.Context, mode catalogo.Mode, item TrabajadorDTO, refs Referencias) {
	title := "Trabajador"
	switch {
	case mode.IsCreate():
		title = "Nuevo Trabajador"
	case mode.IsEdit():
		title = "Editar Trabajador"
	default:
		title = "Ver Trabajador"
	}

	entityID := int64(0)
	if id, ok := mode.ID(); ok {
		entityID = id
	}

	c.HTML(http.StatusOK, "trabajador_form.tmpl", webui.Merge(h.deps.Base(c, title, "trabajador"), gin.H{
		"Mode":     mode.String(),
		"EntityID": entityID,
		"ViewOnly": mode.IsView(),
		"Item":     item,
		"Refs":     refs,
	}))
}

func (h *Handler) Save(c *gin.Context) {
	sid := c.GetString("session_id")

	var form TrabajadorForm
	if err := c.ShouldBind(&form); err != nil {
		h.deps.Notif.Error(sid, apperror.ToHTTP(apperror.MapValidationError(err)).Message)
		if c.PostForm("mode") == "edit" {
			c.Redirect(http.StatusSeeOther, "/trabajador/edit/"+c.PostForm("id"))
		} else {
			c.Redirect(http.StatusSeeOther, "/trabajador/create")
		}
		return
	}

	if c.PostForm("mode") == "edit" {
		id, convErr := strconv.ParseInt(c.PostForm("id"), 10, 64)
		if convErr != nil || id <= 0 {
			h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
			c.Redirect(http.StatusSeeOther, "/trabajador")
			return
		}
		if _, err := h.svc.Actualizar(c.Request.Context(), id, form.toDTO()); err != nil {
			h.fail(c, sid, err, "/trabajador/edit/"+c.PostForm("id"))
			return
		}
		h.deps.Notif.Success(sid, "Trabajador actualizado exitosamente")
	} else {
		if _, err := h.svc.Crear(c.Request.Context(), form.toDTO()); err != nil {
			h.fail(c, sid, err, "/trabajador/create")
			return
		}
		h.deps.Notif.Success(sid, "Trabajador creado exitosamente")
	}

	c.Redirect(http.StatusSeeOther, "/trabajador")
}

func (h *Handler) Toggle(c *gin.Context) {
	sid := c.GetString("session_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
		c.Redirect(http.StatusSeeOther, "/trabajador")
		return
	}

	if err := h.svc.CambiarEstado(c.Request.Context(), id); err != nil {
		h.fail(c, sid, err, "/trabajador")
		return
	}
	h.deps.Notif.Success(sid, "Estado actualizado")
	c.Redirect(http.StatusSeeOther, "/trabajador")
}

func (h *Handler) Delete(c *gin.Context) {
	sid := c.GetString("session_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.deps.Notif.Error(sid, apperror.ErrInvalidInput.Message)
		c.Redirect(http.StatusSeeOther, "/trabajador")
		return
	}

	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.fail(c, sid, err, "/trabajador")
		return
	}
	h.deps.Notif.Success(sid, "Trabajador eliminado exitosamente")
	c.Redirect(http.StatusSeeOther, "/trabajador")
}
