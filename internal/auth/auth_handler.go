package auth

import (
	"net/http"

	"github.com/Mauricio62/planilla-web/internal/middleware"
	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc  *Service
	deps webui.Deps
}

func NewHandler(svc *Service, deps webui.Deps) *Handler {
	return &Handler{svc: svc, deps: deps}
}

func (h *Handler) LoginPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusSeeOther, "/main-menu")
		return
	}
	h.renderLogin(c, "", "")
}

func (h *Handler) renderLogin(c *gin.Context, username, errMsg string) {
	c.HTML(http.StatusOK, "login.tmpl", webui.Merge(h.deps.Base(c, "Iniciar sesión", "login"), gin.H{
		"Username": username,
		"Error":    errMsg,
	}))
}

func (h *Handler) Login(c *gin.Context) {
	sid := c.GetString("session_id")

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, c.PostForm("username"), "Ingrese usuario y contraseña válidos")
		return
	}

	if _, err := h.svc.Login(c.Request.Context(), sid, req); err != nil {
		if apperror.IsUnauthorized(err) {
			h.renderLogin(c, req.Username, "Usuario o contraseña incorrectos")
			return
		}
		h.renderLogin(c, req.Username, apperror.ToHTTP(err).Message)
		return
	}

	h.deps.Notif.Success(sid, "Login exitoso")
	c.Redirect(http.StatusSeeOther, "/main-menu")
}

// RegisterPage carga los roles disponibles para el combo; si el backend
// no responde, el formulario sale sin roles y con el aviso.
func (h *Handler) RegisterPage(c *gin.Context) {
	roles, err := h.svc.Roles(c.Request.Context())
	if err != nil {
		h.deps.Notif.Error(c.GetString("session_id"), "Error al cargar los roles disponibles")
		roles = []RoleDTO{}
	}
	h.renderRegister(c, RegisterRequest{}, roles, "")
}

func (h *Handler) renderRegister(c *gin.Context, form RegisterRequest, roles []RoleDTO, errMsg string) {
	c.HTML(http.StatusOK, "register.tmpl", webui.Merge(h.deps.Base(c, "Registro", "register"), gin.H{
		"Username": form.Username,
		"Email":    form.Email,
		"Roles":    roles,
		"Error":    errMsg,
	}))
}

func (h *Handler) Register(c *gin.Context) {
	sid := c.GetString("session_id")

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		roles, _ := h.svc.Roles(c.Request.Context())
		h.renderRegister(c, req, roles, "Datos inválidos. Por favor, verifique la información ingresada.")
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		roles, _ := h.svc.Roles(c.Request.Context())
		h.renderRegister(c, req, roles, apperror.ToHTTP(err).Message)
		return
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Error al registrar usuario"
		}
		roles, _ := h.svc.Roles(c.Request.Context())
		h.renderRegister(c, req, roles, msg)
		return
	}

	msg := resp.Message
	if msg == "" {
		msg = "Usuario registrado exitosamente"
	}
	h.deps.Notif.Success(sid, msg)
	c.Redirect(http.StatusSeeOther, "/auth/login")
}

func (h *Handler) Logout(c *gin.Context) {
	sid := c.GetString("session_id")

	username := ""
	if user, ok := middleware.CurrentUser(c); ok {
		username = user.Username
	}

	if err := h.svc.Logout(c.Request.Context(), sid, username); err != nil {
		h.deps.Notif.Error(sid, apperror.ToHTTP(err).Message)
	}
	c.Redirect(http.StatusSeeOther, "/auth/login")
}
