package chat

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
	"github.com/Mauricio62/planilla-web/internal/shared/response"
	"github.com/Mauricio62/planilla-web/internal/webui"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc     *Service
	widgets *Widgets
	// Espera máxima del arranque de sesión; vencida, el widget queda
	// degradado para toda la sesión web.
	bootstrapTimeout time.Duration
	deps             webui.Deps
	logger           *zap.Logger
}

func NewHandler(svc *Service, widgets *Widgets, bootstrapTimeout time.Duration, deps webui.Deps, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, widgets: widgets, bootstrapTimeout: bootstrapTimeout, deps: deps, logger: logger}
}

// Page rinde el widget. La primera visita de la sesión arranca la
// sesión de chat contra el backend con espera acotada.
func (h *Handler) Page(c *gin.Context) {
	sid := c.GetString("session_id")

	w, ok := h.widgets.Get(sid)
	if !ok {
		var unauthorized bool
		w, unauthorized = h.bootstrap(c.Request.Context())
		if unauthorized {
			h.deps.ForceLogout(c)
			return
		}
		h.widgets.Put(sid, w)
	}

	msgs, configured := w.Snapshot()
	c.HTML(http.StatusOK, "chat.tmpl", webui.Merge(h.deps.Base(c, "Asistente Virtual", "chat"), gin.H{
		"Messages":   msgs,
		"Configured": configured,
	}))
}

func (h *Handler) bootstrap(ctx context.Context) (w *Widget, unauthorized bool) {
	ctx, cancel := context.WithTimeout(ctx, h.bootstrapTimeout)
	defer cancel()

	resp, err := h.svc.CreateSession(ctx)
	switch {
	case apperror.IsUnauthorized(err):
		return nil, true
	case err != nil:
		h.logger.Warn("⚠️ no se pudo crear la sesión de chat", zap.Error(err))
		return newWidget("", false), false
	case !resp.Success || resp.SessionID == "":
		h.logger.Warn("⚠️ el backend rechazó la sesión de chat", zap.String("message", resp.Message))
		return newWidget("", false), false
	}
	return newWidget(resp.SessionID, true), false
}

type mensajeForm struct {
	Message string `json:"message" binding:"required"`
}

// Message procesa un turno de conversación. El mensaje del usuario se
// agrega siempre; la respuesta depende del estado del widget.
func (h *Handler) Message(c *gin.Context) {
	sid := c.GetString("session_id")

	var form mensajeForm
	if err := c.ShouldBindJSON(&form); err != nil || strings.TrimSpace(form.Message) == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Escriba un mensaje", nil)
		return
	}
	texto := strings.TrimSpace(form.Message)

	w, ok := h.widgets.Get(sid)
	if !ok {
		w = newWidget("", false)
		h.widgets.Put(sid, w)
	}

	w.AppendUser(texto)

	if !w.Configurado() || w.SessionID == "" {
		w.AppendBot(mensajeNoDisponible)
		h.respond(c, w)
		return
	}

	resp, err := h.svc.SendMessage(c.Request.Context(), texto, w.SessionID)
	switch {
	case apperror.IsUnauthorized(err):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Sesión expirada", nil)
		return
	case err != nil:
		w.AppendBot(mensajeErrorRed)
	case !resp.Success:
		// El backend perdió la configuración del asistente: el widget
		// queda degradado como en el arranque fallido.
		if resp.ErrorMessage != "" {
			w.Degradar(resp.ErrorMessage)
		} else {
			w.Degradar(mensajeErrorProceso)
		}
	default:
		w.AppendBot(resp.Response)
	}

	h.respond(c, w)
}

// Clear reinicia la conversación conservando el estado de
// configuración.
func (h *Handler) Clear(c *gin.Context) {
	sid := c.GetString("session_id")

	w, ok := h.widgets.Get(sid)
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "El chat no está iniciado", nil)
		return
	}

	w.Reset()
	h.respond(c, w)
}

// Teardown elimina la sesión de chat en el backend al mejor esfuerzo;
// un error aquí solo se registra.
func (h *Handler) Teardown(c *gin.Context) {
	sid := c.GetString("session_id")

	w, ok := h.widgets.Drop(sid)
	if ok && w.SessionID != "" {
		if err := h.svc.DeleteSession(c.Request.Context(), w.SessionID); err != nil {
			h.logger.Warn("⚠️ no se pudo eliminar la sesión de chat", zap.Error(err))
		}
	}

	response.Success(c, http.StatusOK, nil, nil)
}

func (h *Handler) respond(c *gin.Context, w *Widget) {
	msgs, configured := w.Snapshot()
	response.Success(c, http.StatusOK, gin.H{
		"messages":   msgs,
		"configured": configured,
	}, nil)
}
