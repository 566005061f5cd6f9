package chat

import (
	"sync"
	"time"
)

const (
	mensajeBienvenida    = "¡Hola! Soy tu asistente virtual. Puedo ayudarte con consultas sobre planillas, beneficios y asistencias. ¿En qué puedo ayudarte?"
	mensajeNoConfigurado = "⚠️ El asistente virtual no está configurado correctamente. Por favor verifica las credenciales en el backend."
	mensajeNoDisponible  = "El asistente virtual no está disponible."
	mensajeErrorProceso  = "Error al procesar el mensaje"
	mensajeErrorRed      = "Error al comunicarse con el asistente."
)

// Widget es el estado de la conversación de una sesión web. Si el
// arranque contra el backend falla, queda degradado de forma permanente
// hasta que la sesión web se vaya. Varias peticiones de la misma sesión
// pueden tocarlo a la vez (envíos rápidos, mensaje + beacon de cierre),
// así que la conversación se muta solo bajo su mutex.
type Widget struct {
	SessionID string // inmutable tras el arranque

	mu         sync.Mutex
	configured bool
	messages   []Mensaje
}

func newWidget(sessionID string, configured bool) *Widget {
	w := &Widget{SessionID: sessionID, configured: configured}
	w.Reset()
	return w
}

// Reset vacía la conversación y vuelve a sembrar el saludo según el
// estado de configuración.
func (w *Widget) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = w.messages[:0]
	if w.configured {
		w.messages = append(w.messages, mensajeBot(mensajeBienvenida))
	} else {
		w.messages = append(w.messages, mensajeBot(mensajeNoConfigurado))
	}
}

func (w *Widget) AppendUser(texto string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, Mensaje{Texto: texto, DelUsuario: true, Hora: time.Now()})
}

func (w *Widget) AppendBot(texto string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, mensajeBot(texto))
}

// Degradar apaga el widget y deja el motivo como última respuesta, en
// un solo paso para que ningún turno concurrente vea el estado a
// medias.
func (w *Widget) Degradar(texto string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.configured = false
	w.messages = append(w.messages, mensajeBot(texto))
}

func (w *Widget) Configurado() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.configured
}

// Snapshot devuelve una copia de la conversación y el estado de
// configuración, para rendir sin sostener el lock.
func (w *Widget) Snapshot() ([]Mensaje, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	msgs := make([]Mensaje, len(w.messages))
	copy(msgs, w.messages)
	return msgs, w.configured
}

func mensajeBot(texto string) Mensaje {
	return Mensaje{Texto: texto, DelUsuario: false, Hora: time.Now()}
}

type Widgets struct {
	mu        sync.Mutex
	porSesion map[string]*Widget
}

func NewWidgets() *Widgets {
	return &Widgets{porSesion: make(map[string]*Widget)}
}

func (ws *Widgets) Get(sessionID string) (*Widget, bool) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	w, ok := ws.porSesion[sessionID]
	return w, ok
}

func (ws *Widgets) Put(sessionID string, w *Widget) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.porSesion[sessionID] = w
}

func (ws *Widgets) Drop(sessionID string) (*Widget, bool) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	w, ok := ws.porSesion[sessionID]
	delete(ws.porSesion, sessionID)
	return w, ok
}
