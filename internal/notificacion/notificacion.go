// Package notificacion mantiene los toasts por sesión. Cada aviso se
// autodestruye con un timer al vencer su duración, igual que hacía el
// servicio de notificaciones del front.
package notificacion

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Duración en pantalla por severidad.
var durations = map[Level]time.Duration{
	LevelSuccess: 5 * time.Second,
	LevelError:   7 * time.Second,
	LevelWarning: 6 * time.Second,
	LevelInfo:    5 * time.Second,
}

type Notification struct {
	ID       string
	Message  string
	Level    Level
	Duration time.Duration
}

// Center es el contenedor de notificaciones de toda la aplicación. Se
// inyecta desde el registry; no hay estado a nivel de paquete.
type Center struct {
	mu      sync.Mutex
	pending map[string][]Notification // session id -> avisos vivos
}

func NewCenter() *Center {
	return &Center{pending: make(map[string][]Notification)}
}

func (c *Center) Push(sessionID, message string, level Level) {
	duration, ok := durations[level]
	if !ok {
		level = LevelInfo
		duration = durations[LevelInfo]
	}

	n := Notification{
		ID:       uuid.New().String(),
		Message:  message,
		Level:    level,
		Duration: duration,
	}

	c.mu.Lock()
	c.pending[sessionID] = append(c.pending[sessionID], n)
	c.mu.Unlock()

	time.AfterFunc(duration, func() {
		c.remove(sessionID, n.ID)
	})
}

func (c *Center) Success(sessionID, message string) { c.Push(sessionID, message, LevelSuccess) }
func (c *Center) Error(sessionID, message string)   { c.Push(sessionID, message, LevelError) }
func (c *Center) Warning(sessionID, message string) { c.Push(sessionID, message, LevelWarning) }
func (c *Center) Info(sessionID, message string)    { c.Push(sessionID, message, LevelInfo) }

// Consume devuelve los avisos pendientes de la sesión y los limpia: un
// toast se muestra una sola vez.
func (c *Center) Consume(sessionID string) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.pending[sessionID]
	delete(c.pending, sessionID)
	return out
}

func (c *Center) remove(sessionID, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	alive := c.pending[sessionID][:0]
	for _, n := range c.pending[sessionID] {
		if n.ID != id {
			alive = append(alive, n)
		}
	}

	if len(alive) == 0 {
		delete(c.pending, sessionID)
		return
	}
	c.pending[sessionID] = alive
}
