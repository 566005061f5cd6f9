package chat

import "time"

type ChatMessageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

type ChatMessageResponse struct {
	Response     string `json:"response"`
	SessionID    string `json:"sessionId"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type ChatSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Mensaje es una línea de la conversación tal como se rinde en el
// widget. Vive solo en memoria mientras dure la sesión web.
type Mensaje struct {
	Texto      string    `json:"texto"`
	DelUsuario bool      `json:"delUsuario"`
	Hora       time.Time `json:"hora"`
}
