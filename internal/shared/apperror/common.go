package apperror

import "net/http"

// Mensajes en castellano: es lo que ve el usuario final en las
// notificaciones, igual que en el resto de pantallas.
var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado.",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"No tiene permisos para realizar esta acción.",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Error interno del servidor.",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"No autorizado. Por favor, inicie sesión nuevamente.",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Los datos ingresados no son válidos.",
		http.StatusBadRequest,
	)

	ErrBackendUnavailable = New(
		CodeServiceUnavailable,
		"Error de conexión",
		http.StatusServiceUnavailable,
	)
)
