package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP normaliza cualquier error a algo presentable: los *AppError
// conservan su código, el resto cae en INTERNAL_ERROR.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}

// FromBackendStatus traduce el status de una respuesta del backend de
// planillas al error que muestra la UI. El 401 es especial: quien lo
// reciba debe forzar el cierre de sesión.
func FromBackendStatus(status int, body string) *AppError {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrInternal
	default:
		msg := body
		if msg == "" {
			msg = fmt.Sprintf("Error %d del servidor.", status)
		}
		return New(CodeInvalidInput, msg, status)
	}
}

// IsUnauthorized reporta si el error amerita limpiar la sesión y
// redirigir al login.
func IsUnauthorized(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeUnauthorized
}
