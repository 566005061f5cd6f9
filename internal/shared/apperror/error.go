package apperror

import "fmt"

// AppError es el error que viaja entre servicios y handlers: un código
// estable para decidir qué hacer y un mensaje en castellano listo para
// mostrar en la notificación.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // causa original, si la hay
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap habilita errors.Is / errors.As sobre la causa.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap envuelve la causa conservando código y mensaje de cara al
// usuario. Con err nil no hay nada que envolver.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
