package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// apellido_paterno -> Apellido Paterno
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Spanish)
	return caser.String(s)
}

// MapValidationError convierte el primer error del validator en un
// *AppError con mensaje legible. e.Field() ya trae el nombre del tag
// json gracias a RegisterTagNameFunc en Init().
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "min":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s debe tener al menos %s caracteres", field, e.Param()),
				http.StatusBadRequest,
			)
		case "gte", "lte":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s está fuera de rango", field),
				http.StatusBadRequest,
			)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Los datos ingresados no son válidos.",
		http.StatusBadRequest,
	)
}

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s es obligatorio", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s no es válido", field),
		http.StatusBadRequest,
	)
}
