package webui

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates parsea el set completo de plantillas con los helpers de
// formato registrados. Se monta una sola vez en el engine de gin.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"moneda":    Moneda,
		"monedaPtr": MonedaPtr,
		"fecha":     FechaCorta,
		"fechaHora": FechaHora,
		"truncate":  Truncate,
		"nombreMes": NombreMes,
		"sumar":     func(a, b int) int { return a + b },
		"restar":    func(a, b int) int { return a - b },
	}

	return template.Must(
		template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"),
	)
}

// Column y Row alimentan la tabla genérica de catálogos.
type Column struct {
	Header string
}

type Row struct {
	ID     int64
	Cells  []string
	Activo bool
}

// Field describe un control del formulario genérico de catálogos.
type Field struct {
	Name  string
	Label string
	Type  string // text | number | checkbox
	Value string
	Min   string
	Max   string
	Step  string
}
