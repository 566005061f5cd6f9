// Package webui reúne las plantillas HTML y los formateadores de
// presentación compartidos por todas las pantallas.
package webui

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-PE"))

// Moneda formatea un importe en soles: "S/ 1,250.00".
func Moneda(v float64) string {
	return printer.Sprintf("S/ %.2f", v)
}

// MonedaPtr tolera campos monetarios ausentes: nil se muestra como
// "S/ 0.00" en vez de romper la pantalla.
func MonedaPtr(v *float64) string {
	if v == nil {
		return Moneda(0)
	}
	return Moneda(*v)
}

// FechaCorta renderiza dd/MM/yyyy; cero o nil salen como "N/A".
func FechaCorta(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006")
}

func FechaHora(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006 15:04")
}

func Truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

var meses = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes devuelve el nombre del mes 1..12, o cadena vacía fuera de
// rango.
func NombreMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return meses[mes-1]
}

// Meses expone la lista para los selects de período.
func Meses() []struct {
	Valor  int
	Nombre string
} {
	out := make([]struct {
		Valor  int
		Nombre string
	}, len(meses))
	for i, nombre := range meses {
		out[i].Valor = i + 1
		out[i].Nombre = nombre
	}
	return out
}

// BoolString serializa un bool como lo espera el binding de gin en los
// checkboxes (value="true").
func BoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Anios devuelve la ventana de años elegibles alrededor del actual.
func Anios() []int {
	actual := time.Now().Year()
	out := make([]int, 0, 10)
	for y := actual - 5; y < actual+5; y++ {
		out = append(out, y)
	}
	return out
}
