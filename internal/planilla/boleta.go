package planilla

import (
	"fmt"
	"html"
	"strings"

	"github.com/Mauricio62/planilla-web/internal/webui"
)

// GenerarBoletaHTML arma la boleta de pago imprimible como documento
// independiente. Replica el formato oficial: tres bloques (ingresos,
// descuentos de ley, aportes del empleador) y el neto en letras.
func GenerarBoletaHTML(b PlanillaPorDocumentoDTO, anio, mes int) string {
	t := b.Trabajador

	documento, cargo, fecIngreso := "", "N/A", "N/A"
	if t != nil {
		documento = t.Documento
		if t.Cargo != nil && t.Cargo.Nombre != "" {
			cargo = t.Cargo.Nombre
		}
		if t.FecIngreso != "" {
			fecIngreso = t.FecIngreso
		}
	}

	totalEmpleador := valor(b.EsSalud) + valor(b.SeguroVidaLey)

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Boleta de Pago</title>
<style>
  body { font-family: Arial, sans-serif; margin: 0; padding: 0; font-size: 14px; }
  .boleta { width: 800px; margin: 0 auto; padding: 20px; border: 1px solid #ccc; }
  header { display: flex; justify-content: space-between; border-bottom: 2px solid #000; padding-bottom: 10px; margin-bottom: 15px; }
  .detalles { display: flex; justify-content: space-between; gap: 10px; }
  .detalles div { flex: 1; }
  .detalles h3 { background-color: #f0f0f0; padding: 5px; margin: 0 0 10px 0; text-align: center; }
  .detalles table { width: 100%; border-collapse: collapse; }
  .detalles table td { padding: 4px; border-bottom: 1px solid #ccc; }
  .detalles table tr:last-child td { border-bottom: 2px solid #000; font-weight: bold; }
  td.monto { text-align: right; }
  footer { text-align: center; margin-top: 30px; padding-top: 10px; border-top: 1px solid #ccc; }
  @media print { .boleta { border: none; width: 100%; } }
</style>
</head>
<body>
<div class="boleta">
`)

	fmt.Fprintf(&sb, `<header>
  <div class="empresa-info">
    <h1>BOLETA DE PAGO <span>%s/%d</span></h1>
    <p><strong>Razón Social:</strong> Nombre Empresa Contratada</p>
    <p><strong>Dirección:</strong> Direccion Empresa Contratada</p>
    <p><strong>NIT:</strong> 25263987456 &nbsp; <strong>Reg. Patronal:</strong> 070710-00156</p>
  </div>
  <div class="empresa-logo"><p>D.S. N° 001-98-TR del 22/01/1998</p></div>
</header>
`, webui.NombreMes(mes), anio)

	fmt.Fprintf(&sb, `<section class="trabajador-info">
  <h2>Trabajador</h2>
  <p><strong>Trabajador:</strong> %s - %s</p>
  <p><strong>Fecha Ingreso:</strong> %s</p>
  <p><strong>Cargo:</strong> %s</p>
  <p><strong>Días Trab.:</strong> %g &nbsp; <strong>Horas:</strong> %g</p>
</section>
`, html.EscapeString(documento), html.EscapeString(t.NombreCompleto()),
		html.EscapeString(fecIngreso), html.EscapeString(cargo), b.NDiasTrab, b.NHorasNormal)

	sb.WriteString(`<section class="detalles">
<div class="ingresos"><h3>Ingresos</h3><table>
`)
	fila(&sb, "Rem. Básico", b.HaberBasico)
	fila(&sb, "Asig. Familiar", b.VAsigFamiliar)
	fila(&sb, "Horas Extras 25%", b.VHorasExtra1)
	fila(&sb, "Horas Extras 35%", b.VHorasExtra2)
	fila(&sb, "Dias Feriados", b.VFeriadoTrab)
	fila(&sb, "Vales", b.ValesEmpleado)
	fila(&sb, "Bonificación Cargo", b.BonificacionCargo)
	fila(&sb, "Total Ingresos", b.TotalIngreso)
	sb.WriteString(`</table></div>
<div class="descuentos"><h3>Descuentos de Ley</h3><table>
`)
	fila(&sb, "Aporte", b.Aporte)
	fila(&sb, "Comision", b.Comision)
	fila(&sb, "Prima", b.Prima)
	fila(&sb, "Total Descuentos", b.TotalDescuento)
	sb.WriteString(`</table></div>
<div class="aportes"><h3>Aportes del Empleador</h3><table>
`)
	fila(&sb, "ESSALUD", b.EsSalud)
	fila(&sb, "Seguro Vida Ley", b.SeguroVidaLey)
	fmt.Fprintf(&sb, "<tr><td>Total Empleador</td><td class=\"monto\">%s</td></tr>\n", webui.Moneda(totalEmpleador))
	sb.WriteString(`</table></div>
</section>
`)

	fmt.Fprintf(&sb, `<section class="resumen">
  <h3>Resumen</h3>
  <p><strong>Neto a Pagar:</strong> %s</p>
  <p><strong>Son:</strong> %s</p>
</section>
<footer>
  <p><strong>Emp. Nombre de Sistema</strong></p>
  <p>Recibí Conforme: <span>____________</span> DNI: <span>____________</span></p>
</footer>
</div>
</body>
</html>`, webui.MonedaPtr(b.TotalNetoBoleta), html.EscapeString(b.TotalNetoBoletaCad))

	return sb.String()
}

func fila(sb *strings.Builder, concepto string, monto *float64) {
	fmt.Fprintf(sb, "<tr><td>%s</td><td class=\"monto\">%s</td></tr>\n", concepto, webui.MonedaPtr(monto))
}

func valor(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
