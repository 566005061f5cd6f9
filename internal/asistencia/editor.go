package asistencia

import (
	"sync"

	"github.com/Mauricio62/planilla-web/internal/shared/apperror"
)

// Editor mantiene el tablero de un período entre peticiones. Las filas
// en edición guardan una copia inmutable de sus seis campos numéricos:
// cancelar restaura exactamente esos valores, sin importar cuántas
// veces se haya tocado la fila mientras tanto.
//
// Una misma sesión puede mandar dos peticiones a la vez (doble submit,
// guardar mientras se rinde el tablero), así que toda mutación pasa por
// los métodos, que serializan con el mutex. Anio y Mes son inmutables.
type Editor struct {
	Anio int
	Mes  int
	Rows []AsistenciaRow

	mu        sync.Mutex
	snapshots map[int]Valores
	dirty     bool
}

func NewEditor(anio, mes int, rows []AsistenciaRow) *Editor {
	return &Editor{
		Anio:      anio,
		Mes:       mes,
		Rows:      rows,
		snapshots: make(map[int]Valores),
	}
}

func (e *Editor) valida(idx int) error {
	if idx < 0 || idx >= len(e.Rows) {
		return apperror.ErrNotFound
	}
	return nil
}

func (e *Editor) Editing(idx int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.snapshots[idx]
	return ok
}

// Filas devuelve una copia del tablero junto con el modo edición de
// cada fila, para rendir sin sostener el lock.
func (e *Editor) Filas() ([]AsistenciaRow, []bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rows := make([]AsistenciaRow, len(e.Rows))
	copy(rows, e.Rows)
	editing := make([]bool, len(e.Rows))
	for i := range rows {
		_, editing[i] = e.snapshots[i]
	}
	return rows, editing
}

// StartEdit toma la copia de los campos editables. Si la fila ya estaba
// en edición la copia original se conserva: el snapshot se toma una
// sola vez.
func (e *Editor) StartEdit(idx int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.valida(idx); err != nil {
		return err
	}
	if _, ok := e.snapshots[idx]; ok {
		return nil
	}
	r := e.Rows[idx]
	e.snapshots[idx] = Valores{
		DiasLaborales:    r.DiasLaborales,
		DiasDescanso:     r.DiasDescanso,
		DiasInasistencia: r.DiasInasistencia,
		DiasFeriados:     r.DiasFeriados,
		HorasExtra25:     r.HorasExtra25,
		HorasExtra35:     r.HorasExtra35,
	}
	return nil
}

// SaveRow aplica los valores a la fila y descarta el snapshot. Valores
// negativos no se aplican.
func (e *Editor) SaveRow(idx int, v Valores) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.valida(idx); err != nil {
		return err
	}
	if !v.Validos() {
		return apperror.ErrInvalidInput
	}

	r := &e.Rows[idx]
	r.DiasLaborales = v.DiasLaborales
	r.DiasDescanso = v.DiasDescanso
	r.DiasInasistencia = v.DiasInasistencia
	r.DiasFeriados = v.DiasFeriados
	r.HorasExtra25 = v.HorasExtra25
	r.HorasExtra35 = v.HorasExtra35

	delete(e.snapshots, idx)
	e.dirty = true
	return nil
}

// Cancel restaura los seis campos desde el snapshot y saca la fila del
// modo edición. Cancelar una fila que no estaba en edición no hace nada.
func (e *Editor) Cancel(idx int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.valida(idx); err != nil {
		return err
	}
	v, ok := e.snapshots[idx]
	if !ok {
		return nil
	}

	r := &e.Rows[idx]
	r.DiasLaborales = v.DiasLaborales
	r.DiasDescanso = v.DiasDescanso
	r.DiasInasistencia = v.DiasInasistencia
	r.DiasFeriados = v.DiasFeriados
	r.HorasExtra25 = v.HorasExtra25
	r.HorasExtra35 = v.HorasExtra35

	delete(e.snapshots, idx)
	return nil
}

// HasUnsaved indica si hay ediciones aplicadas que aún no viajaron al
// backend.
func (e *Editor) HasUnsaved() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// PayloadGuardar arma el lote de guardado: todas las filas del tablero
// etiquetadas con el período del filtro actual.
func (e *Editor) PayloadGuardar() []AsistenciaGuardarDTO {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]AsistenciaGuardarDTO, 0, len(e.Rows))
	for _, r := range e.Rows {
		out = append(out, AsistenciaGuardarDTO{
			IDAsistencia:     r.IDAsistencia,
			IDTrabajador:     r.IDTrabajador,
			Anio:             e.Anio,
			Mes:              e.Mes,
			DiasLaborales:    r.DiasLaborales,
			DiasDescanso:     r.DiasDescanso,
			DiasInasistencia: r.DiasInasistencia,
			DiasFeriados:     r.DiasFeriados,
			HorasExtra25:     r.HorasExtra25,
			HorasExtra35:     r.HorasExtra35,
		})
	}
	return out
}

// Editores guarda el editor activo de cada sesión.
type Editores struct {
	mu        sync.Mutex
	porSesion map[string]*Editor
}

func NewEditores() *Editores {
	return &Editores{porSesion: make(map[string]*Editor)}
}

func (e *Editores) Get(sessionID string) (*Editor, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ed, ok := e.porSesion[sessionID]
	return ed, ok
}

func (e *Editores) Put(sessionID string, ed *Editor) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.porSesion[sessionID] = ed
}

func (e *Editores) Drop(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.porSesion, sessionID)
}
