package catalogo

import (
	"fmt"
	"strconv"
)

type modeKind int

const (
	modeCreate modeKind = iota
	modeEdit
	modeView
)

// Mode es el modo de un formulario, resuelto una sola vez al entrar a
// la ruta (create | edit/:id | view/:id) y pasado hacia abajo; nadie
// vuelve a inspeccionar la URL.
type Mode struct {
	kind modeKind
	id   int64
}

func ModeCreate() Mode       { return Mode{kind: modeCreate} }
func ModeEdit(id int64) Mode { return Mode{kind: modeEdit, id: id} }
func ModeView(id int64) Mode { return Mode{kind: modeView, id: id} }

func (m Mode) IsCreate() bool { return m.kind == modeCreate }
func (m Mode) IsEdit() bool   { return m.kind == modeEdit }
func (m Mode) IsView() bool   { return m.kind == modeView }

// ID devuelve el id de la entidad en modos edit/view.
func (m Mode) ID() (int64, bool) {
	if m.kind == modeCreate {
		return 0, false
	}
	return m.id, true
}

func (m Mode) String() string {
	switch m.kind {
	case modeEdit:
		return "edit"
	case modeView:
		return "view"
	default:
		return "create"
	}
}

// ParseMode interpreta el segmento de ruta y el id. Los modos edit y
// view exigen un id numérico válido.
func ParseMode(segment, rawID string) (Mode, error) {
	switch segment {
	case "create":
		return ModeCreate(), nil
	case "edit", "view":
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			return Mode{}, fmt.Errorf("catalogo: id inválido %q", rawID)
		}
		if segment == "edit" {
			return ModeEdit(id), nil
		}
		return ModeView(id), nil
	default:
		return Mode{}, fmt.Errorf("catalogo: modo desconocido %q", segment)
	}
}
