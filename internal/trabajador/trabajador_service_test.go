package trabajador

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pagina(idField string, id int64, nombre string) string {
	return fmt.Sprintf(`{
		"content": [{"%s": %d, "nombre": %q, "activo": true}],
		"totalElements": 1, "totalPages": 1, "size": 1000, "number": 0,
		"first": true, "last": true
	}`, idField, id, nombre)
}

func TestCargarReferencias_TraeLosSeisCatalogos(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// Los selects solo deben ver elementos activos
		assert.Equal(t, "ACTIVO", r.URL.Query().Get("estado"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tipos-documento/listar":
			fmt.Fprint(w, pagina("idTipoDocumento", 1, "DNI"))
		case "/generos/listar":
			fmt.Fprint(w, pagina("idGenero", 2, "Masculino"))
		case "/estados-civiles/listar":
			fmt.Fprint(w, pagina("idEstadoCivil", 3, "Soltero"))
		case "/cargos/listar":
			fmt.Fprint(w, pagina("idCargo", 4, "Analista"))
		case "/situaciones-trabajador/listar":
			fmt.Fprint(w, pagina("idSituacion", 5, "Contratado"))
		case "/sistemas-pension/listar":
			fmt.Fprint(w, pagina("idSistemaPension", 6, "ONP"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	svc := NewService(backend.NewClient(srv.URL, time.Second, zap.NewNop()), backend.DefaultEndpoints())

	refs, err := svc.CargarReferencias(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(6), hits.Load())
	assert.Equal(t, []Opcion{{Valor: 1, Nombre: "DNI"}}, refs.TiposDocumento)
	assert.Equal(t, []Opcion{{Valor: 2, Nombre: "Masculino"}}, refs.Generos)
	assert.Equal(t, []Opcion{{Valor: 3, Nombre: "Soltero"}}, refs.EstadosCiviles)
	assert.Equal(t, []Opcion{{Valor: 4, Nombre: "Analista"}}, refs.Cargos)
	assert.Equal(t, []Opcion{{Valor: 5, Nombre: "Contratado"}}, refs.Situaciones)
	assert.Equal(t, []Opcion{{Valor: 6, Nombre: "ONP"}}, refs.SistemasPension)
}

func TestCargarReferencias_UnCatalogoCaidoFallaTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/generos/listar" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, pagina("idCargo", 1, "Analista"))
	}))
	defer srv.Close()

	svc := NewService(backend.NewClient(srv.URL, time.Second, zap.NewNop()), backend.DefaultEndpoints())

	refs, err := svc.CargarReferencias(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Referencias{}, refs)
}
