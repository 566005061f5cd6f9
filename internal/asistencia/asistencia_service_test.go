package asistencia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mauricio62/planilla-web/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(url string) *Service {
	return NewService(backend.NewClient(url, time.Second, zap.NewNop()), backend.DefaultEndpoints().Asistencia)
}

func TestBuscar_EmiteUnaSolaPeticionConElPeriodo(t *testing.T) {
	var hits atomic.Int64
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/asistencias/buscar", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"idAsistencia":1,"idTrabajador":7,"documento":"45879632","nombre":"María García","diasLaborales":20}]`)
	}))
	defer srv.Close()

	rows, err := newService(srv.URL).Buscar(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(1), hits.Load())
	assert.Equal(t, "2024", mustQueryValue(t, gotQuery, "año"))
	assert.Equal(t, "3", mustQueryValue(t, gotQuery, "mes"))
	require.Len(t, rows, 1)
	assert.Equal(t, "María García", rows[0].Nombre)
}

func TestBuscar_RespuestaNulaDevuelveSliceVacio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `null`)
	}))
	defer srv.Close()

	rows, err := newService(srv.URL).Buscar(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestGuardar_EnviaElLoteConElPeriodoConEnie(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asistencias/guardar", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `true`)
	}))
	defer srv.Close()

	ed := NewEditor(2024, 3, []AsistenciaRow{
		{IDAsistencia: 1, IDTrabajador: 7, DiasLaborales: 20},
		{IDAsistencia: 2, IDTrabajador: 8, DiasLaborales: 18},
	})

	err := newService(srv.URL).Guardar(context.Background(), ed.PayloadGuardar())
	require.NoError(t, err)

	var enviado []map[string]any
	require.NoError(t, json.Unmarshal(body, &enviado))
	require.Len(t, enviado, 2)
	assert.Equal(t, float64(2024), enviado[0]["año"])
	assert.Equal(t, float64(3), enviado[0]["mes"])
	assert.Equal(t, float64(2024), enviado[1]["año"])
}

func TestCargarExcel_UsaElCampoArchivo(t *testing.T) {
	var campos []string
	var fileField, fileName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if err != nil {
				break
			}
			if part.FileName() != "" {
				fileField = part.FormName()
				fileName = part.FileName()
			} else {
				campos = append(campos, part.FormName())
			}
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"idAsistencia":1,"nombre":"María García"}]}`)
	}))
	defer srv.Close()

	rows, err := newService(srv.URL).CargarExcel(
		context.Background(), 2024, 3, "plantilla.xlsx", strings.NewReader("contenido"))
	require.NoError(t, err)

	assert.Equal(t, "archivo", fileField)
	assert.Equal(t, "plantilla.xlsx", fileName)
	assert.ElementsMatch(t, []string{"año", "mes"}, campos)
	require.Len(t, rows, 1)
}

func TestDescargarExcel_DevuelveElBinario(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/asistencias/descargar-excel", r.URL.Path)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
	}))
	defer srv.Close()

	blob, err := newService(srv.URL).DescargarExcel(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Contains(t, blob.ContentType, "spreadsheetml")
	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, blob.Data)
}

func mustQueryValue(t *testing.T, rawQuery, key string) string {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	return values.Get(key)
}
