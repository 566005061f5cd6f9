package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidget_EnviosConcurrentesNoPierdenMensajes(t *testing.T) {
	w := newWidget("chat-abc", true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			w.AppendUser(fmt.Sprintf("mensaje %d", n))
			w.Snapshot()
		}(i)
	}
	wg.Wait()

	msgs, configured := w.Snapshot()
	assert.True(t, configured)
	// saludo inicial + los 8 envíos
	assert.Len(t, msgs, 9)
}

func TestWidget_DegradarApagaYDejaElMotivo(t *testing.T) {
	w := newWidget("chat-abc", true)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		w.AppendUser("hola")
	}()
	go func() {
		defer wg.Done()
		w.Degradar("Credenciales del asistente inválidas")
	}()
	wg.Wait()

	msgs, configured := w.Snapshot()
	assert.False(t, configured)
	require.NotEmpty(t, msgs)

	motivo := false
	for _, m := range msgs {
		if m.Texto == "Credenciales del asistente inválidas" {
			motivo = true
		}
	}
	assert.True(t, motivo)
}

func TestWidget_ResetConservaElEstadoDeConfiguracion(t *testing.T) {
	w := newWidget("", false)
	w.AppendUser("hola")
	w.Reset()

	msgs, configured := w.Snapshot()
	assert.False(t, configured)
	require.Len(t, msgs, 1)
	assert.Equal(t, mensajeNoConfigurado, msgs[0].Texto)
}
