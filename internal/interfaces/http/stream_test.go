package http

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
)

// brokenConn simula un cliente que cerró la conexión.
type brokenConn struct{}

func (brokenConn) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestStreamImport_EnviaAvanceYResultado(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	streamImport(context.Background(), w, func(ctx context.Context, onProgress func(float64, string)) (*dto.ImportResult, error) {
		onProgress(50, "mitad")
		return &dto.ImportResult{Status: dto.ImportStatusSuccess}, nil
	})

	out := buf.String()
	assert.Contains(t, out, "event: progress\ndata: {\"percent\":50,\"message\":\"mitad\"}")
	assert.Contains(t, out, "event: result")
}

func TestStreamImport_ClienteDesconectadoCancela(t *testing.T) {
	w := bufio.NewWriter(brokenConn{})

	var ctxErr error
	streamImport(context.Background(), w, func(ctx context.Context, onProgress func(float64, string)) (*dto.ImportResult, error) {
		require.NoError(t, ctx.Err())
		onProgress(10, "leyendo")
		ctxErr = ctx.Err()
		return &dto.ImportResult{Status: dto.ImportStatusFailed}, nil
	})

	assert.ErrorIs(t, ctxErr, context.Canceled, "la importación ve el contexto cancelado")
}
