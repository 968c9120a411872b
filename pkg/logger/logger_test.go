package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/pkg/logger"
)

func TestLogger_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "bodega-wms", Out: &buf})

	log := l.Component("loader")
	log.Debug().Msg("no se escribe")
	log.Warn().Str("id", "P1").Msg("fila descartada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "bodega-wms", entry["service"])
	assert.Equal(t, "P1", entry["id"])
}

func TestLogger_Desactivado(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "disabled", Out: &buf})
	l.Error().Msg("nada")
	assert.Zero(t, buf.Len())
}
