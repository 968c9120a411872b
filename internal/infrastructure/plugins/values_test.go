package plugins

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
)

func TestParseDecimal(t *testing.T) {
	cases := map[string]string{
		"":           "0",
		"15":         "15",
		"12.5":       "12.5",
		"12,5":       "12.5",
		"1.234,56":   "1234.56",
		"1,234.56":   "1234.56",
		"1,234":      "1234",
		"1.234.567":  "1234567",
		"$ 2.500,00": "2500",
		"-3":         "-3",
	}
	for in, want := range cases {
		got, err := parseDecimal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
	_, err := parseDecimal("doce")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2025-07-04", "04/07/2025", "4/7/2025", "45842"} {
		got, err := parseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s -> %s", in, got)
	}
	_, err := parseDate("ayer")
	assert.Error(t, err)
	_, err = parseDate("")
	assert.Error(t, err)
}

func TestParseMovementType(t *testing.T) {
	cases := map[string]string{
		"Salida":     entity.MovementTypeOUT,
		"out":        entity.MovementTypeOUT,
		"OUTBOUND":   entity.MovementTypeOUT,
		"Entrada":    entity.MovementTypeIN,
		"Recepción":  entity.MovementTypeIN,
		"ajuste":     entity.MovementTypeADJUSTMENT,
		"Traslado":   entity.MovementTypeTRANSFER,
		"Devolución": entity.MovementTypeRETURN,
	}
	for in, want := range cases {
		got, ok := parseMovementType(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := parseMovementType("teletransporte")
	assert.False(t, ok)
}
