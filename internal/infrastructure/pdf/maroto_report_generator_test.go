package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
)

var analyzedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestGenerateABCReport(t *testing.T) {
	g := NewMarotoReportGenerator("")
	res := &dto.ABCAnalysisResult{
		Products: []dto.ABCProduct{
			{ProductID: "P1", SKU: "S1", Name: "Tornillo", Quantity: decimal.NewFromInt(50), Contribution: 50, CumulativeContribution: 50, Class: dto.ABCClassA},
			{ProductID: "P2", SKU: "S2", Name: "Tuerca", Quantity: decimal.NewFromInt(50), Contribution: 50, CumulativeContribution: 100, Class: dto.ABCClassC},
		},
		TotalQuantity: decimal.NewFromInt(100),
		AnalyzedAt:    analyzedAt,
		Parameters:    dto.ABCParameters{WarehouseID: "WH-1", MovementType: "OUT"},
	}

	out, err := g.GenerateABCReport(context.Background(), &dto.WarehouseResponse{ID: "WH-1", Code: "WH-1", Name: "Principal"}, res)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateDeadStockReport_Vacio(t *testing.T) {
	g := NewMarotoReportGenerator("tests")
	out, err := g.GenerateDeadStockReport(context.Background(), nil, &dto.DeadStockAnalysisResult{AnalyzedAt: analyzedAt})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = g.GenerateDeadStockReport(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.234.567,50", formatNumber(decimal.RequireFromString("1234567.5"), 2))
	assert.Equal(t, "999", formatNumber(decimal.NewFromInt(999), 0))
	assert.Equal(t, "-25.000", formatNumber(decimal.NewFromInt(-25000), 0))
	assert.Equal(t, "12,50%", percent(12.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
