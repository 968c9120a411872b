package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/internal/application/analytics"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

func candidate(id string, qty, cost string, daysAgo *int) repository.DeadStockCandidate {
	c := repository.DeadStockCandidate{
		ProductID:       id,
		SKU:             "SKU-" + id,
		Name:            "Producto " + id,
		Category:        "General",
		CurrentQuantity: decimal.RequireFromString(qty),
		UnitCost:        decimal.RequireFromString(cost),
	}
	if daysAgo != nil {
		d := fixedNow.AddDate(0, 0, -*daysAgo)
		c.LastMovementDate = &d
	}
	return c
}

func days(n int) *int { return &n }

func TestDeadStock_Hace200Dias_Critico(t *testing.T) {
	repo := &fakeAnalyticsRepo{candidates: []repository.DeadStockCandidate{candidate("P1", "10", "2.50", days(200))}}
	uc := analytics.NewDeadStockUseCase(repo).WithClock(func() time.Time { return fixedNow })

	res, err := uc.Analyze(context.Background(), "WH-1", analytics.DeadStockParams{ThresholdDays: 90, CriticalThreshold: 180, WarningThreshold: 90})
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	p := res.Products[0]
	assert.Equal(t, dto.SeverityCritical, p.Severity)
	require.NotNil(t, p.DaysSinceLastMovement)
	assert.Equal(t, 200, *p.DaysSinceLastMovement)
	assert.True(t, p.TiedCapital.Equal(decimal.RequireFromString("25.00")))

	assert.Equal(t, 90, repo.gotThreshold)
	assert.Equal(t, fixedNow, repo.gotAsOf)
	assert.Equal(t, "WH-1", res.Parameters.WarehouseID)
}

func TestDeadStock_NuncaMovido_CantidadCero_Aparece(t *testing.T) {
	repo := &fakeAnalyticsRepo{candidates: []repository.DeadStockCandidate{candidate("P0", "0", "99", nil)}}
	uc := analytics.NewDeadStockUseCase(repo).WithClock(func() time.Time { return fixedNow })

	res, err := uc.Analyze(context.Background(), "WH-1", analytics.DefaultDeadStockParams())
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, dto.SeverityCritical, res.Products[0].Severity, "nunca movido = infinitamente antiguo")
	assert.Nil(t, res.Products[0].DaysSinceLastMovement)
	assert.Nil(t, res.Products[0].LastMovementDate)
	assert.True(t, res.Products[0].TiedCapital.IsZero())
	assert.Equal(t, 1, res.Summary.Critical.Count)
}

func TestDeadStock_NuncaMovido_SiempreCritico_ConCualquierUmbral(t *testing.T) {
	products, _ := analytics.ClassifyDeadStock(
		[]repository.DeadStockCandidate{candidate("P0", "1", "1", nil)},
		analytics.DeadStockParams{ThresholdDays: 5000, CriticalThreshold: 10000, WarningThreshold: 9000},
		fixedNow,
	)
	require.Len(t, products, 1)
	assert.Equal(t, dto.SeverityCritical, products[0].Severity)
}

func TestDeadStock_NivelesYResumen(t *testing.T) {
	candidates := []repository.DeadStockCandidate{
		candidate("C1", "3", "10", days(365)), // critical: 30
		candidate("C2", "1", "5.5", days(180)), // critical (>= 180): 5.5
		candidate("W1", "2", "7", days(120)),  // warning: 14
		candidate("M1", "4", "1.25", days(100)), // monitor (warning=110): 5
		candidate("R1", "9", "9", days(30)),   // reciente: no califica
		candidate("E1", "9", "9", days(90)),   // exactamente el umbral: no califica
	}
	params := analytics.DeadStockParams{ThresholdDays: 90, CriticalThreshold: 180, WarningThreshold: 110}

	products, summary := analytics.ClassifyDeadStock(candidates, params, fixedNow)

	require.Len(t, products, 4)
	bySKU := map[string]dto.DeadStockProduct{}
	for _, p := range products {
		bySKU[p.ProductID] = p
		assert.True(t, p.TiedCapital.Equal(p.CurrentQuantity.Mul(p.UnitCost)))
	}
	assert.Equal(t, dto.SeverityCritical, bySKU["C1"].Severity)
	assert.Equal(t, dto.SeverityCritical, bySKU["C2"].Severity)
	assert.Equal(t, dto.SeverityWarning, bySKU["W1"].Severity)
	assert.Equal(t, dto.SeverityMonitor, bySKU["M1"].Severity)

	assert.Equal(t, 4, summary.TotalProducts)
	assert.True(t, summary.TotalTiedCapital.Equal(decimal.RequireFromString("54.5")), summary.TotalTiedCapital.String())
	assert.Equal(t, 2, summary.Critical.Count)
	assert.True(t, summary.Critical.TiedCapital.Equal(decimal.RequireFromString("35.5")))
	assert.Equal(t, 1, summary.Warning.Count)
	assert.True(t, summary.Warning.TiedCapital.Equal(decimal.NewFromInt(14)))
	assert.Equal(t, 1, summary.Monitor.Count)
	assert.True(t, summary.Monitor.TiedCapital.Equal(decimal.NewFromInt(5)))

	// Mayor capital primero.
	assert.Equal(t, "C1", products[0].ProductID)
}

func TestDeadStock_UmbralesInvertidos_SeRespetaElOrdenLiteral(t *testing.T) {
	// warning (200) > critical (100): 150 días ya es crítico; nunca se llega a warning.
	params := analytics.DeadStockParams{ThresholdDays: 30, CriticalThreshold: 100, WarningThreshold: 200}
	products, summary := analytics.ClassifyDeadStock([]repository.DeadStockCandidate{
		candidate("A", "1", "1", days(150)),
		candidate("B", "1", "1", days(60)),
	}, params, fixedNow)

	require.Len(t, products, 2)
	assert.Equal(t, 1, summary.Critical.Count)
	assert.Equal(t, 0, summary.Warning.Count)
	assert.Equal(t, 1, summary.Monitor.Count)
}

func TestDeadStock_SinCandidatos(t *testing.T) {
	uc := analytics.NewDeadStockUseCase(&fakeAnalyticsRepo{}).WithClock(func() time.Time { return fixedNow })
	res, err := uc.Analyze(context.Background(), "WH-1", analytics.DefaultDeadStockParams())
	require.NoError(t, err)
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
	assert.Equal(t, 0, res.Summary.TotalProducts)
	assert.True(t, res.Summary.TotalTiedCapital.IsZero())
}

func TestDeadStock_UmbralNegativo(t *testing.T) {
	uc := analytics.NewDeadStockUseCase(&fakeAnalyticsRepo{})
	_, err := uc.Analyze(context.Background(), "WH-1", analytics.DeadStockParams{ThresholdDays: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
