package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/internal/application/analytics"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newAnalysis(repo *fakeAnalyticsRepo, gate *usecase.ImportGate) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(repo, newFakeWarehouseRepo("WH-1"), gate, analytics.DefaultDeadStockParams()).
		WithClock(func() time.Time { return fixedNow })
}

func intPtr(n int) *int { return &n }

func TestAnalysisUseCase_ABC(t *testing.T) {
	repo := &fakeAnalyticsRepo{totals: []repository.ProductMovementTotal{
		{ProductID: "P1", SKU: "S1", TotalQuantity: decimal.NewFromInt(50)},
		{ProductID: "P2", SKU: "S2", TotalQuantity: decimal.NewFromInt(30)},
		{ProductID: "P3", SKU: "S3", TotalQuantity: decimal.NewFromInt(20)},
	}}
	uc := newAnalysis(repo, nil)

	res, err := uc.PerformABCAnalysis(context.Background(), dto.ABCAnalysisRequest{
		WarehouseID: "WH-1", DateFrom: "2026-01-01", DateTo: "2026-01-31",
	})
	require.NoError(t, err)
	require.Len(t, res.Products, 3)
	assert.Equal(t, dto.ABCClassA, res.Products[0].Class)
	assert.Equal(t, dto.ABCClassB, res.Products[1].Class)
	assert.Equal(t, dto.ABCClassC, res.Products[2].Class)
	assert.Equal(t, fixedNow, res.AnalyzedAt)

	require.NotNil(t, repo.gotFrom)
	require.NotNil(t, repo.gotTo)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *repo.gotFrom)
	assert.Equal(t, time.Date(2026, 1, 31, 23, 59, 59, 999999999, time.UTC), *repo.gotTo, "date_to inclusiva")
}

func TestAnalysisUseCase_BodegaInexistente(t *testing.T) {
	uc := newAnalysis(&fakeAnalyticsRepo{}, nil)

	_, err := uc.PerformABCAnalysis(context.Background(), dto.ABCAnalysisRequest{WarehouseID: "WH-X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.PerformDeadStockAnalysis(context.Background(), dto.DeadStockAnalysisRequest{WarehouseID: "WH-X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisUseCase_FechasInvalidas(t *testing.T) {
	uc := newAnalysis(&fakeAnalyticsRepo{}, nil)

	_, err := uc.PerformABCAnalysis(context.Background(), dto.ABCAnalysisRequest{WarehouseID: "WH-1", DateFrom: "01/02/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PerformABCAnalysis(context.Background(), dto.ABCAnalysisRequest{WarehouseID: "WH-1", DateFrom: "2026-02-01", DateTo: "2026-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalysisUseCase_DeadStockDefaultsYOverrides(t *testing.T) {
	last := fixedNow.AddDate(0, 0, -200)
	repo := &fakeAnalyticsRepo{candidates: []repository.DeadStockCandidate{
		{ProductID: "P1", SKU: "S1", CurrentQuantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(10), LastMovementDate: &last},
	}}
	uc := newAnalysis(repo, nil)

	res, err := uc.PerformDeadStockAnalysis(context.Background(), dto.DeadStockAnalysisRequest{WarehouseID: "WH-1"})
	require.NoError(t, err)
	assert.Equal(t, 90, repo.gotThreshold)
	assert.Equal(t, 180, res.Parameters.CriticalThreshold)
	assert.Equal(t, 90, res.Parameters.WarningThreshold)
	require.Len(t, res.Products, 1)
	assert.Equal(t, dto.SeverityCritical, res.Products[0].Severity)

	res, err = uc.PerformDeadStockAnalysis(context.Background(), dto.DeadStockAnalysisRequest{
		WarehouseID: "WH-1", ThresholdDays: intPtr(30), CriticalThreshold: intPtr(365), WarningThreshold: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, repo.gotThreshold)
	require.Len(t, res.Products, 1)
	assert.Equal(t, dto.SeverityWarning, res.Products[0].Severity)
}

func TestAnalysisUseCase_EsperaImportacionEnCurso(t *testing.T) {
	gate := usecase.NewImportGate()
	runner := &fakeRunner{started: make(chan struct{}, 1), block: make(chan struct{})}
	imports := newImportUseCase(t, runner, gate)
	analysis := newAnalysis(&fakeAnalyticsRepo{}, gate)

	importDone := make(chan struct{})
	go func() {
		defer close(importDone)
		_, _ = imports.ExecuteImport(context.Background(), dto.ImportRequest{FilePath: "a.csv", WarehouseID: "WH-1", PluginID: "stub"}, nil)
	}()
	<-runner.started

	analysisDone := make(chan struct{})
	go func() {
		defer close(analysisDone)
		_, _ = analysis.PerformABCAnalysis(context.Background(), dto.ABCAnalysisRequest{WarehouseID: "WH-1"})
	}()

	select {
	case <-analysisDone:
		t.Fatal("el análisis no debe leer durante una importación")
	case <-time.After(50 * time.Millisecond):
	}

	close(runner.block)
	<-importDone
	select {
	case <-analysisDone:
	case <-time.After(2 * time.Second):
		t.Fatal("el análisis debió continuar al terminar la importación")
	}
}

func TestParseDateRange(t *testing.T) {
	from, to, err := usecase.ParseDateRange("", "")
	require.NoError(t, err)
	assert.Nil(t, from)
	assert.Nil(t, to)

	from, to, err = usecase.ParseDateRange("2026-05-10", "2026-05-10")
	require.NoError(t, err)
	assert.True(t, to.After(*from), "un solo día es un rango válido")
}
