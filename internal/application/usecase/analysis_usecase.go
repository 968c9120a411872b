package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bodega-wms/internal/application/analytics"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AnalysisUseCase expone los análisis ABC y de stock muerto. Verifica que la bodega exista
// (los motores no lo hacen) y se serializa contra la importación en curso mediante ImportGate.
type AnalysisUseCase struct {
	abc        *analytics.ABCUseCase
	deadStock  *analytics.DeadStockUseCase
	warehouses repository.WarehouseRepository
	gate       *ImportGate
	defaults   analytics.DeadStockParams
}

// NewAnalysisUseCase construye el caso de uso. defaults se aplica a los umbrales no indicados.
func NewAnalysisUseCase(
	analyticsRepo repository.AnalyticsRepository,
	warehouses repository.WarehouseRepository,
	gate *ImportGate,
	defaults analytics.DeadStockParams,
) *AnalysisUseCase {
	if gate == nil {
		gate = NewImportGate()
	}
	return &AnalysisUseCase{
		abc:        analytics.NewABCUseCase(analyticsRepo),
		deadStock:  analytics.NewDeadStockUseCase(analyticsRepo),
		warehouses: warehouses,
		gate:       gate,
		defaults:   defaults,
	}
}

// WithClock fija el reloj de ambos motores (tests y reportes reproducibles).
func (uc *AnalysisUseCase) WithClock(now func() time.Time) *AnalysisUseCase {
	uc.abc.WithClock(now)
	uc.deadStock.WithClock(now)
	return uc
}

// PerformABCAnalysis clasifica los productos de la bodega por volumen de salidas.
func (uc *AnalysisUseCase) PerformABCAnalysis(ctx context.Context, req dto.ABCAnalysisRequest) (*dto.ABCAnalysisResult, error) {
	dateFrom, dateTo, err := ParseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	release := uc.gate.read()
	defer release()

	if err := requireWarehouse(ctx, uc.warehouses, req.WarehouseID); err != nil {
		return nil, err
	}
	return uc.abc.Analyze(ctx, req.WarehouseID, dateFrom, dateTo)
}

// PerformDeadStockAnalysis detecta el inventario sin movimientos recientes.
func (uc *AnalysisUseCase) PerformDeadStockAnalysis(ctx context.Context, req dto.DeadStockAnalysisRequest) (*dto.DeadStockAnalysisResult, error) {
	params := uc.ResolveDeadStockParams(req)

	release := uc.gate.read()
	defer release()

	if err := requireWarehouse(ctx, uc.warehouses, req.WarehouseID); err != nil {
		return nil, err
	}
	return uc.deadStock.Analyze(ctx, req.WarehouseID, params)
}

// ResolveDeadStockParams completa los umbrales ausentes con los valores por defecto.
func (uc *AnalysisUseCase) ResolveDeadStockParams(req dto.DeadStockAnalysisRequest) analytics.DeadStockParams {
	params := uc.defaults
	if req.ThresholdDays != nil {
		params.ThresholdDays = *req.ThresholdDays
	}
	if req.CriticalThreshold != nil {
		params.CriticalThreshold = *req.CriticalThreshold
	}
	if req.WarningThreshold != nil {
		params.WarningThreshold = *req.WarningThreshold
	}
	return params
}

// ParseDateRange interpreta fechas YYYY-MM-DD (UTC). Ambas son opcionales; date_to es
// inclusiva hasta el final del día.
func ParseDateRange(fromStr, toStr string) (from, to *time.Time, err error) {
	if s := strings.TrimSpace(fromStr); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: date_from inválido: %v", domain.ErrInvalidInput, err)
		}
		from = &t
	}
	if s := strings.TrimSpace(toStr); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: date_to inválido: %v", domain.ErrInvalidInput, err)
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%w: date_from no puede ser posterior a date_to", domain.ErrInvalidInput)
	}
	return from, to, nil
}
