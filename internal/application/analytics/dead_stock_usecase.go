package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// Umbrales por defecto (días).
const (
	DefaultDeadStockThresholdDays = 90
	DefaultCriticalThresholdDays  = 180
	DefaultWarningThresholdDays   = 90
)

// DeadStockParams umbrales del análisis. Son independientes entre sí: si Warning > Critical
// la clasificación se invierte y se respeta tal cual (se compara primero contra Critical).
type DeadStockParams struct {
	ThresholdDays     int
	CriticalThreshold int
	WarningThreshold  int
}

// DefaultDeadStockParams devuelve 90/180/90.
func DefaultDeadStockParams() DeadStockParams {
	return DeadStockParams{
		ThresholdDays:     DefaultDeadStockThresholdDays,
		CriticalThreshold: DefaultCriticalThresholdDays,
		WarningThreshold:  DefaultWarningThresholdDays,
	}
}

// DeadStockUseCase detecta inventario sin movimientos recientes y valoriza el capital inmovilizado.
type DeadStockUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDeadStockUseCase construye el caso de uso.
func NewDeadStockUseCase(analyticsRepo repository.AnalyticsRepository) *DeadStockUseCase {
	return &DeadStockUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DeadStockUseCase) WithClock(now func() time.Time) *DeadStockUseCase {
	uc.now = now
	return uc
}

// Analyze clasifica cada registro de inventario de la bodega que califica como stock muerto:
// nunca se movió, o su último movimiento tiene más de ThresholdDays días.
// La cantidad actual no influye en la elegibilidad (un registro con cantidad 0 también aparece).
func (uc *DeadStockUseCase) Analyze(
	ctx context.Context,
	warehouseID string,
	params DeadStockParams,
) (*dto.DeadStockAnalysisResult, error) {
	if params.ThresholdDays < 0 || params.CriticalThreshold < 0 || params.WarningThreshold < 0 {
		return nil, fmt.Errorf("%w: los umbrales no pueden ser negativos", domain.ErrInvalidInput)
	}
	asOf := uc.now()

	candidates, err := uc.analyticsRepo.GetDeadStock(ctx, warehouseID, params.ThresholdDays, asOf)
	if err != nil {
		return nil, fmt.Errorf("dead-stock: candidatos: %w", err)
	}

	products, summary := ClassifyDeadStock(candidates, params, asOf)
	return &dto.DeadStockAnalysisResult{
		Products:   products,
		Summary:    summary,
		AnalyzedAt: asOf,
		Parameters: dto.DeadStockParameters{
			WarehouseID:       warehouseID,
			ThresholdDays:     params.ThresholdDays,
			CriticalThreshold: params.CriticalThreshold,
			WarningThreshold:  params.WarningThreshold,
		},
	}, nil
}

// ClassifyDeadStock filtra y clasifica candidatos. TiedCapital = CurrentQuantity * UnitCost (exacto).
// Orden de salida: mayor capital inmovilizado primero, desempate por SKU.
func ClassifyDeadStock(
	candidates []repository.DeadStockCandidate,
	params DeadStockParams,
	asOf time.Time,
) ([]dto.DeadStockProduct, dto.DeadStockSummary) {
	summary := dto.DeadStockSummary{
		TotalTiedCapital: decimal.Zero,
		Critical:         dto.DeadStockSeveritySummary{TiedCapital: decimal.Zero},
		Warning:          dto.DeadStockSeveritySummary{TiedCapital: decimal.Zero},
		Monitor:          dto.DeadStockSeveritySummary{TiedCapital: decimal.Zero},
	}
	products := make([]dto.DeadStockProduct, 0, len(candidates))

	for _, c := range candidates {
		var days *int
		if c.LastMovementDate != nil {
			d := daysBetween(*c.LastMovementDate, asOf)
			if d <= params.ThresholdDays {
				continue
			}
			days = &d
		}

		severity := severityFor(days, params)
		tied := c.CurrentQuantity.Mul(c.UnitCost)

		products = append(products, dto.DeadStockProduct{
			ProductID:             c.ProductID,
			SKU:                   c.SKU,
			Name:                  c.Name,
			Category:              c.Category,
			LocationID:            c.LocationID,
			CurrentQuantity:       c.CurrentQuantity,
			LastMovementDate:      c.LastMovementDate,
			DaysSinceLastMovement: days,
			UnitCost:              c.UnitCost,
			TiedCapital:           tied,
			Severity:              severity,
		})

		summary.TotalProducts++
		summary.TotalTiedCapital = summary.TotalTiedCapital.Add(tied)
		bucket := &summary.Monitor
		switch severity {
		case dto.SeverityCritical:
			bucket = &summary.Critical
		case dto.SeverityWarning:
			bucket = &summary.Warning
		}
		bucket.Count++
		bucket.TiedCapital = bucket.TiedCapital.Add(tied)
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if !a.TiedCapital.Equal(b.TiedCapital) {
			return a.TiedCapital.GreaterThan(b.TiedCapital)
		}
		return a.SKU < b.SKU
	})
	return products, summary
}

// severityFor compara primero contra el umbral crítico y luego contra el de advertencia.
// Sin movimientos (days nil) es infinitamente antiguo: siempre crítico.
func severityFor(days *int, params DeadStockParams) dto.DeadStockSeverity {
	if days == nil || *days >= params.CriticalThreshold {
		return dto.SeverityCritical
	}
	if *days >= params.WarningThreshold {
		return dto.SeverityWarning
	}
	return dto.SeverityMonitor
}

// daysBetween días completos transcurridos entre from y to (0 si from es futuro).
func daysBetween(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
