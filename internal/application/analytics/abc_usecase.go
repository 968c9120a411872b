// Package analytics contiene los motores de análisis de inventario: clasificación ABC
// (Pareto) por volumen de salidas y detección de stock muerto.
//
// Los resultados se calculan en cada llamada a partir del estado actual de la base;
// nunca se cachean ni se persisten.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// Límites de clase sobre la contribución ACUMULADA (no la individual). Un producto se
// clasifica por el acumulado en el que entra a la curva de Pareto: el primero siempre es A
// y, si es grande, agota él solo la clase A.
const (
	abcClassALimit = 20.0
	abcClassBLimit = 50.0
)

// ABCUseCase clasifica los productos de una bodega en clases A/B/C según su aporte
// acumulado al volumen total de salidas.
type ABCUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewABCUseCase construye el caso de uso.
func NewABCUseCase(analyticsRepo repository.AnalyticsRepository) *ABCUseCase {
	return &ABCUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ABCUseCase) WithClock(now func() time.Time) *ABCUseCase {
	uc.now = now
	return uc
}

// Analyze ejecuta el análisis ABC sobre las salidas (OUT) de la bodega en el rango opcional.
// No valida que la bodega exista; sin movimientos devuelve un resultado vacío explícito.
func (uc *ABCUseCase) Analyze(
	ctx context.Context,
	warehouseID string,
	dateFrom, dateTo *time.Time,
) (*dto.ABCAnalysisResult, error) {
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return nil, fmt.Errorf("%w: date_from no puede ser posterior a date_to", domain.ErrInvalidInput)
	}

	totals, err := uc.analyticsRepo.GetProductMovementTotals(ctx, warehouseID, entity.MovementTypeOUT, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("abc: totales por producto: %w", err)
	}

	products, summary, total := ClassifyABC(totals)
	return &dto.ABCAnalysisResult{
		Products:      products,
		Summary:       summary,
		TotalQuantity: total,
		AnalyzedAt:    uc.now(),
		Parameters: dto.ABCParameters{
			WarehouseID:  warehouseID,
			MovementType: entity.MovementTypeOUT,
			DateFrom:     dateFrom,
			DateTo:       dateTo,
		},
	}, nil
}

// ClassifyABC recorre la secuencia ordenada por volumen una sola vez acumulando la contribución.
// Con el acumulado previo al producto:
//   - <= 20  → A
//   - <= 50  → B
//   - resto  → C
//
// CumulativeContribution informa el acumulado ya incluyendo al producto (el último llega a 100).
// La entrada se reordena de forma estable (cantidad desc, product_id asc) para que los empates
// no vuelvan no determinista la frontera entre clases.
func ClassifyABC(totals []repository.ProductMovementTotal) ([]dto.ABCProduct, dto.ABCSummary, decimal.Decimal) {
	var summary dto.ABCSummary

	total := decimal.Zero
	for _, t := range totals {
		total = total.Add(t.TotalQuantity)
	}
	if len(totals) == 0 || !total.IsPositive() {
		return []dto.ABCProduct{}, summary, decimal.Zero
	}

	ordered := make([]repository.ProductMovementTotal, len(totals))
	copy(ordered, totals)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.TotalQuantity.Equal(b.TotalQuantity) {
			return a.TotalQuantity.GreaterThan(b.TotalQuantity)
		}
		return a.ProductID < b.ProductID
	})

	totalF := total.InexactFloat64()
	products := make([]dto.ABCProduct, 0, len(ordered))
	cumulative := 0.0

	for _, t := range ordered {
		contribution := t.TotalQuantity.InexactFloat64() / totalF * 100
		class := classFor(cumulative)
		cumulative += contribution

		switch class {
		case dto.ABCClassA:
			summary.A.Count++
			summary.A.Contribution += contribution
		case dto.ABCClassB:
			summary.B.Count++
			summary.B.Contribution += contribution
		default:
			summary.C.Count++
			summary.C.Contribution += contribution
		}

		products = append(products, dto.ABCProduct{
			ProductID:              t.ProductID,
			SKU:                    t.SKU,
			Name:                   t.Name,
			Quantity:               t.TotalQuantity,
			Contribution:           contribution,
			CumulativeContribution: cumulative,
			Class:                  class,
		})
	}
	return products, summary, total
}

func classFor(before float64) dto.ABCClass {
	switch {
	case before <= abcClassALimit:
		return dto.ABCClassA
	case before <= abcClassBLimit:
		return dto.ABCClassB
	default:
		return dto.ABCClassC
	}
}
