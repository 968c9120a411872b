package analytics_test

import (
	"context"
	"time"

	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve filas fijas y registra los parámetros recibidos.
type fakeAnalyticsRepo struct {
	totals     []repository.ProductMovementTotal
	candidates []repository.DeadStockCandidate
	err        error

	gotWarehouse string
	gotType      string
	gotThreshold int
	gotAsOf      time.Time
}

func (f *fakeAnalyticsRepo) GetProductMovementTotals(_ context.Context, warehouseID, movementType string, _, _ *time.Time) ([]repository.ProductMovementTotal, error) {
	f.gotWarehouse = warehouseID
	f.gotType = movementType
	return f.totals, f.err
}

func (f *fakeAnalyticsRepo) GetDeadStock(_ context.Context, warehouseID string, thresholdDays int, asOf time.Time) ([]repository.DeadStockCandidate, error) {
	f.gotWarehouse = warehouseID
	f.gotThreshold = thresholdDays
	f.gotAsOf = asOf
	return f.candidates, f.err
}
