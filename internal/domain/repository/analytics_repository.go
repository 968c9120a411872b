package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductMovementTotal resultado crudo: cantidad total movida por producto.
// La consulta lo entrega ordenado por TotalQuantity descendente (desempate por ProductID).
type ProductMovementTotal struct {
	ProductID     string
	SKU           string
	Name          string
	TotalQuantity decimal.Decimal
}

// DeadStockCandidate registro de inventario sin movimientos recientes.
// LastMovementDate es nil si el producto nunca se movió en la bodega.
type DeadStockCandidate struct {
	ProductID        string
	SKU              string
	Name             string
	Category         string
	LocationID       string
	CurrentQuantity  decimal.Decimal
	LastMovementDate *time.Time
	UnitCost         decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para los análisis ABC y de stock muerto.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetProductMovementTotals suma las cantidades de los movimientos del tipo indicado
	// por producto, opcionalmente acotado a [dateFrom, dateTo].
	GetProductMovementTotals(
		ctx context.Context,
		warehouseID, movementType string,
		dateFrom, dateTo *time.Time,
	) ([]ProductMovementTotal, error)

	// GetDeadStock devuelve un registro por cada fila de inventario de la bodega cuyo último
	// movimiento es anterior a asOf - thresholdDays, o que nunca tuvo movimientos.
	GetDeadStock(
		ctx context.Context,
		warehouseID string,
		thresholdDays int,
		asOf time.Time,
	) ([]DeadStockCandidate, error)
}
