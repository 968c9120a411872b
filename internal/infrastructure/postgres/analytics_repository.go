package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los análisis ABC y de stock muerto.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetProductMovementTotals suma |cantidad| por producto para un tipo de movimiento.
// Orden: total descendente y, en empate, product_id ascendente (determinista).
func (r *AnalyticsRepo) GetProductMovementTotals(
	ctx context.Context,
	warehouseID, movementType string,
	dateFrom, dateTo *time.Time,
) ([]repository.ProductMovementTotal, error) {
	const query = `
	SELECT
	    m.product_id,
	    COALESCE(p.sku,  m.product_id) AS sku,
	    COALESCE(p.name, '')           AS name,
	    SUM(ABS(m.quantity))           AS total_quantity
	FROM movements m
	LEFT JOIN products p ON p.id = m.product_id
	WHERE m.warehouse_id = $1
	  AND m.type = $2
	  AND ($3::timestamptz IS NULL OR m.movement_date >= $3::timestamptz)
	  AND ($4::timestamptz IS NULL OR m.movement_date <= $4::timestamptz)
	GROUP BY m.product_id, p.sku, p.name
	ORDER BY total_quantity DESC, m.product_id ASC`

	rows, err := r.q.Query(ctx, query, warehouseID, movementType, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("movement totals: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductMovementTotal
	for rows.Next() {
		var t repository.ProductMovementTotal
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.Name, &t.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan movement totals: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetDeadStock un registro por fila de inventario cuyo último movimiento (de cualquier tipo,
// misma bodega y producto) es anterior a asOf - thresholdDays, o que nunca se movió.
// unit_cost es el costo del producto; 0 si el producto no está en el catálogo.
func (r *AnalyticsRepo) GetDeadStock(
	ctx context.Context,
	warehouseID string,
	thresholdDays int,
	asOf time.Time,
) ([]repository.DeadStockCandidate, error) {
	const query = `
	SELECT
	    i.product_id,
	    COALESCE(p.sku,      i.product_id) AS sku,
	    COALESCE(p.name,     '')           AS name,
	    COALESCE(p.category, '')           AS category,
	    i.location_id,
	    i.quantity,
	    lm.last_movement,
	    COALESCE(p.cost_price, 0)          AS unit_cost
	FROM inventory i
	LEFT JOIN products p ON p.id = i.product_id
	LEFT JOIN (
	    SELECT product_id, MAX(movement_date) AS last_movement
	    FROM movements
	    WHERE warehouse_id = $1
	    GROUP BY product_id
	) lm ON lm.product_id = i.product_id
	WHERE i.warehouse_id = $1
	  AND (lm.last_movement IS NULL
	       OR lm.last_movement < $3::timestamptz - make_interval(days => $2::int))
	ORDER BY i.product_id, i.location_id`

	rows, err := r.q.Query(ctx, query, warehouseID, thresholdDays, asOf)
	if err != nil {
		return nil, fmt.Errorf("dead stock: %w", err)
	}
	defer rows.Close()

	var out []repository.DeadStockCandidate
	for rows.Next() {
		var c repository.DeadStockCandidate
		if err := rows.Scan(
			&c.ProductID, &c.SKU, &c.Name, &c.Category, &c.LocationID,
			&c.CurrentQuantity, &c.LastMovementDate, &c.UnitCost,
		); err != nil {
			return nil, fmt.Errorf("scan dead stock: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
