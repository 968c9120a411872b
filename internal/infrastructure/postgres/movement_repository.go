package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo movimientos de inventario (append-only) sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Insert registra un movimiento. Nunca actualiza: un ID repetido es un error.
func (r *MovementRepo) Insert(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (
			id, warehouse_id, product_id, type, quantity, movement_date,
			source_location, destination_location, zone, lot, expiration_date, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.WarehouseID, m.ProductID, m.Type, m.Quantity, m.Date,
		m.SourceLocation, m.DestinationLocation, m.Zone, m.Lot, m.ExpirationDate, m.Reference, m.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("movimiento %s: %w", m.ID, domain.ErrDuplicate)
		case isForeignKeyViolation(err):
			return fmt.Errorf("movimiento %s referencia un producto o bodega inexistente: %w", m.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// CountByWarehouse número de movimientos registrados en la bodega.
func (r *MovementRepo) CountByWarehouse(ctx context.Context, warehouseID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movements WHERE warehouse_id = $1`, warehouseID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
