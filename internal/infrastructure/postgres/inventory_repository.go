package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo stock por (bodega, producto, ubicación) sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert reemplaza el registro completo si ya existe la identidad compuesta.
func (r *InventoryRepo) Upsert(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (
			id, warehouse_id, product_id, location_id, quantity, available_quantity,
			reserved_quantity, last_receipt_at, last_shipment_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (warehouse_id, product_id, location_id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			available_quantity = EXCLUDED.available_quantity,
			reserved_quantity = EXCLUDED.reserved_quantity,
			last_receipt_at = EXCLUDED.last_receipt_at,
			last_shipment_at = EXCLUDED.last_shipment_at,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.WarehouseID, rec.ProductID, rec.Location(), rec.Quantity, rec.AvailableQuantity,
		rec.ReservedQuantity, rec.LastReceiptAt, rec.LastShipmentAt, rec.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("inventario %s referencia un producto o bodega inexistente: %w", rec.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByWarehouse lista el inventario de una bodega ordenado por producto y ubicación.
func (r *InventoryRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT id, warehouse_id, product_id, location_id, quantity, available_quantity,
			reserved_quantity, last_receipt_at, last_shipment_at, updated_at
		FROM inventory WHERE warehouse_id = $1
		ORDER BY product_id, location_id`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.WarehouseID, &rec.ProductID, &rec.LocationID, &rec.Quantity, &rec.AvailableQuantity,
			&rec.ReservedQuantity, &rec.LastReceiptAt, &rec.LastShipmentAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
