package repository

import (
	"context"

	"github.com/jhoicas/bodega-wms/internal/domain/entity"
)

// InventoryRepository define el puerto para el stock por (bodega, producto, ubicación).
type InventoryRepository interface {
	// Upsert inserta o reemplaza el registro por su identidad compuesta.
	Upsert(ctx context.Context, record *entity.InventoryRecord) error
	ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.InventoryRecord, error)
}
