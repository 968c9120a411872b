package repository

import (
	"context"

	"github.com/jhoicas/bodega-wms/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos (solo inserción).
type MovementRepository interface {
	Insert(ctx context.Context, movement *entity.Movement) error
	CountByWarehouse(ctx context.Context, warehouseID string) (int, error)
}
