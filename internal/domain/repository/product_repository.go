package repository

import (
	"context"

	"github.com/jhoicas/bodega-wms/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Upsert inserta o reemplaza el producto por ID.
	Upsert(ctx context.Context, product *entity.Product) error
}
