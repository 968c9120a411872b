package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert inserta o reemplaza el producto por ID. created_at se conserva al reemplazar.
func (r *ProductRepo) Upsert(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (
			id, sku, name, category, subcategory, brand, unit_of_measure,
			min_stock, max_stock, reorder_point, reorder_quantity,
			cost_price, selling_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			sku = EXCLUDED.sku,
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			brand = EXCLUDED.brand,
			unit_of_measure = EXCLUDED.unit_of_measure,
			min_stock = EXCLUDED.min_stock,
			max_stock = EXCLUDED.max_stock,
			reorder_point = EXCLUDED.reorder_point,
			reorder_quantity = EXCLUDED.reorder_quantity,
			cost_price = EXCLUDED.cost_price,
			selling_price = EXCLUDED.selling_price,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Name, p.Category, p.Subcategory, p.Brand, p.UnitOfMeasure,
		p.MinStock, p.MaxStock, p.ReorderPoint, p.ReorderQuantity,
		p.CostPrice, p.SellingPrice, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("sku %s ya pertenece a otro producto: %w", p.SKU, domain.ErrDuplicate)
		}
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}
