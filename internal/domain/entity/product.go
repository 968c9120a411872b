package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un producto.
const (
	ProductStatusActive       = "active"
	ProductStatusInactive     = "inactive"
	ProductStatusDiscontinued = "discontinued"
)

// Product representa un SKU del catálogo.
// Se crea o reemplaza durante la importación (upsert por ID) y lo leen los análisis.
type Product struct {
	ID              string
	SKU             string // único en el catálogo
	Name            string
	Category        string
	Subcategory     string
	Brand           string
	UnitOfMeasure   string
	MinStock        decimal.Decimal
	MaxStock        decimal.Decimal
	ReorderPoint    decimal.Decimal
	ReorderQuantity decimal.Decimal
	CostPrice       decimal.Decimal // costo unitario; base del capital inmovilizado
	SellingPrice    decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate verifica los campos mínimos para persistir el producto.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("producto sin id")
	}
	if strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("producto %s sin sku", p.ID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("producto %s sin nombre", p.ID)
	}
	if p.CostPrice.IsNegative() || p.SellingPrice.IsNegative() {
		return fmt.Errorf("producto %s con precio negativo", p.ID)
	}
	return nil
}
