package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos de una bodega.
const (
	WarehouseStatusActive   = "active"
	WarehouseStatusInactive = "inactive"
)

// Warehouse representa una bodega o centro de distribución.
type Warehouse struct {
	ID           string
	Code         string // código único legible (ej. WH-1)
	Name         string
	Location     string
	Status       string
	Capacity     decimal.Decimal // capacidad total (unidades o posiciones)
	UsedCapacity decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
