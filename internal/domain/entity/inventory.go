package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLocationID ubicación usada cuando el registro de inventario no trae una.
const DefaultLocationID = "default"

// InventoryRecord representa el stock de un producto en una bodega (y ubicación opcional).
// Único por (bodega, producto, ubicación): reimportar reemplaza el registro.
// AvailableQuantity + ReservedQuantity <= Quantity no lo garantiza el almacenamiento.
type InventoryRecord struct {
	ID                string
	WarehouseID       string
	ProductID         string
	LocationID        string
	Quantity          decimal.Decimal
	AvailableQuantity decimal.Decimal
	ReservedQuantity  decimal.Decimal
	LastReceiptAt     *time.Time
	LastShipmentAt    *time.Time
	UpdatedAt         time.Time
}

// Location devuelve la ubicación efectiva del registro.
func (r *InventoryRecord) Location() string {
	if r.LocationID == "" {
		return DefaultLocationID
	}
	return r.LocationID
}

// InventoryRecordID construye la identidad compuesta (bodega, producto, ubicación).
func InventoryRecordID(warehouseID, productID, locationID string) string {
	if locationID == "" {
		locationID = DefaultLocationID
	}
	return fmt.Sprintf("%s:%s:%s", warehouseID, productID, locationID)
}
