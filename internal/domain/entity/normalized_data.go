package entity

import "time"

// NormalizedData es la salida canónica de un plugin de importación y el único
// contrato entre el plugin y el loader.
type NormalizedData struct {
	Metadata  ImportMetadata
	Products  []Product
	Inventory []InventoryRecord
	Movements []Movement

	// Entidades aceptadas en el esquema pero aún no persistidas por el loader.
	Zones       []Zone
	Locations   []Location
	Orders      []OperationRecord
	Pickings    []OperationRecord
	Receptions  []OperationRecord
	Restockings []OperationRecord
	Returns     []OperationRecord
}

// ImportMetadata identifica el origen y la bodega destino de los datos normalizados.
type ImportMetadata struct {
	WarehouseID      string
	PluginID         string
	SourceSystemName string
	SourceFile       string
	GeneratedAt      time.Time

	// ReferenceDate último día cubierto por datos generados (cero si vienen de un archivo).
	ReferenceDate time.Time
}

// Zone zona física de la bodega.
type Zone struct {
	ID          string
	WarehouseID string
	Code        string
	Name        string
}

// Location posición de almacenamiento dentro de una zona.
type Location struct {
	ID          string
	WarehouseID string
	ZoneID      string
	Code        string
}

// OperationRecord registro genérico de una operación logística (pedido, picking, recepción...).
type OperationRecord struct {
	ID        string
	ProductID string
	Reference string
	Date      time.Time
	Fields    map[string]string
}
