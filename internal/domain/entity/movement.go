package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada / recepción
	MovementTypeOUT        = "OUT"        // salida / despacho
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones
	MovementTypeRETURN     = "RETURN"     // devolución
)

// Movement es un evento inmutable: solo se inserta, nunca se actualiza.
// El ID lo genera el loader al insertar.
type Movement struct {
	ID                  string
	WarehouseID         string
	ProductID           string
	Type                string
	Quantity            decimal.Decimal // siempre positiva; el sentido lo da Type
	Date                time.Time
	SourceLocation      string
	DestinationLocation string
	Zone                string
	Lot                 string
	ExpirationDate      *time.Time
	Reference           string
	CreatedAt           time.Time
}

// IsValidMovementType indica si t es uno de los tipos conocidos.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT, MovementTypeTRANSFER, MovementTypeRETURN:
		return true
	}
	return false
}
