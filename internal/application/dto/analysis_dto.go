package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── ABC ───────────────────────────────────────────────────────────────────────

// ABCClass clase Pareto de un producto.
type ABCClass string

const (
	ABCClassA ABCClass = "A" // acumulado <= 20%
	ABCClassB ABCClass = "B" // acumulado <= 50%
	ABCClassC ABCClass = "C" // resto
)

// ABCAnalysisRequest parámetros para GET /api/analytics/abc.
type ABCAnalysisRequest struct {
	WarehouseID string `query:"warehouse_id" validate:"required"`
	DateFrom    string `query:"date_from" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
	DateTo      string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`   // YYYY-MM-DD
}

// ABCParameters parámetros de entrada devueltos con el resultado (trazabilidad).
type ABCParameters struct {
	WarehouseID  string     `json:"warehouse_id"`
	MovementType string     `json:"movement_type"`
	DateFrom     *time.Time `json:"date_from,omitempty"`
	DateTo       *time.Time `json:"date_to,omitempty"`
}

// ABCProduct producto clasificado. Los porcentajes no se redondean.
type ABCProduct struct {
	ProductID              string          `json:"product_id"`
	SKU                    string          `json:"sku"`
	Name                   string          `json:"name"`
	Quantity               decimal.Decimal `json:"quantity"`
	Contribution           float64         `json:"contribution"`            // % del total
	CumulativeContribution float64         `json:"cumulative_contribution"` // % acumulado
	Class                  ABCClass        `json:"class"`
}

// ABCClassSummary conteo y contribución sumada de una clase.
type ABCClassSummary struct {
	Count        int     `json:"count"`
	Contribution float64 `json:"contribution"`
}

// ABCSummary agregados por clase.
type ABCSummary struct {
	A ABCClassSummary `json:"A"`
	B ABCClassSummary `json:"B"`
	C ABCClassSummary `json:"C"`
}

// ABCAnalysisResult resultado del análisis ABC. Se calcula en cada llamada; no se persiste.
type ABCAnalysisResult struct {
	Products      []ABCProduct    `json:"products"`
	Summary       ABCSummary      `json:"summary"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	AnalyzedAt    time.Time       `json:"analyzed_at"`
	Parameters    ABCParameters   `json:"parameters"`
}

// ── Stock muerto ──────────────────────────────────────────────────────────────

// DeadStockSeverity nivel de severidad por antigüedad del último movimiento.
type DeadStockSeverity string

const (
	SeverityCritical DeadStockSeverity = "critical"
	SeverityWarning  DeadStockSeverity = "warning"
	SeverityMonitor  DeadStockSeverity = "monitor"
)

// DeadStockAnalysisRequest parámetros para GET /api/analytics/dead-stock.
// Los umbrales ausentes toman los valores configurados (por defecto 90/180/90).
type DeadStockAnalysisRequest struct {
	WarehouseID       string `query:"warehouse_id" validate:"required"`
	ThresholdDays     *int   `query:"threshold_days" validate:"omitempty,min=0"`
	CriticalThreshold *int   `query:"critical_threshold" validate:"omitempty,min=0"`
	WarningThreshold  *int   `query:"warning_threshold" validate:"omitempty,min=0"`
}

// DeadStockParameters umbrales efectivos usados en el análisis.
type DeadStockParameters struct {
	WarehouseID       string `json:"warehouse_id"`
	ThresholdDays     int    `json:"threshold_days"`
	CriticalThreshold int    `json:"critical_threshold"`
	WarningThreshold  int    `json:"warning_threshold"`
}

// DeadStockProduct registro de inventario clasificado como stock muerto.
// DaysSinceLastMovement es nil cuando el producto nunca se movió.
type DeadStockProduct struct {
	ProductID             string            `json:"product_id"`
	SKU                   string            `json:"sku"`
	Name                  string            `json:"name"`
	Category              string            `json:"category"`
	LocationID            string            `json:"location_id,omitempty"`
	CurrentQuantity       decimal.Decimal   `json:"current_quantity"`
	LastMovementDate      *time.Time        `json:"last_movement_date"`
	DaysSinceLastMovement *int              `json:"days_since_last_movement"`
	UnitCost              decimal.Decimal   `json:"unit_cost"`
	TiedCapital           decimal.Decimal   `json:"tied_capital"` // CurrentQuantity * UnitCost
	Severity              DeadStockSeverity `json:"severity"`
}

// DeadStockSeveritySummary conteo y capital por severidad.
type DeadStockSeveritySummary struct {
	Count       int             `json:"count"`
	TiedCapital decimal.Decimal `json:"tied_capital"`
}

// DeadStockSummary agregados del análisis.
type DeadStockSummary struct {
	TotalProducts    int                      `json:"total_products"`
	TotalTiedCapital decimal.Decimal          `json:"total_tied_capital"`
	Critical         DeadStockSeveritySummary `json:"critical"`
	Warning          DeadStockSeveritySummary `json:"warning"`
	Monitor          DeadStockSeveritySummary `json:"monitor"`
}

// DeadStockAnalysisResult resultado del análisis de stock muerto.
type DeadStockAnalysisResult struct {
	Products   []DeadStockProduct  `json:"products"`
	Summary    DeadStockSummary    `json:"summary"`
	AnalyzedAt time.Time           `json:"analyzed_at"`
	Parameters DeadStockParameters `json:"parameters"`
}
