package dto

import (
	"time"

	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// ImportStatus resultado global de una importación.
type ImportStatus string

const (
	ImportStatusSuccess ImportStatus = "success"
	ImportStatusFailed  ImportStatus = "failed"
)

// ImportStage etapa de la máquina de estados de importación.
type ImportStage string

const (
	StageValidating   ImportStage = "validating"
	StageParsing      ImportStage = "parsing"
	StageTransforming ImportStage = "transforming"
	StageLoading      ImportStage = "loading"
	StageDone         ImportStage = "done"
	StageFailed       ImportStage = "failed"
)

// ImportStats cantidades efectivamente persistidas por tipo de entidad.
// Los contadores de entidades aún no soportadas quedan en cero.
type ImportStats struct {
	ProductsImported    int `json:"products_imported"`
	InventoryImported   int `json:"inventory_imported"`
	MovementsImported   int `json:"movements_imported"`
	ZonesImported       int `json:"zones_imported"`
	LocationsImported   int `json:"locations_imported"`
	OrdersImported      int `json:"orders_imported"`
	PickingsImported    int `json:"pickings_imported"`
	ReceptionsImported  int `json:"receptions_imported"`
	RestockingsImported int `json:"restockings_imported"`
	ReturnsImported     int `json:"returns_imported"`
}

// Total suma todos los contadores.
func (s ImportStats) Total() int {
	return s.ProductsImported + s.InventoryImported + s.MovementsImported +
		s.ZonesImported + s.LocationsImported + s.OrdersImported + s.PickingsImported +
		s.ReceptionsImported + s.RestockingsImported + s.ReturnsImported
}

// ImportResult resultado estructurado de executeImport. Nunca se propaga un error crudo.
type ImportResult struct {
	ImportID    string                   `json:"import_id"`
	Status      ImportStatus             `json:"status"`
	Stage       ImportStage              `json:"stage"`
	PluginID    string                   `json:"plugin_id"`
	WarehouseID string                   `json:"warehouse_id"`
	FilePath    string                   `json:"file_path,omitempty"`
	Stats       ImportStats              `json:"stats"`
	TotalRows   int                      `json:"total_rows"`
	DurationMs  int64                    `json:"duration_ms"`
	Errors      []plugin.ValidationIssue `json:"errors"`
	Warnings    []plugin.ValidationIssue `json:"warnings"`
	StartedAt   time.Time                `json:"started_at"`
	FinishedAt  time.Time                `json:"finished_at"`

	// ReferenceDate último día de los datos generados; permite repetir una demo con el mismo resultado.
	ReferenceDate *time.Time `json:"reference_date,omitempty"`
}

// ValidationReport resultado de validateImportFile.
type ValidationReport struct {
	Valid  bool                     `json:"valid"`
	Errors []plugin.ValidationIssue `json:"errors"`
}

// ImportRequest body para POST /api/imports.
type ImportRequest struct {
	FilePath    string `json:"file_path" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	PluginID    string `json:"plugin_id" validate:"required"`
}

// ValidateImportRequest body para POST /api/imports/validate.
type ValidateImportRequest struct {
	FilePath string `json:"file_path" validate:"required"`
	PluginID string `json:"plugin_id" validate:"required"`
}

// DemoImportRequest body para POST /api/imports/demo.
type DemoImportRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Seed        int64  `json:"seed"`
	EndDate     string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
