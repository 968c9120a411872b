package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
	"github.com/rs/zerolog"
)

// ImportRunner ejecución de importaciones (implementado por importer.Orchestrator).
type ImportRunner interface {
	ValidateImportFile(ctx context.Context, filePath string, p plugin.Plugin) dto.ValidationReport
	ExecuteImport(ctx context.Context, filePath, warehouseID string, p plugin.Plugin, onProgress plugin.ProgressFunc) dto.ImportResult
	ExecuteRaw(ctx context.Context, raw *plugin.RawInput, warehouseID string, p plugin.Plugin, onProgress plugin.ProgressFunc) dto.ImportResult
}

var _ ImportRunner = (*importer.Orchestrator)(nil)

// DemoSource entrada sintética para el onboarding (plugin generador + parámetros por semilla).
type DemoSource struct {
	PluginID string
	Input    func(seed int64, endDate string) *plugin.RawInput
}

// ImportUseCase resuelve plugin y bodega, toma el candado de escritura y delega en el orquestador.
// Los errores de precondición (plugin o bodega inexistente, importación en curso) se devuelven
// como error; lo que ocurre dentro de la importación queda en el ImportResult.
type ImportUseCase struct {
	registry   *importer.Registry
	runner     ImportRunner
	warehouses repository.WarehouseRepository
	gate       *ImportGate
	demo       *DemoSource
	log        zerolog.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	registry *importer.Registry,
	runner ImportRunner,
	warehouses repository.WarehouseRepository,
	gate *ImportGate,
	log zerolog.Logger,
) *ImportUseCase {
	if gate == nil {
		gate = NewImportGate()
	}
	return &ImportUseCase{
		registry:   registry,
		runner:     runner,
		warehouses: warehouses,
		gate:       gate,
		log:        log,
	}
}

// WithDemo habilita GenerateDemo.
func (uc *ImportUseCase) WithDemo(src DemoSource) *ImportUseCase {
	uc.demo = &src
	return uc
}

// ValidateImportFile valida el archivo con el plugin indicado sin tocar la base de datos.
func (uc *ImportUseCase) ValidateImportFile(ctx context.Context, req dto.ValidateImportRequest) (*dto.ValidationReport, error) {
	p, err := uc.plugin(req.PluginID)
	if err != nil {
		return nil, err
	}
	report := uc.runner.ValidateImportFile(ctx, req.FilePath, p)
	return &report, nil
}

// ExecuteImport importa el archivo en la bodega. Una segunda importación concurrente
// falla de inmediato con domain.ErrImportInProgress.
func (uc *ImportUseCase) ExecuteImport(ctx context.Context, req dto.ImportRequest, onProgress plugin.ProgressFunc) (*dto.ImportResult, error) {
	p, err := uc.plugin(req.PluginID)
	if err != nil {
		return nil, err
	}
	release, ok := uc.gate.tryWrite()
	if !ok {
		return nil, domain.ErrImportInProgress
	}
	defer release()

	if err := requireWarehouse(ctx, uc.warehouses, req.WarehouseID); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("plugin", req.PluginID).
		Str("warehouse_id", req.WarehouseID).
		Str("file", req.FilePath).
		Msg("importación iniciada")
	res := uc.runner.ExecuteImport(ctx, req.FilePath, req.WarehouseID, p, onProgress)
	uc.logResult(res)
	return &res, nil
}

// GenerateDemo carga datos sintéticos en la bodega usando el mismo camino transform + load.
func (uc *ImportUseCase) GenerateDemo(ctx context.Context, req dto.DemoImportRequest, onProgress plugin.ProgressFunc) (*dto.ImportResult, error) {
	if uc.demo == nil || uc.demo.Input == nil {
		return nil, fmt.Errorf("demo deshabilitada: %w", domain.ErrPluginNotFound)
	}
	if req.EndDate != "" {
		if _, err := time.Parse(dateLayout, req.EndDate); err != nil {
			return nil, fmt.Errorf("end_date %q debe ser YYYY-MM-DD: %w", req.EndDate, domain.ErrInvalidInput)
		}
	}
	p, err := uc.plugin(uc.demo.PluginID)
	if err != nil {
		return nil, err
	}
	release, ok := uc.gate.tryWrite()
	if !ok {
		return nil, domain.ErrImportInProgress
	}
	defer release()

	if err := requireWarehouse(ctx, uc.warehouses, req.WarehouseID); err != nil {
		return nil, err
	}

	uc.log.Info().Str("warehouse_id", req.WarehouseID).Int64("seed", req.Seed).Str("end_date", req.EndDate).
		Msg("generando datos de demostración")
	res := uc.runner.ExecuteRaw(ctx, uc.demo.Input(req.Seed, req.EndDate), req.WarehouseID, p, onProgress)
	uc.logResult(res)
	return &res, nil
}

func (uc *ImportUseCase) plugin(id string) (plugin.Plugin, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: plugin_id es obligatorio", domain.ErrInvalidInput)
	}
	p, ok := uc.registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("plugin %q: %w", id, domain.ErrPluginNotFound)
	}
	return p, nil
}

func (uc *ImportUseCase) logResult(res dto.ImportResult) {
	if res.Status == dto.ImportStatusFailed {
		ev := uc.log.Warn().Str("import_id", res.ImportID).Str("stage", string(res.Stage))
		if len(res.Errors) > 0 {
			ev = ev.Str("error", res.Errors[0].Message)
		}
		ev.Int64("duration_ms", res.DurationMs).Msg("importación fallida")
		return
	}
	uc.log.Info().
		Str("import_id", res.ImportID).
		Int("rows", res.TotalRows).
		Int("imported", res.Stats.Total()).
		Int("warnings", len(res.Warnings)).
		Int64("duration_ms", res.DurationMs).
		Msg("importación completada")
}
