package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// Bandas de progreso de executeImport.
const (
	progressPreflight      = 5
	progressParsed         = 10
	progressValidated      = 15
	progressTransformStart = 20
	progressTransformEnd   = 80
	progressLoadEnd        = 100

	maxRowErrorWarnings = 100
)

// SupportedFormats extensiones aceptadas por la importación.
var SupportedFormats = []string{plugin.FormatXLSX, plugin.FormatXLS, plugin.FormatCSV}

// DataLoader puerto de escritura usado por el orquestador (implementado por Loader).
type DataLoader interface {
	Load(ctx context.Context, data *entity.NormalizedData, progress func(percent float64, message string)) (LoadReport, error)
}

// Orchestrator coordina validating → parsing → transforming → loading → done.
// Nunca devuelve errores crudos: todo termina en un ImportResult o ValidationReport.
type Orchestrator struct {
	parser FileParser
	loader DataLoader
	log    zerolog.Logger
	now    func() time.Time
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(parser FileParser, loader DataLoader, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{parser: parser, loader: loader, log: log, now: time.Now}
}

// FormatOf devuelve la extensión en minúsculas y sin punto.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ValidateImportFile chequea existencia, extensión y parseo del archivo y luego delega en plugin.Validate.
func (o *Orchestrator) ValidateImportFile(ctx context.Context, filePath string, p plugin.Plugin) dto.ValidationReport {
	raw, err := o.preflight(ctx, filePath, p)
	if err != nil {
		return dto.ValidationReport{Valid: false, Errors: []plugin.ValidationIssue{fileIssue(err, filePath)}}
	}
	issues, err := safeValidate(p, raw)
	if err != nil {
		return dto.ValidationReport{Valid: false, Errors: []plugin.ValidationIssue{plugin.ErrorIssue(err.Error(), "")}}
	}
	if issues == nil {
		issues = []plugin.ValidationIssue{}
	}
	return dto.ValidationReport{Valid: !plugin.HasErrors(issues), Errors: issues}
}

// ExecuteImport ejecuta la importación completa de un archivo hacia la bodega.
func (o *Orchestrator) ExecuteImport(ctx context.Context, filePath, warehouseID string, p plugin.Plugin, onProgress plugin.ProgressFunc) dto.ImportResult {
	res := o.newResult(warehouseID, p)
	res.FilePath = filePath
	progress := newProgressReporter(onProgress)
	progress.report(0, "validando archivo")

	o.log.Info().Str("import_id", res.ImportID).Str("plugin", res.PluginID).
		Str("warehouse", warehouseID).Str("file", filePath).Msg("importación iniciada")

	if p == nil {
		return o.fail(res, fmt.Errorf("plugin nulo: %w", domain.ErrPluginNotFound))
	}
	if err := checkFile(filePath, p); err != nil {
		return o.failIssue(res, fileIssue(err, filePath))
	}
	progress.report(progressPreflight, "archivo válido")

	res.Stage = dto.StageParsing
	if err := ctx.Err(); err != nil {
		return o.fail(res, canceled(err))
	}
	raw, err := o.parse(ctx, filePath)
	if err != nil {
		return o.failIssue(res, fileIssue(err, filePath))
	}
	res.TotalRows = raw.TotalRows()
	progress.report(progressParsed, fmt.Sprintf("%d filas leídas", res.TotalRows))

	return o.run(ctx, res, p, raw, progress)
}

// ExecuteRaw ejecuta transformación y carga sobre una entrada ya construida (sin archivo).
// Lo usa la generación de datos de demostración.
func (o *Orchestrator) ExecuteRaw(ctx context.Context, raw *plugin.RawInput, warehouseID string, p plugin.Plugin, onProgress plugin.ProgressFunc) dto.ImportResult {
	res := o.newResult(warehouseID, p)
	progress := newProgressReporter(onProgress)
	if p == nil {
		return o.fail(res, fmt.Errorf("plugin nulo: %w", domain.ErrPluginNotFound))
	}
	if raw == nil {
		raw = &plugin.RawInput{}
	}
	res.Stage = dto.StageParsing
	res.TotalRows = raw.TotalRows()
	progress.report(progressParsed, "entrada preparada")
	return o.run(ctx, res, p, raw, progress)
}

func (o *Orchestrator) run(ctx context.Context, res dto.ImportResult, p plugin.Plugin, raw *plugin.RawInput, progress *progressReporter) dto.ImportResult {
	if err := ctx.Err(); err != nil {
		return o.fail(res, canceled(err))
	}
	issues, err := safeValidate(p, raw)
	if err != nil {
		return o.fail(res, err)
	}
	blocking, warnings := plugin.Split(issues)
	res.Warnings = append(res.Warnings, warnings...)
	if len(blocking) > 0 {
		res.Stage = dto.StageFailed
		res.Status = dto.ImportStatusFailed
		res.Errors = blocking
		return o.finish(res)
	}
	progress.report(progressValidated, "datos validados")

	res.Stage = dto.StageTransforming
	if err := ctx.Err(); err != nil {
		return o.fail(res, canceled(err))
	}
	tc := plugin.TransformContext{
		Ctx:         ctx,
		WarehouseID: res.WarehouseID,
		PluginID:    res.PluginID,
		OnProgress:  progress.band(progressTransformStart, progressTransformEnd),
	}
	progress.report(progressTransformStart, "transformando datos")
	data, err := safeTransform(p, tc, raw)
	if err != nil {
		return o.fail(res, err)
	}
	if data == nil {
		return o.fail(res, fmt.Errorf("el plugin %s no devolvió datos", res.PluginID))
	}
	if data.Metadata.WarehouseID == "" {
		data.Metadata.WarehouseID = res.WarehouseID
	}
	if data.Metadata.PluginID == "" {
		data.Metadata.PluginID = res.PluginID
	}
	if data.Metadata.SourceFile == "" {
		data.Metadata.SourceFile = raw.FileName
	}
	if ref := data.Metadata.ReferenceDate; !ref.IsZero() {
		res.ReferenceDate = &ref
	}
	progress.report(progressTransformEnd, "datos transformados")

	res.Stage = dto.StageLoading
	if err := ctx.Err(); err != nil {
		return o.fail(res, canceled(err))
	}
	rep, err := o.loader.Load(ctx, data, progress.band(progressTransformEnd, progressLoadEnd))
	if err != nil {
		return o.fail(res, err)
	}
	res.Stats = rep.Stats
	res.Warnings = append(res.Warnings, rowErrorWarnings(rep.RowErrors)...)

	res.Stage = dto.StageDone
	res.Status = dto.ImportStatusSuccess
	progress.report(progressLoadEnd, "importación completada")
	return o.finish(res)
}

func (o *Orchestrator) preflight(ctx context.Context, filePath string, p plugin.Plugin) (*plugin.RawInput, error) {
	if p == nil {
		return nil, fmt.Errorf("plugin nulo: %w", domain.ErrPluginNotFound)
	}
	if err := checkFile(filePath, p); err != nil {
		return nil, err
	}
	return o.parse(ctx, filePath)
}

func (o *Orchestrator) parse(ctx context.Context, filePath string) (*plugin.RawInput, error) {
	raw, err := o.parser.Parse(ctx, filePath, FormatOf(filePath))
	if err != nil {
		if errors.Is(err, domain.ErrParseFailure) || errors.Is(err, domain.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: archivo sin contenido", domain.ErrParseFailure)
	}
	return raw, nil
}

func (o *Orchestrator) newResult(warehouseID string, p plugin.Plugin) dto.ImportResult {
	res := dto.ImportResult{
		ImportID:    uuid.NewString(),
		Status:      dto.ImportStatusFailed,
		Stage:       dto.StageValidating,
		WarehouseID: warehouseID,
		Errors:      []plugin.ValidationIssue{},
		Warnings:    []plugin.ValidationIssue{},
		StartedAt:   o.now(),
	}
	if p != nil {
		res.PluginID = p.Metadata().ID
	}
	return res
}

func (o *Orchestrator) fail(res dto.ImportResult, err error) dto.ImportResult {
	return o.failIssue(res, plugin.ErrorIssue(err.Error(), suggestionFor(res.Stage)))
}

func (o *Orchestrator) failIssue(res dto.ImportResult, issue plugin.ValidationIssue) dto.ImportResult {
	o.log.Error().Str("import_id", res.ImportID).Str("stage", string(res.Stage)).
		Str("error", issue.Message).Msg("importación fallida")
	res.Stage = dto.StageFailed
	res.Status = dto.ImportStatusFailed
	res.Stats = dto.ImportStats{}
	res.Errors = []plugin.ValidationIssue{issue}
	return o.finish(res)
}

func (o *Orchestrator) finish(res dto.ImportResult) dto.ImportResult {
	res.FinishedAt = o.now()
	res.DurationMs = res.FinishedAt.Sub(res.StartedAt).Milliseconds()
	if res.Status == dto.ImportStatusSuccess {
		o.log.Info().Str("import_id", res.ImportID).
			Int("products", res.Stats.ProductsImported).
			Int("inventory", res.Stats.InventoryImported).
			Int("movements", res.Stats.MovementsImported).
			Int("warnings", len(res.Warnings)).
			Int64("duration_ms", res.DurationMs).
			Msg("importación completada")
	}
	return res
}

// checkFile valida existencia y extensión sin leer el contenido.
func checkFile(filePath string, p plugin.Plugin) error {
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%s: %w", filePath, domain.ErrFileNotFound)
	}
	format := FormatOf(filePath)
	supported := false
	for _, f := range SupportedFormats {
		if f == format {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("extensión %q: %w", format, domain.ErrUnsupportedFormat)
	}
	if !p.Metadata().Supports(format) {
		return fmt.Errorf("el plugin %s no acepta %q: %w", p.Metadata().ID, format, domain.ErrUnsupportedFormat)
	}
	return nil
}

func fileIssue(err error, filePath string) plugin.ValidationIssue {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return plugin.ErrorIssue(fmt.Sprintf("no existe el archivo %s", filePath), "Verifique la ruta del archivo")
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return plugin.ErrorIssue(err.Error(), "Use un archivo .xlsx, .xls o .csv")
	case errors.Is(err, domain.ErrParseFailure):
		return plugin.ErrorIssue(err.Error(), "Abra el archivo y guárdelo de nuevo en un formato soportado")
	default:
		return plugin.ErrorIssue(err.Error(), "")
	}
}

func suggestionFor(stage dto.ImportStage) string {
	switch stage {
	case dto.StageTransforming:
		return "Revise el contenido del archivo con la validación previa"
	case dto.StageLoading:
		return "Reintente la importación; los lotes ya confirmados no se revierten"
	}
	return ""
}

func rowErrorWarnings(rowErrs []RowError) []plugin.ValidationIssue {
	var out []plugin.ValidationIssue
	for i, re := range rowErrs {
		if i == maxRowErrorWarnings {
			out = append(out, plugin.WarningIssue(
				fmt.Sprintf("%d filas más descartadas en la carga", len(rowErrs)-maxRowErrorWarnings), ""))
			break
		}
		out = append(out, plugin.WarningIssue("fila descartada: "+re.Error(), ""))
	}
	return out
}

func canceled(err error) error {
	return fmt.Errorf("importación cancelada: %w", err)
}

func safeValidate(p plugin.Plugin, raw *plugin.RawInput) (issues []plugin.ValidationIssue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en validación del plugin %s: %v", p.Metadata().ID, r)
		}
	}()
	return p.Validate(raw), nil
}

func safeTransform(p plugin.Plugin, tc plugin.TransformContext, raw *plugin.RawInput) (data *entity.NormalizedData, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en transformación del plugin %s: %v", p.Metadata().ID, r)
		}
	}()
	return p.Transform(tc, raw)
}
