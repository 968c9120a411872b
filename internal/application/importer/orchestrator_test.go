package importer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

type fixture struct {
	store  *memStore
	parser *stubParser
	loader *spyLoader
	orch   *importer.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	parser := &stubParser{raw: &plugin.RawInput{Sheets: []plugin.Sheet{
		{Name: "productos", Rows: make([]plugin.Row, 2)},
		{Name: "movimientos", Rows: make([]plugin.Row, 3)},
	}}}
	loader := &spyLoader{inner: importer.NewLoader(store, zerolog.Nop())}
	return &fixture{
		store:  store,
		parser: parser,
		loader: loader,
		orch:   importer.NewOrchestrator(parser, loader, zerolog.Nop()),
	}
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("sku,name\n"), 0o600))
	return path
}

type progressLog struct {
	mu     sync.Mutex
	values []float64
}

func (p *progressLog) fn(percent float64, _ string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = append(p.values, percent)
}

func TestExecuteImport_ArchivoInexistente(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(t.TempDir(), "no-existe.xlsx")

	res := f.orch.ExecuteImport(context.Background(), missing, "WH-1", newStubPlugin("p"), nil)

	assert.Equal(t, dto.ImportStatusFailed, res.Status)
	assert.Equal(t, dto.StageFailed, res.Stage)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, missing)
	assert.False(t, res.Errors[0].CanContinue)
	assert.False(t, f.loader.called, "nunca se toca el loader")
	assert.Zero(t, f.parser.calls)
	assert.Equal(t, dto.ImportStats{}, res.Stats)
}

func TestExecuteImport_FormatoNoSoportado(t *testing.T) {
	f := newFixture(t)
	res := f.orch.ExecuteImport(context.Background(), tempFile(t, "datos.json"), "WH-1", newStubPlugin("p"), nil)

	assert.Equal(t, dto.ImportStatusFailed, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "json")
	assert.False(t, f.loader.called)
}

func TestExecuteImport_Exito(t *testing.T) {
	f := newFixture(t)
	p := newStubPlugin("generic")
	p.data = sampleData()
	p.data.Metadata.WarehouseID = ""
	p.progress = []float64{0, 50, 30, 100}
	p.issues = []plugin.ValidationIssue{plugin.WarningIssue("columna desconocida", "")}
	progress := &progressLog{}

	res := f.orch.ExecuteImport(context.Background(), tempFile(t, "datos.CSV"), "WH-1", p, progress.fn)

	require.Equal(t, dto.ImportStatusSuccess, res.Status, res.Errors)
	assert.Equal(t, dto.StageDone, res.Stage)
	assert.Empty(t, res.Errors)
	assert.NotNil(t, res.Errors)
	assert.Len(t, res.Warnings, 1)
	assert.Equal(t, 5, res.TotalRows)
	assert.Equal(t, 2, res.Stats.ProductsImported)
	assert.Equal(t, 2, res.Stats.InventoryImported)
	assert.Equal(t, 3, res.Stats.MovementsImported)
	assert.GreaterOrEqual(t, res.DurationMs, int64(0))
	assert.NotEmpty(t, res.ImportID)
	assert.Equal(t, "generic", res.PluginID)

	require.NotEmpty(t, progress.values)
	for i := 1; i < len(progress.values); i++ {
		assert.GreaterOrEqual(t, progress.values[i], progress.values[i-1], "progreso no decreciente")
	}
	assert.Equal(t, float64(100), progress.values[len(progress.values)-1])
	assert.Contains(t, progress.values, float64(10))
	assert.Contains(t, progress.values, float64(50), "50% del plugin se reescala a 50% global")
	assert.NotContains(t, progress.values, float64(38), "el retroceso del plugin se descarta")
}

func TestExecuteImport_ErrorDeValidacionBloquea(t *testing.T) {
	f := newFixture(t)
	p := newStubPlugin("generic")
	p.issues = []plugin.ValidationIssue{
		plugin.ErrorIssue("falta la columna sku", "agregue la columna"),
		plugin.WarningIssue("hoja vacía", ""),
	}

	res := f.orch.ExecuteImport(context.Background(), tempFile(t, "datos.xlsx"), "WH-1", p, nil)

	assert.Equal(t, dto.ImportStatusFailed, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "falta la columna sku", res.Errors[0].Message)
	assert.Len(t, res.Warnings, 1)
	assert.False(t, p.transformed)
	assert.False(t, f.loader.called)
}

func TestExecuteImport_FallosDelPluginYDelLoader(t *testing.T) {
	cases := map[string]func(p *stubPlugin, f *fixture){
		"error en transform": func(p *stubPlugin, _ *fixture) { p.err = errors.New("columna corrupta") },
		"panic en transform": func(p *stubPlugin, _ *fixture) { p.panicOn = "transform" },
		"panic en validate":  func(p *stubPlugin, _ *fixture) { p.panicOn = "validate" },
		"datos nulos":        func(p *stubPlugin, _ *fixture) { p.data = nil },
		"error en la carga":  func(_ *stubPlugin, f *fixture) { f.loader.err = errors.New("disco lleno") },
		"error en el parseo": func(_ *stubPlugin, f *fixture) { f.parser.err = errors.New("zip inválido") },
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			p := newStubPlugin("generic")
			p.data = sampleData()
			setup(p, f)

			var res dto.ImportResult
			require.NotPanics(t, func() {
				res = f.orch.ExecuteImport(context.Background(), tempFile(t, "datos.xlsx"), "WH-1", p, nil)
			})
			assert.Equal(t, dto.ImportStatusFailed, res.Status)
			assert.Equal(t, dto.StageFailed, res.Stage)
			require.Len(t, res.Errors, 1)
			assert.NotEmpty(t, res.Errors[0].Message)
			assert.Equal(t, dto.ImportStats{}, res.Stats)
			assert.False(t, res.FinishedAt.Before(res.StartedAt))
		})
	}
}

func TestExecuteImport_ContextoCancelado(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.orch.ExecuteImport(ctx, tempFile(t, "datos.csv"), "WH-1", newStubPlugin("p"), nil)
	assert.Equal(t, dto.ImportStatusFailed, res.Status)
	assert.Contains(t, res.Errors[0].Message, "cancelada")
	assert.False(t, f.loader.called)
}

func TestExecuteImport_CallbackQuePanica(t *testing.T) {
	f := newFixture(t)
	p := newStubPlugin("generic")
	p.data = sampleData()

	res := f.orch.ExecuteImport(context.Background(), tempFile(t, "datos.csv"), "WH-1", p, func(float64, string) {
		panic("ui caída")
	})
	assert.Equal(t, dto.ImportStatusSuccess, res.Status)
}

func TestValidateImportFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rep := f.orch.ValidateImportFile(ctx, filepath.Join(t.TempDir(), "x.csv"), newStubPlugin("p"))
	assert.False(t, rep.Valid)
	require.Len(t, rep.Errors, 1)
	assert.False(t, rep.Errors[0].CanContinue)

	p := newStubPlugin("p")
	p.issues = []plugin.ValidationIssue{plugin.WarningIssue("columna extra", "")}
	rep = f.orch.ValidateImportFile(ctx, tempFile(t, "ok.xlsx"), p)
	assert.True(t, rep.Valid)
	assert.Len(t, rep.Errors, 1)

	p.issues = append(p.issues, plugin.ErrorIssue("sin hojas", ""))
	rep = f.orch.ValidateImportFile(ctx, tempFile(t, "bad.xlsx"), p)
	assert.False(t, rep.Valid)
	assert.Len(t, rep.Errors, 2)

	csvOnly := newStubPlugin("csv")
	csvOnly.meta.SupportedFormats = []string{plugin.FormatCSV}
	rep = f.orch.ValidateImportFile(ctx, tempFile(t, "book.xlsx"), csvOnly)
	assert.False(t, rep.Valid)
}

func TestExecuteRaw(t *testing.T) {
	f := newFixture(t)
	p := newStubPlugin("mock")
	p.data = sampleData()

	res := f.orch.ExecuteRaw(context.Background(), nil, "WH-1", p, nil)
	assert.Equal(t, dto.ImportStatusSuccess, res.Status)
	assert.Equal(t, 3, res.Stats.MovementsImported)
	assert.Zero(t, f.parser.calls)
	assert.Nil(t, res.ReferenceDate, "datos de archivo no traen fecha de referencia")

	generated := sampleData()
	generated.Metadata.ReferenceDate = day
	p.data = generated
	res = f.orch.ExecuteRaw(context.Background(), nil, "WH-1", p, nil)
	require.NotNil(t, res.ReferenceDate)
	assert.Equal(t, day, *res.ReferenceDate)
}
