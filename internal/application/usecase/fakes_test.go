package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// fakeWarehouseRepo repositorio de bodegas en memoria.
type fakeWarehouseRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Warehouse
	err   error
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{items: map[string]*entity.Warehouse{}}
	for _, id := range ids {
		r.items[id] = &entity.Warehouse{ID: id, Code: id, Name: "Bodega " + id, Status: entity.WarehouseStatusActive}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Code == w.Code || existing.ID == w.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], r.err
}

func (r *fakeWarehouseRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeWarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Warehouse, 0, len(r.items))
	for _, w := range r.items {
		out = append(out, w)
	}
	return out, r.err
}

// fakeAnalyticsRepo devuelve filas fijas.
type fakeAnalyticsRepo struct {
	totals       []repository.ProductMovementTotal
	candidates   []repository.DeadStockCandidate
	gotFrom      *time.Time
	gotTo        *time.Time
	gotThreshold int
}

func (f *fakeAnalyticsRepo) GetProductMovementTotals(_ context.Context, _, _ string, from, to *time.Time) ([]repository.ProductMovementTotal, error) {
	f.gotFrom, f.gotTo = from, to
	return f.totals, nil
}

func (f *fakeAnalyticsRepo) GetDeadStock(_ context.Context, _ string, thresholdDays int, _ time.Time) ([]repository.DeadStockCandidate, error) {
	f.gotThreshold = thresholdDays
	return f.candidates, nil
}

// fakeRunner registra las llamadas; si block no es nil espera a que se cierre antes de responder.
type fakeRunner struct {
	mu      sync.Mutex
	calls   int
	raws    []*plugin.RawInput
	started chan struct{}
	block   chan struct{}
	result  dto.ImportResult
}

func (f *fakeRunner) ValidateImportFile(_ context.Context, filePath string, _ plugin.Plugin) dto.ValidationReport {
	if filePath == "" {
		return dto.ValidationReport{Valid: false, Errors: []plugin.ValidationIssue{plugin.ErrorIssue("sin archivo", "")}}
	}
	return dto.ValidationReport{Valid: true, Errors: []plugin.ValidationIssue{}}
}

func (f *fakeRunner) ExecuteImport(_ context.Context, _, warehouseID string, p plugin.Plugin, _ plugin.ProgressFunc) dto.ImportResult {
	return f.run(nil, warehouseID, p)
}

func (f *fakeRunner) ExecuteRaw(_ context.Context, raw *plugin.RawInput, warehouseID string, p plugin.Plugin, _ plugin.ProgressFunc) dto.ImportResult {
	return f.run(raw, warehouseID, p)
}

func (f *fakeRunner) run(raw *plugin.RawInput, warehouseID string, p plugin.Plugin) dto.ImportResult {
	f.mu.Lock()
	f.calls++
	f.raws = append(f.raws, raw)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	res := f.result
	res.WarehouseID = warehouseID
	res.PluginID = p.Metadata().ID
	if res.Status == "" {
		res.Status = dto.ImportStatusSuccess
		res.Stage = dto.StageDone
	}
	return res
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// stubPlugin plugin mínimo para poblar el registro.
type stubPlugin struct{ id string }

func (p stubPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{ID: p.id, Name: "Stub " + p.id, Version: "1.0.0", SupportedFormats: []string{plugin.FormatCSV}}
}

func (stubPlugin) Validate(*plugin.RawInput) []plugin.ValidationIssue { return nil }

func (stubPlugin) Transform(plugin.TransformContext, *plugin.RawInput) (*entity.NormalizedData, error) {
	return &entity.NormalizedData{}, nil
}
