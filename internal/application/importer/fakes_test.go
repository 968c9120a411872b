package importer_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// memStore almacén en memoria con semántica upsert / append.
type memStore struct {
	mu        sync.Mutex
	products  map[string]entity.Product
	inventory map[string]entity.InventoryRecord
	movements []entity.Movement
	order     []string // entidad de cada escritura, en orden
	commits   int
	failIDs   map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]entity.Product{},
		inventory: map[string]entity.InventoryRecord{},
		failIDs:   map[string]bool{},
	}
}

var errBoom = errors.New("fallo de escritura")

func (s *memStore) Upsert(_ context.Context, p *entity.Product) error {
	if s.failIDs[p.ID] {
		return errBoom
	}
	s.products[p.ID] = *p
	s.order = append(s.order, "product")
	return nil
}

type memInventory struct{ s *memStore }

func (m memInventory) Upsert(_ context.Context, r *entity.InventoryRecord) error {
	if m.s.failIDs[r.ProductID] {
		return errBoom
	}
	m.s.inventory[r.ID] = *r
	m.s.order = append(m.s.order, "inventory")
	return nil
}

func (m memInventory) ListByWarehouse(_ context.Context, warehouseID string) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, r := range m.s.inventory {
		if r.WarehouseID == warehouseID {
			r := r
			out = append(out, &r)
		}
	}
	return out, nil
}

type memMovements struct{ s *memStore }

func (m memMovements) Insert(_ context.Context, mv *entity.Movement) error {
	for _, existing := range m.s.movements {
		if existing.ID == mv.ID {
			return fmt.Errorf("id %s: %w", mv.ID, domain.ErrDuplicate)
		}
	}
	m.s.movements = append(m.s.movements, *mv)
	m.s.order = append(m.s.order, "movement")
	return nil
}

func (m memMovements) CountByWarehouse(_ context.Context, warehouseID string) (int, error) {
	n := 0
	for _, mv := range m.s.movements {
		if mv.WarehouseID == warehouseID {
			n++
		}
	}
	return n, nil
}

// memTx cada Savepoint ejecuta fn directamente: los repos en memoria escriben de forma atómica por fila.
type memTx struct{ s *memStore }

func (t memTx) Savepoint(_ context.Context, fn func(importer.LoadRepos) error) error {
	return fn(importer.LoadRepos{Products: t.s, Inventory: memInventory{t.s}, Movements: memMovements{t.s}})
}

func (s *memStore) RunImport(_ context.Context, fn func(importer.ImportTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(memTx{s}); err != nil {
		return err
	}
	s.commits++
	return nil
}

// stubPlugin plugin configurable para pruebas del orquestador.
type stubPlugin struct {
	meta        plugin.Metadata
	issues      []plugin.ValidationIssue
	data        *entity.NormalizedData
	err         error
	panicOn     string
	progress    []float64
	transformed bool
}

func newStubPlugin(id string) *stubPlugin {
	return &stubPlugin{meta: plugin.Metadata{
		ID:               id,
		Name:             "Stub " + id,
		Version:          "0.0.1",
		SupportedFormats: []string{plugin.FormatXLSX, plugin.FormatXLS, plugin.FormatCSV},
	}}
}

func (p *stubPlugin) Metadata() plugin.Metadata { return p.meta }

func (p *stubPlugin) Validate(_ *plugin.RawInput) []plugin.ValidationIssue {
	if p.panicOn == "validate" {
		panic("validate explotó")
	}
	return p.issues
}

func (p *stubPlugin) Transform(tc plugin.TransformContext, _ *plugin.RawInput) (*entity.NormalizedData, error) {
	p.transformed = true
	if p.panicOn == "transform" {
		panic("transform explotó")
	}
	for _, pct := range p.progress {
		tc.Progress(pct, "paso")
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.data, nil
}

// stubParser parser que devuelve una entrada fija.
type stubParser struct {
	raw   *plugin.RawInput
	err   error
	calls int
}

func (p *stubParser) Parse(_ context.Context, path, format string) (*plugin.RawInput, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	raw := *p.raw
	raw.FileName = path
	raw.Format = format
	return &raw, nil
}

// spyLoader registra si fue invocado.
type spyLoader struct {
	inner  importer.DataLoader
	called bool
	err    error
}

func (l *spyLoader) Load(ctx context.Context, data *entity.NormalizedData, progress func(float64, string)) (importer.LoadReport, error) {
	l.called = true
	if l.err != nil {
		return importer.LoadReport{}, l.err
	}
	return l.inner.Load(ctx, data, progress)
}
