package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
)

// Entidades reportadas en RowError.
const (
	EntityProduct   = "product"
	EntityInventory = "inventory"
	EntityMovement  = "movement"
)

// RowError fila descartada durante la carga.
type RowError struct {
	Entity string
	Index  int // posición dentro de la colección normalizada (0-based)
	ID     string
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s #%d (%s): %v", e.Entity, e.Index, e.ID, e.Err)
}

// LoadReport resultado de una carga: lo que efectivamente quedó persistido y las filas descartadas.
type LoadReport struct {
	Stats     dto.ImportStats
	RowErrors []RowError
}

var _ DataLoader = (*Loader)(nil)

// Loader único camino de escritura desde la importación hacia la base de datos.
// Cada colección se escribe en una transacción; una fila inválida se descarta sin abortar el lote.
type Loader struct {
	txRunner ImportTxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewLoader construye el loader.
func NewLoader(txRunner ImportTxRunner, log zerolog.Logger) *Loader {
	return &Loader{txRunner: txRunner, log: log, now: time.Now}
}

// InsertProducts hace upsert por ID y devuelve cuántos productos quedaron persistidos.
func (l *Loader) InsertProducts(ctx context.Context, products []entity.Product) (int, error) {
	n, _, err := l.insertProducts(ctx, products)
	return n, err
}

// InsertInventory hace upsert por (bodega, producto, ubicación) y devuelve cuántos registros quedaron.
func (l *Loader) InsertInventory(ctx context.Context, warehouseID string, records []entity.InventoryRecord) (int, error) {
	n, _, err := l.insertInventory(ctx, warehouseID, records)
	return n, err
}

// InsertMovements inserta siempre (nunca reemplaza) y devuelve cuántos movimientos quedaron.
func (l *Loader) InsertMovements(ctx context.Context, movements []entity.Movement) (int, error) {
	n, _, err := l.insertMovements(ctx, movements)
	return n, err
}

// LoadToDatabase persiste productos, luego inventario, luego movimientos, omitiendo colecciones vacías.
func (l *Loader) LoadToDatabase(ctx context.Context, data *entity.NormalizedData) (dto.ImportStats, error) {
	rep, err := l.Load(ctx, data, nil)
	return rep.Stats, err
}

// Load igual que LoadToDatabase pero devuelve las filas descartadas y reporta avance (0-100).
func (l *Loader) Load(ctx context.Context, data *entity.NormalizedData, progress func(percent float64, message string)) (LoadReport, error) {
	var rep LoadReport
	if data == nil {
		return rep, fmt.Errorf("datos normalizados nulos: %w", domain.ErrInvalidInput)
	}
	report := func(p float64, msg string) {
		if progress != nil {
			progress(p, msg)
		}
	}
	warehouseID := data.Metadata.WarehouseID

	if len(data.Products) > 0 {
		n, rowErrs, err := l.insertProducts(ctx, data.Products)
		if err != nil {
			return rep, fmt.Errorf("cargar productos: %w", err)
		}
		rep.Stats.ProductsImported = n
		rep.RowErrors = append(rep.RowErrors, rowErrs...)
	}
	report(33, fmt.Sprintf("%d productos cargados", rep.Stats.ProductsImported))

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if len(data.Inventory) > 0 {
		n, rowErrs, err := l.insertInventory(ctx, warehouseID, data.Inventory)
		if err != nil {
			return rep, fmt.Errorf("cargar inventario: %w", err)
		}
		rep.Stats.InventoryImported = n
		rep.RowErrors = append(rep.RowErrors, rowErrs...)
	}
	report(66, fmt.Sprintf("%d registros de inventario cargados", rep.Stats.InventoryImported))

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if len(data.Movements) > 0 {
		movements := data.Movements
		if warehouseID != "" {
			movements = make([]entity.Movement, len(data.Movements))
			copy(movements, data.Movements)
			for i := range movements {
				if movements[i].WarehouseID == "" {
					movements[i].WarehouseID = warehouseID
				}
			}
		}
		n, rowErrs, err := l.insertMovements(ctx, movements)
		if err != nil {
			return rep, fmt.Errorf("cargar movimientos: %w", err)
		}
		rep.Stats.MovementsImported = n
		rep.RowErrors = append(rep.RowErrors, rowErrs...)
	}
	report(100, fmt.Sprintf("%d movimientos cargados", rep.Stats.MovementsImported))

	l.logSkippedKinds(data)
	return rep, nil
}

func (l *Loader) insertProducts(ctx context.Context, products []entity.Product) (int, []RowError, error) {
	var (
		count   int
		rowErrs []RowError
	)
	now := l.now()
	err := l.txRunner.RunImport(ctx, func(tx ImportTx) error {
		for i := range products {
			p := products[i]
			if p.CreatedAt.IsZero() {
				p.CreatedAt = now
			}
			p.UpdatedAt = now
			if p.Status == "" {
				p.Status = entity.ProductStatusActive
			}
			err := p.Validate()
			if err == nil {
				err = tx.Savepoint(ctx, func(repos LoadRepos) error {
					return repos.Products.Upsert(ctx, &p)
				})
			}
			if err != nil {
				rowErrs = append(rowErrs, l.rowFailed(EntityProduct, i, p.ID, err))
				continue
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return count, rowErrs, nil
}

func (l *Loader) insertInventory(ctx context.Context, warehouseID string, records []entity.InventoryRecord) (int, []RowError, error) {
	var (
		count   int
		rowErrs []RowError
	)
	now := l.now()
	err := l.txRunner.RunImport(ctx, func(tx ImportTx) error {
		for i := range records {
			rec := records[i]
			if warehouseID != "" {
				rec.WarehouseID = warehouseID
			}
			rec.LocationID = rec.Location()
			rec.ID = entity.InventoryRecordID(rec.WarehouseID, rec.ProductID, rec.LocationID)
			if rec.UpdatedAt.IsZero() {
				rec.UpdatedAt = now
			}
			err := validateInventory(&rec)
			if err == nil {
				err = tx.Savepoint(ctx, func(repos LoadRepos) error {
					return repos.Inventory.Upsert(ctx, &rec)
				})
			}
			if err != nil {
				rowErrs = append(rowErrs, l.rowFailed(EntityInventory, i, rec.ID, err))
				continue
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return count, rowErrs, nil
}

func (l *Loader) insertMovements(ctx context.Context, movements []entity.Movement) (int, []RowError, error) {
	var (
		count   int
		rowErrs []RowError
	)
	now := l.now()
	err := l.txRunner.RunImport(ctx, func(tx ImportTx) error {
		seqs := movementSeqs{tx: tx, next: map[string]int{}}
		for i := range movements {
			m := movements[i]
			m.Type = strings.ToUpper(strings.TrimSpace(m.Type))
			m.CreatedAt = now
			err := validateMovement(&m)
			if err == nil {
				err = l.insertMovement(ctx, tx, &seqs, &m)
			}
			if err != nil {
				if errors.Is(err, errSequence) {
					return err
				}
				rowErrs = append(rowErrs, l.rowFailed(EntityMovement, i, m.ID, err))
				continue
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return count, rowErrs, nil
}

// maxMovementIDAttempts intentos de ID por movimiento antes de descartar la fila.
const maxMovementIDAttempts = 32

var errSequence = errors.New("secuencia de movimientos")

// insertMovement asigna el ID y lo inserta; si el ID ya existe (huecos dejados por filas
// descartadas en cargas anteriores) avanza la secuencia y reintenta.
func (l *Loader) insertMovement(ctx context.Context, tx ImportTx, seqs *movementSeqs, m *entity.Movement) error {
	var err error
	for range maxMovementIDAttempts {
		seq, serr := seqs.take(ctx, m.WarehouseID)
		if serr != nil {
			return serr
		}
		m.ID = movementID(m, seq)
		err = tx.Savepoint(ctx, func(repos LoadRepos) error {
			return repos.Movements.Insert(ctx, m)
		})
		if !errors.Is(err, domain.ErrDuplicate) {
			return err
		}
	}
	return err
}

// movementSeqs secuencia por bodega dentro de un lote. Arranca después de los movimientos
// ya registrados, así otra carga del mismo archivo (en otro proceso) no repite IDs.
type movementSeqs struct {
	tx   ImportTx
	next map[string]int
}

func (s *movementSeqs) take(ctx context.Context, warehouseID string) (int, error) {
	seq, ok := s.next[warehouseID]
	if !ok {
		err := s.tx.Savepoint(ctx, func(repos LoadRepos) error {
			n, err := repos.Movements.CountByWarehouse(ctx, warehouseID)
			seq = n
			return err
		})
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errSequence, err)
		}
	}
	seq++
	s.next[warehouseID] = seq
	return seq, nil
}

// movementID MOV-<bodega>-<producto>-<unixmilli>-<secuencia>.
func movementID(m *entity.Movement, seq int) string {
	return fmt.Sprintf("MOV-%s-%s-%d-%06d", m.WarehouseID, m.ProductID, m.Date.UnixMilli(), seq)
}

func (l *Loader) rowFailed(kind string, index int, id string, err error) RowError {
	l.log.Warn().
		Str("entity", kind).
		Int("row", index).
		Str("id", id).
		Err(err).
		Msg("fila descartada en la carga")
	return RowError{Entity: kind, Index: index, ID: id, Err: err}
}

func (l *Loader) logSkippedKinds(data *entity.NormalizedData) {
	skipped := map[string]int{
		"zones":       len(data.Zones),
		"locations":   len(data.Locations),
		"orders":      len(data.Orders),
		"pickings":    len(data.Pickings),
		"receptions":  len(data.Receptions),
		"restockings": len(data.Restockings),
		"returns":     len(data.Returns),
	}
	for kind, n := range skipped {
		if n > 0 {
			l.log.Info().Str("entity", kind).Int("count", n).Msg("entidad aún no soportada por el loader, se omite")
		}
	}
}

func validateInventory(r *entity.InventoryRecord) error {
	if strings.TrimSpace(r.WarehouseID) == "" {
		return fmt.Errorf("inventario sin bodega: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(r.ProductID) == "" {
		return fmt.Errorf("inventario sin producto: %w", domain.ErrInvalidInput)
	}
	if r.Quantity.IsNegative() {
		return fmt.Errorf("inventario %s con cantidad negativa: %w", r.ID, domain.ErrInvalidInput)
	}
	return nil
}

func validateMovement(m *entity.Movement) error {
	if strings.TrimSpace(m.WarehouseID) == "" || strings.TrimSpace(m.ProductID) == "" {
		return fmt.Errorf("movimiento sin bodega o producto: %w", domain.ErrInvalidInput)
	}
	if !entity.IsValidMovementType(m.Type) {
		return fmt.Errorf("tipo de movimiento %q desconocido: %w", m.Type, domain.ErrInvalidInput)
	}
	if m.Quantity.IsNegative() {
		return fmt.Errorf("movimiento con cantidad negativa: %w", domain.ErrInvalidInput)
	}
	if m.Date.IsZero() {
		return fmt.Errorf("movimiento sin fecha: %w", domain.ErrInvalidInput)
	}
	return nil
}
