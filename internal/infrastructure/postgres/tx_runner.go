package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
)

// Ensure TxRunner implements importer.ImportTxRunner.
var _ importer.ImportTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunImport inicia una transacción, ejecuta fn y hace Commit; si fn falla, Rollback.
// Los lectores solo ven el lote después del Commit.
func (r *TxRunner) RunImport(ctx context.Context, fn func(tx importer.ImportTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(importTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// importTx adapta pgx.Tx al puerto importer.ImportTx.
type importTx struct {
	tx pgx.Tx
}

// Savepoint abre una transacción anidada (SAVEPOINT). Si fn falla se hace ROLLBACK TO SAVEPOINT
// y la transacción externa sigue aceptando filas.
func (t importTx) Savepoint(ctx context.Context, fn func(repos importer.LoadRepos) error) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	defer func() { _ = sp.Rollback(ctx) }()

	repos := importer.LoadRepos{
		Products:  NewProductRepository(sp),
		Inventory: NewInventoryRepository(sp),
		Movements: NewMovementRepository(sp),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}
