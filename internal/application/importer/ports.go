package importer

import (
	"context"

	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// LoadRepos repositorios de escritura atados a la transacción de importación.
type LoadRepos struct {
	Products  repository.ProductRepository
	Inventory repository.InventoryRepository
	Movements repository.MovementRepository
}

// ImportTx transacción de un lote de importación.
type ImportTx interface {
	// Savepoint ejecuta fn aislada: si devuelve error solo se revierte lo que hizo fn
	// y la transacción externa sigue utilizable.
	Savepoint(ctx context.Context, fn func(repos LoadRepos) error) error
}

// ImportTxRunner abre una transacción por lote y hace Commit si fn no falla.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(tx ImportTx) error) error
}

// FileParser lee un archivo tabular (xlsx, xls, csv) hacia RawInput.
type FileParser interface {
	Parse(ctx context.Context, path, format string) (*plugin.RawInput, error)
}
