// Package app arma el grafo de dependencias compartido por la API y el CLI.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bodega-wms/internal/application/analytics"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
	infrapdf "github.com/jhoicas/bodega-wms/internal/infrastructure/pdf"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/plugins"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/postgres"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/bodega-wms/pkg/config"
	"github.com/jhoicas/bodega-wms/pkg/logger"
)

// Container casos de uso listos para usar más el pool que los respalda.
type Container struct {
	Pool        *pgxpool.Pool
	Registry    *importer.Registry
	AnalysisUC  *usecase.AnalysisUseCase
	ImportUC    *usecase.ImportUseCase
	PluginUC    *usecase.PluginUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ReportUC    *usecase.ReportUseCase
}

// Options ajustes de arranque.
type Options struct {
	// Migrate aplica las migraciones embebidas antes de construir los casos de uso.
	Migrate bool
}

// Build abre el pool de PostgreSQL y conecta repositorios, importador y casos de uso.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger, opts Options) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if opts.Migrate {
		if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
			pool.Close()
			return nil, err
		}
	}

	registry, err := importer.NewRegistry(plugins.Builtin()...)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("registro de plugins: %w", err)
	}

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	loader := importer.NewLoader(txRunner, log.Component("loader"))
	parser := spreadsheet.NewParser(cfg.Import.MaxFileMB)
	orchestrator := importer.NewOrchestrator(parser, loader, log.Component("orchestrator"))

	// Un único candado por proceso: importaciones exclusivas, análisis concurrentes.
	gate := usecase.NewImportGate()
	analysisUC := usecase.NewAnalysisUseCase(analyticsRepo, warehouseRepo, gate, analytics.DeadStockParams{
		ThresholdDays:     cfg.Analysis.DeadStockDays,
		CriticalThreshold: cfg.Analysis.CriticalDays,
		WarningThreshold:  cfg.Analysis.WarningDays,
	})
	importUC := usecase.NewImportUseCase(registry, orchestrator, warehouseRepo, gate, log.Component("import")).
		WithDemo(usecase.DemoSource{PluginID: plugins.MockGeneratorID, Input: plugins.DemoInput})

	return &Container{
		Pool:        pool,
		Registry:    registry,
		AnalysisUC:  analysisUC,
		ImportUC:    importUC,
		PluginUC:    usecase.NewPluginUseCase(registry),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo),
		ReportUC:    usecase.NewReportUseCase(analysisUC, warehouseRepo, infrapdf.NewMarotoReportGenerator(cfg.App.Name)),
	}, nil
}

// Close libera el pool.
func (c *Container) Close() {
	if c != nil && c.Pool != nil {
		c.Pool.Close()
	}
}
