package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bodega-wms/internal/app"
	"github.com/jhoicas/bodega-wms/pkg/config"
	"github.com/jhoicas/bodega-wms/pkg/logger"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "wmsctl",
		Short:         "Herramientas de línea de comandos de bodega-wms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Nivel de log (default: LOG_LEVEL o warn)")

	cmd.AddCommand(
		newImportCmd(&opts),
		newValidateCmd(&opts),
		newDemoCmd(&opts),
		newABCCmd(&opts),
		newDeadStockCmd(&opts),
		newPluginsCmd(),
		newWarehousesCmd(&opts),
		newTokenCmd(),
		newMigrateCmd(&opts),
	)
	return cmd
}

// env configuración y logger del proceso. Los logs van a stderr; stdout queda para resultados.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func loadEnv(opts *rootOptions) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, withCode(exitUsage, fmt.Errorf("configuración: %w", err))
	}
	level := opts.logLevel
	if level == "" {
		level = "warn"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Service: "wmsctl"})
	return &env{cfg: cfg, log: log}, nil
}

// withContainer abre la base de datos, ejecuta fn y cierra el pool.
func withContainer(ctx context.Context, opts *rootOptions, migrate bool, fn func(*env, *app.Container) error) error {
	e, err := loadEnv(opts)
	if err != nil {
		return err
	}
	c, err := app.Build(ctx, e.cfg, e.log, app.Options{Migrate: migrate})
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(e, c)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
