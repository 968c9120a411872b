package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bodega-wms/internal/app"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/plugins"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/spreadsheet"
)

type importOptions struct {
	warehouseID string
	pluginID    string
	quiet       bool
}

func newImportCmd(root *rootOptions) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <archivo>",
		Short: "Importar un archivo .xlsx/.xls/.csv en una bodega",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), root, true, func(_ *env, c *app.Container) error {
				res, err := c.ImportUC.ExecuteImport(cmd.Context(), dto.ImportRequest{
					FilePath:    args[0],
					WarehouseID: opts.warehouseID,
					PluginID:    opts.pluginID,
				}, progressPrinter(cmd.ErrOrStderr(), opts.quiet))
				if err != nil {
					return err
				}
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				if res.Status == dto.ImportStatusFailed {
					return fmt.Errorf("importación fallida: %s", firstMessage(res.Errors))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.warehouseID, "warehouse", "w", "", "ID de la bodega destino (requerido)")
	cmd.Flags().StringVarP(&opts.pluginID, "plugin", "p", plugins.GenericExcelID, "ID del plugin de importación")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "No mostrar el avance")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

// newValidateCmd valida sin abrir la base de datos.
func newValidateCmd(root *rootOptions) *cobra.Command {
	var pluginID string

	cmd := &cobra.Command{
		Use:   "validate <archivo>",
		Short: "Validar un archivo de importación sin escribir en la base de datos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(root)
			if err != nil {
				return err
			}
			reg, err := importer.NewRegistry(plugins.Builtin()...)
			if err != nil {
				return err
			}
			p, ok := reg.Get(pluginID)
			if !ok {
				return withCode(exitUsage, fmt.Errorf("plugin %q no registrado", pluginID))
			}
			orch := importer.NewOrchestrator(spreadsheet.NewParser(e.cfg.Import.MaxFileMB), nil, e.log.Component("orchestrator"))
			report := orch.ValidateImportFile(cmd.Context(), args[0], p)
			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Valid {
				return fmt.Errorf("archivo inválido: %s", firstMessage(report.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pluginID, "plugin", "p", plugins.GenericExcelID, "ID del plugin de importación")
	return cmd
}

func newDemoCmd(root *rootOptions) *cobra.Command {
	var (
		warehouseID string
		seed        int64
		endDate     string
		create      bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Cargar datos sintéticos de demostración en una bodega",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), root, true, func(_ *env, c *app.Container) error {
				if create {
					ok, err := c.WarehouseUC.Exists(cmd.Context(), warehouseID)
					if err != nil {
						return err
					}
					if !ok {
						if _, err := c.WarehouseUC.Create(cmd.Context(), dto.CreateWarehouseRequest{
							ID: warehouseID, Code: warehouseID, Name: "Bodega demo " + warehouseID,
						}); err != nil {
							return err
						}
					}
				}
				res, err := c.ImportUC.GenerateDemo(cmd.Context(), dto.DemoImportRequest{WarehouseID: warehouseID, Seed: seed, EndDate: endDate},
					progressPrinter(cmd.ErrOrStderr(), quiet))
				if err != nil {
					return err
				}
				if err := printJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				if res.Status == dto.ImportStatusFailed {
					return fmt.Errorf("demo fallida: %s", firstMessage(res.Errors))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "ID de la bodega (requerido)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Semilla del generador (0 = derivada de la bodega)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Último día generado, YYYY-MM-DD (vacío = hoy); repite una demo anterior")
	cmd.Flags().BoolVar(&create, "create", false, "Crear la bodega si no existe")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "No mostrar el avance")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

// progressPrinter imprime una línea por cada avance de al menos 5 puntos.
func progressPrinter(w io.Writer, quiet bool) plugin.ProgressFunc {
	if quiet {
		return nil
	}
	last := -5.0
	return func(percent float64, message string) {
		if percent < 100 && percent-last < 5 {
			return
		}
		last = percent
		fmt.Fprintf(w, "[%3.0f%%] %s\n", percent, message)
	}
}

func firstMessage(issues []plugin.ValidationIssue) string {
	if len(issues) == 0 {
		return "sin detalle"
	}
	msgs := make([]string, 0, 1)
	msgs = append(msgs, issues[0].Message)
	if len(issues) > 1 {
		msgs = append(msgs, fmt.Sprintf("(+%d)", len(issues)-1))
	}
	return strings.Join(msgs, " ")
}
