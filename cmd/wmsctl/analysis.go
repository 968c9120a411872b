package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bodega-wms/internal/app"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
)

func newABCCmd(root *rootOptions) *cobra.Command {
	var (
		req     dto.ABCAnalysisRequest
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "abc",
		Short: "Clasificación ABC por volumen de salidas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), root, false, func(_ *env, c *app.Container) error {
				if pdfPath != "" {
					pdf, err := c.ReportUC.ABCReport(cmd.Context(), req)
					if err != nil {
						return err
					}
					return writeReport(cmd, pdfPath, pdf)
				}
				res, err := c.AnalysisUC.PerformABCAnalysis(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().StringVarP(&req.WarehouseID, "warehouse", "w", "", "ID de la bodega (requerido)")
	cmd.Flags().StringVar(&req.DateFrom, "from", "", "Desde (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.DateTo, "to", "", "Hasta inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Exportar el reporte a este archivo PDF")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

func newDeadStockCmd(root *rootOptions) *cobra.Command {
	var (
		warehouseID string
		threshold   int
		critical    int
		warning     int
		pdfPath     string
	)

	cmd := &cobra.Command{
		Use:   "dead-stock",
		Short: "Inventario sin movimientos y capital inmovilizado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := dto.DeadStockAnalysisRequest{WarehouseID: warehouseID}
			// Solo los umbrales indicados explícitamente; el resto usa la configuración.
			if cmd.Flags().Changed("threshold") {
				req.ThresholdDays = &threshold
			}
			if cmd.Flags().Changed("critical") {
				req.CriticalThreshold = &critical
			}
			if cmd.Flags().Changed("warning") {
				req.WarningThreshold = &warning
			}
			return withContainer(cmd.Context(), root, false, func(_ *env, c *app.Container) error {
				if pdfPath != "" {
					pdf, err := c.ReportUC.DeadStockReport(cmd.Context(), req)
					if err != nil {
						return err
					}
					return writeReport(cmd, pdfPath, pdf)
				}
				res, err := c.AnalysisUC.PerformDeadStockAnalysis(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().StringVarP(&warehouseID, "warehouse", "w", "", "ID de la bodega (requerido)")
	cmd.Flags().IntVar(&threshold, "threshold", 90, "Días sin movimiento para considerar stock muerto")
	cmd.Flags().IntVar(&critical, "critical", 180, "Umbral crítico en días")
	cmd.Flags().IntVar(&warning, "warning", 90, "Umbral de advertencia en días")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Exportar el reporte a este archivo PDF")
	_ = cmd.MarkFlagRequired("warehouse")
	return cmd
}

func writeReport(cmd *cobra.Command, path string, pdf []byte) error {
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "reporte guardado en %s (%d bytes)\n", path, len(pdf))
	return nil
}
