// Package pdf genera los reportes imprimibles de los análisis de bodega.
//
// Layout de la página A4 (igual para ABC y stock muerto):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Bodega + fecha de análisis   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARÁMETROS: rango de fechas / umbrales                      │
//	│  RESUMEN: tarjetas por clase o severidad                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por producto                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorWarning  = &props.Color{Red: 204, Green: 120, Blue: 0}
)

var _ usecase.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: nonEmpty(author, "bodega-wms")}
}

// GenerateABCReport genera el PDF de la clasificación ABC.
func (g *MarotoReportGenerator) GenerateABCReport(
	ctx context.Context,
	warehouse *dto.WarehouseResponse,
	result *dto.ABCAnalysisResult,
) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("pdf: resultado ABC vacío")
	}
	m := maroto.New(g.config("Análisis ABC"))

	m.AddRows(headerRow("ANÁLISIS ABC (PARETO)", warehouse, result.AnalyzedAt.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(paramsRow(abcParams(result.Parameters)))
	m.AddRows(summaryRow(
		summaryCard("Clase A", fmt.Sprintf("%d productos", result.Summary.A.Count), percent(result.Summary.A.Contribution), colorPrimary),
		summaryCard("Clase B", fmt.Sprintf("%d productos", result.Summary.B.Count), percent(result.Summary.B.Contribution), colorPrimary),
		summaryCard("Clase C", fmt.Sprintf("%d productos", result.Summary.C.Count), percent(result.Summary.C.Contribution), colorPrimary),
		summaryCard("Total salidas", formatNumber(result.TotalQuantity, 0), "unidades", colorGray),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]column{
		{"#", 1, align.Center},
		{"SKU", 2, align.Left},
		{"Producto", 4, align.Left},
		{"Cantidad", 2, align.Right},
		{"% Acum.", 2, align.Right},
		{"Clase", 1, align.Center},
	}))
	if len(result.Products) == 0 {
		m.AddRows(emptyRow("Sin movimientos de salida en el período."))
	}
	for i, p := range result.Products {
		if i%200 == 0 && ctx.Err() != nil {
			return nil, fmt.Errorf("pdf: %w", ctx.Err())
		}
		m.AddRows(row.New(6).Add(
			cell(fmt.Sprintf("%d", i+1), 1, align.Center, nil),
			cell(p.SKU, 2, align.Left, nil),
			cell(truncate(p.Name, 48), 4, align.Left, nil),
			cell(formatNumber(p.Quantity, 0), 2, align.Right, nil),
			cell(percent(p.CumulativeContribution), 2, align.Right, nil),
			cell(string(p.Class), 1, align.Center, colorPrimary),
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow("Clase A: acumulado previo hasta 20%. Clase B: hasta 50%. Clase C: resto. Base: salidas (OUT)."))
	return generate(m)
}

// GenerateDeadStockReport genera el PDF de stock muerto con el capital inmovilizado.
func (g *MarotoReportGenerator) GenerateDeadStockReport(
	ctx context.Context,
	warehouse *dto.WarehouseResponse,
	result *dto.DeadStockAnalysisResult,
) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("pdf: resultado de stock muerto vacío")
	}
	m := maroto.New(g.config("Stock muerto"))

	m.AddRows(headerRow("STOCK MUERTO", warehouse, result.AnalyzedAt.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	prm := result.Parameters
	m.AddRows(paramsRow(fmt.Sprintf("Sin movimiento hace más de %d días   |   Crítico: %d días   |   Advertencia: %d días",
		prm.ThresholdDays, prm.CriticalThreshold, prm.WarningThreshold)))
	s := result.Summary
	m.AddRows(summaryRow(
		summaryCard("Crítico", fmt.Sprintf("%d productos", s.Critical.Count), "$"+formatNumber(s.Critical.TiedCapital, 2), colorCritical),
		summaryCard("Advertencia", fmt.Sprintf("%d productos", s.Warning.Count), "$"+formatNumber(s.Warning.TiedCapital, 2), colorWarning),
		summaryCard("Monitorear", fmt.Sprintf("%d productos", s.Monitor.Count), "$"+formatNumber(s.Monitor.TiedCapital, 2), colorGray),
		summaryCard("Capital inmovilizado", fmt.Sprintf("%d productos", s.TotalProducts), "$"+formatNumber(s.TotalTiedCapital, 2), colorPrimary),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]column{
		{"SKU", 2, align.Left},
		{"Producto", 3, align.Left},
		{"Cant.", 1, align.Right},
		{"Último mov.", 2, align.Center},
		{"Días", 1, align.Right},
		{"Capital", 2, align.Right},
		{"Nivel", 1, align.Center},
	}))
	if len(result.Products) == 0 {
		m.AddRows(emptyRow("No hay inventario sin movimientos para los umbrales indicados."))
	}
	for i, p := range result.Products {
		if i%200 == 0 && ctx.Err() != nil {
			return nil, fmt.Errorf("pdf: %w", ctx.Err())
		}
		last, days := "nunca", "-"
		if p.LastMovementDate != nil {
			last = p.LastMovementDate.Format("02/01/2006")
		}
		if p.DaysSinceLastMovement != nil {
			days = fmt.Sprintf("%d", *p.DaysSinceLastMovement)
		}
		m.AddRows(row.New(6).Add(
			cell(p.SKU, 2, align.Left, nil),
			cell(truncate(p.Name, 36), 3, align.Left, nil),
			cell(formatNumber(p.CurrentQuantity, 0), 1, align.Right, nil),
			cell(last, 2, align.Center, nil),
			cell(days, 1, align.Right, nil),
			cell("$"+formatNumber(p.TiedCapital, 2), 2, align.Right, nil),
			cell(severityLabel(p.Severity), 1, align.Center, severityColor(p.Severity)),
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow("Capital inmovilizado = cantidad actual × costo unitario. Los productos que nunca se movieron se consideran críticos."))
	return generate(m)
}

func (g *MarotoReportGenerator) config(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

type column struct {
	label string
	size  int
	align align.Type
}

// headerRow: título (izq) y bodega + fecha (der).
func headerRow(title string, warehouse *dto.WarehouseResponse, analyzedAt string) core.Row {
	whName, whCode := "-", ""
	if warehouse != nil {
		whName = nonEmpty(warehouse.Name, warehouse.ID)
		whCode = warehouse.Code
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de análisis de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(whName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(nonEmpty(whCode, " "), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Analizado: "+analyzedAt, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func paramsRow(value string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("PARÁMETROS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
	)
}

func abcParams(p dto.ABCParameters) string {
	from, to := "inicio", "hoy"
	if p.DateFrom != nil {
		from = p.DateFrom.Format("02/01/2006")
	}
	if p.DateTo != nil {
		to = p.DateTo.Format("02/01/2006")
	}
	return fmt.Sprintf("Movimientos %s   |   Desde: %s   |   Hasta: %s", p.MovementType, from, to)
}

func summaryCard(title, line1, line2 string, color *props.Color) core.Col {
	return col.New(3).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: color, Top: 1}),
		text.New(line1, props.Text{Size: 8, Align: align.Center, Top: 6}),
		text.New(line2, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 11}),
	)
}

func summaryRow(cards ...core.Col) core.Row {
	return row.New(18).Add(cards...)
}

func tableHeaderRow(cols []column) core.Row {
	out := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		out = append(out, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(out...)
}

func cell(value string, size int, a align.Type, color *props.Color) core.Col {
	p := props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}
	if color != nil {
		p.Color = color
		p.Style = fontstyle.Bold
	}
	return col.New(size).Add(text.New(value, p))
}

func emptyRow(msg string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 3}),
	))
}

func footerRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

func severityLabel(s dto.DeadStockSeverity) string {
	switch s {
	case dto.SeverityCritical:
		return "Crítico"
	case dto.SeverityWarning:
		return "Advert."
	default:
		return "Monitor"
	}
}

func severityColor(s dto.DeadStockSeverity) *props.Color {
	switch s {
	case dto.SeverityCritical:
		return colorCritical
	case dto.SeverityWarning:
		return colorWarning
	default:
		return colorGray
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func percent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f%%", v), ".", ",", 1)
}

// formatNumber redondea a places decimales y usa separadores es-CO.
// Ej: 1234567.5 (2) → "1.234.567,50"
func formatNumber(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	out := sign + groupThousands(intPart)
	if frac != "" {
		out += "," + frac
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
