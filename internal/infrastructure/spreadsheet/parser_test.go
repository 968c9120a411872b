package spreadsheet_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
	"github.com/jhoicas/bodega-wms/internal/infrastructure/spreadsheet"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"SKU":                  "sku",
		"  Nombre * ":          "nombre",
		"Código":               "codigo",
		"Cantidad Disponible":  "cantidad_disponible",
		"Fecha-Movimiento":     "fecha_movimiento",
		"Ubicación / Posición": "ubicacion_posicion",
		"Precio (COP)":         "precio_cop",
	}
	for in, want := range cases {
		assert.Equal(t, want, spreadsheet.NormalizeHeader(in), in)
	}
}

func TestParseCSV_PuntoYComaYFilasVacias(t *testing.T) {
	in := "\xEF\xBB\xBFSKU;Nombre;Cantidad\nA-1;Tornillo;10\n;;\nA-2; Tuerca ;5\n"
	sheet, err := spreadsheet.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"sku", "nombre", "cantidad"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, 2, sheet.Rows[0].Line)
	assert.Equal(t, "Tuerca", sheet.Rows[1].Values["nombre"])
	assert.Equal(t, 4, sheet.Rows[1].Line)
}

func TestParseCSV_Windows1252(t *testing.T) {
	// "Descripción" y "Cañería" codificados en Windows-1252.
	in := "sku,Descripci\xf3n\nB-1,Ca\xf1er\xeda\n"
	sheet, err := spreadsheet.ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"sku", "descripcion"}, sheet.Headers)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "Cañería", sheet.Rows[0].Values["descripcion"])
}

func TestParseCSV_EncabezadosRepetidos(t *testing.T) {
	sheet, err := spreadsheet.ParseCSV(strings.NewReader("sku,SKU,,nombre\n1,2,x,n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"sku", "sku_2", "nombre"}, sheet.Headers)
	assert.Equal(t, "2", sheet.Rows[0].Values["sku_2"])
	assert.Len(t, sheet.Rows[0].Values, 3)
}

func TestParser_CSVDesdeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productos.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,name\nA,Alfa\nB,Beta\n"), 0o600))

	raw, err := spreadsheet.NewParser(10).Parse(context.Background(), path, plugin.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "productos.csv", raw.FileName)
	require.Len(t, raw.Sheets, 1)
	assert.Equal(t, "productos", raw.Sheets[0].Name)
	assert.Equal(t, 2, raw.TotalRows())
}

func TestParser_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodega.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Productos"))
	require.NoError(t, f.SetSheetRow("Productos", "A1", &[]any{"SKU *", "Nombre", "Costo"}))
	require.NoError(t, f.SetSheetRow("Productos", "A2", &[]any{"P-1", "Martillo", 12.5}))
	require.NoError(t, f.SetSheetRow("Productos", "A4", &[]any{"P-2", "Serrucho", 30}))
	_, err := f.NewSheet("Vacía")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	raw, err := spreadsheet.NewParser(0).Parse(context.Background(), path, plugin.FormatXLSX)
	require.NoError(t, err)
	require.Len(t, raw.Sheets, 2)

	products, ok := raw.SheetByName("productos")
	require.True(t, ok)
	assert.Equal(t, []string{"sku", "nombre", "costo"}, products.Headers)
	require.Len(t, products.Rows, 2)
	assert.Equal(t, "Martillo", products.Rows[0].Values["nombre"])
	assert.Equal(t, "12.5", products.Rows[0].Values["costo"])
	assert.Equal(t, 4, products.Rows[1].Line)

	empty, ok := raw.SheetByName("Vacía")
	require.True(t, ok)
	assert.Empty(t, empty.Headers)
	assert.Empty(t, empty.Rows)
}

func TestParser_Errores(t *testing.T) {
	dir := t.TempDir()
	p := spreadsheet.NewParser(1)
	ctx := context.Background()

	_, err := p.Parse(ctx, filepath.Join(dir, "nada.csv"), plugin.FormatCSV)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	bogus := filepath.Join(dir, "viejo.xls")
	require.NoError(t, os.WriteFile(bogus, []byte("no es un libro"), 0o600))
	_, err = p.Parse(ctx, bogus, plugin.FormatXLS)
	assert.ErrorIs(t, err, domain.ErrParseFailure)

	_, err = p.Parse(ctx, bogus, "json")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	big := filepath.Join(dir, "grande.csv")
	require.NoError(t, os.WriteFile(big, make([]byte, 2<<20), 0o600))
	_, err = p.Parse(ctx, big, plugin.FormatCSV)
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}
