// Package spreadsheet lee archivos tabulares de importación (xlsx, xls, csv) hacia plugin.RawInput.
package spreadsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

var _ importer.FileParser = (*Parser)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser implementa importer.FileParser.
type Parser struct {
	maxBytes int64
}

// NewParser construye el parser. maxFileMB <= 0 desactiva el límite de tamaño.
func NewParser(maxFileMB int) *Parser {
	return &Parser{maxBytes: int64(maxFileMB) << 20}
}

// Parse lee el archivo según su formato. Cualquier fallo de lectura se reporta como ErrParseFailure.
func (p *Parser) Parse(ctx context.Context, path, format string) (*plugin.RawInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}
	if p.maxBytes > 0 && info.Size() > p.maxBytes {
		return nil, fmt.Errorf("%w: el archivo pesa %d bytes y el máximo es %d", domain.ErrParseFailure, info.Size(), p.maxBytes)
	}

	var sheets []plugin.Sheet
	switch format {
	case plugin.FormatCSV:
		sheets, err = parseCSVFile(path)
	case plugin.FormatXLSX, plugin.FormatXLS:
		sheets, err = parseWorkbook(ctx, path)
	default:
		return nil, fmt.Errorf("extensión %q: %w", format, domain.ErrUnsupportedFormat)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParseFailure, filepath.Base(path), err)
	}
	return &plugin.RawInput{FileName: filepath.Base(path), Format: format, Sheets: sheets}, nil
}

func parseCSVFile(path string) ([]plugin.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sheet, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	sheet.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []plugin.Sheet{sheet}, nil
}

// ParseCSV lee un CSV completo como una sola hoja. Acepta UTF-8 (con o sin BOM) y, si el contenido
// no es UTF-8 válido, lo decodifica como Windows-1252 (exportaciones de Excel en español).
// El separador se detecta en la línea de encabezados: ';' o ','.
func ParseCSV(r io.Reader) (plugin.Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return plugin.Sheet{}, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return plugin.Sheet{}, fmt.Errorf("decodificar Windows-1252: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return plugin.Sheet{}, nil
	}
	if err != nil {
		return plugin.Sheet{}, fmt.Errorf("leer encabezados: %w", err)
	}
	keys := normalizeHeaders(header)
	sheet := plugin.Sheet{Headers: compactHeaders(keys)}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return plugin.Sheet{}, fmt.Errorf("leer fila: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if row, ok := buildRow(keys, record, line); ok {
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	return sheet, nil
}

func parseWorkbook(ctx context.Context, path string) ([]plugin.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	sheets := make([]plugin.Sheet, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %s: %w", name, err)
		}
		sheets = append(sheets, sheetFromRows(name, rows))
	}
	return sheets, nil
}

// sheetFromRows toma la primera fila no vacía como encabezados.
func sheetFromRows(name string, rows [][]string) plugin.Sheet {
	sheet := plugin.Sheet{Name: name}
	start := -1
	for i, r := range rows {
		if !blank(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return sheet
	}
	keys := normalizeHeaders(rows[start])
	sheet.Headers = compactHeaders(keys)
	for i := start + 1; i < len(rows); i++ {
		if row, ok := buildRow(keys, rows[i], i+1); ok {
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	return sheet
}

func buildRow(keys, record []string, line int) (plugin.Row, bool) {
	if blank(record) {
		return plugin.Row{}, false
	}
	row := plugin.Row{Line: line, Values: make(map[string]string, len(keys))}
	for i, value := range record {
		if i < len(keys) && keys[i] != "" {
			row.Values[keys[i]] = strings.TrimSpace(value)
		}
	}
	return row, true
}

func compactHeaders(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func detectDelimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	if bytes.Count(first, []byte{';'}) > bytes.Count(first, []byte{','}) {
		return ';'
	}
	return ','
}
