package plugin

import "strings"

// RawInput datos tabulares ya parseados desde el archivo de origen.
type RawInput struct {
	FileName string
	Format   string
	Sheets   []Sheet
}

// Sheet hoja (o archivo CSV completo) con encabezados normalizados.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Row fila de datos: encabezado normalizado -> valor crudo de la celda.
type Row struct {
	Line   int // número de línea en el archivo (1 = encabezado)
	Values map[string]string
}

// Get devuelve el primer valor no vacío entre las claves indicadas.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r.Values[k]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// TotalRows suma las filas de datos de todas las hojas.
func (in *RawInput) TotalRows() int {
	if in == nil {
		return 0
	}
	n := 0
	for _, s := range in.Sheets {
		n += len(s.Rows)
	}
	return n
}

// SheetByName busca una hoja ignorando mayúsculas.
func (in *RawInput) SheetByName(names ...string) (*Sheet, bool) {
	if in == nil {
		return nil, false
	}
	for i := range in.Sheets {
		for _, n := range names {
			if strings.EqualFold(strings.TrimSpace(in.Sheets[i].Name), n) {
				return &in.Sheets[i], true
			}
		}
	}
	return nil, false
}

// HasHeader indica si la hoja tiene alguno de los encabezados.
func (s *Sheet) HasHeader(keys ...string) bool {
	for _, h := range s.Headers {
		for _, k := range keys {
			if h == k {
				return true
			}
		}
	}
	return false
}
