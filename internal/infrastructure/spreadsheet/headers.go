package spreadsheet

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader deja un encabezado en minúsculas, sin tildes y con guiones bajos:
// "Cantidad Disponible *" -> "cantidad_disponible", "Código" -> "codigo".
func NormalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimSuffix(h, "*")
	h = strings.TrimSpace(strings.ToLower(h))
	h = stripAccents(h)
	h = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == ' ', r == '-', r == '_', r == '.', r == '/':
			return '_'
		}
		return -1
	}, h)
	for strings.Contains(h, "__") {
		h = strings.ReplaceAll(h, "__", "_")
	}
	return strings.Trim(h, "_")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeHeaders normaliza y desambigua encabezados repetidos (sku, sku_2, ...).
// Las columnas sin nombre quedan como "" y se ignoran al leer filas.
func normalizeHeaders(raw []string) []string {
	seen := make(map[string]int, len(raw))
	out := make([]string, len(raw))
	for i, h := range raw {
		n := NormalizeHeader(h)
		if n == "" {
			continue
		}
		seen[n]++
		if seen[n] > 1 {
			n = n + "_" + strconv.Itoa(seen[n])
		}
		out[i] = n
	}
	return out
}
