// Package plugin define el contrato que implementa cualquier adaptador de importación
// (importador genérico de hojas de cálculo, generador de datos sintéticos, etc.).
package plugin

import (
	"context"

	"github.com/jhoicas/bodega-wms/internal/domain/entity"
)

// Formatos de archivo aceptados por la importación (por extensión, sin inspeccionar contenido).
const (
	FormatXLSX = "xlsx"
	FormatXLS  = "xls"
	FormatCSV  = "csv"
)

// Metadata datos estáticos que identifican al plugin.
type Metadata struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Description      string   `json:"description"`
	Author           string   `json:"author"`
	SourceSystemName string   `json:"source_system_name"`
	SupportedFormats []string `json:"supported_formats"`
}

// Supports indica si el plugin acepta el formato (extensión sin punto, en minúsculas).
func (m Metadata) Supports(format string) bool {
	for _, f := range m.SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ProgressFunc recibe el avance (0-100) y un mensaje. Es best-effort: no devuelve nada.
type ProgressFunc func(percent float64, message string)

// TransformContext datos de contexto para una transformación.
type TransformContext struct {
	Ctx         context.Context
	WarehouseID string
	PluginID    string
	OnProgress  ProgressFunc
}

// Progress notifica avance si hay callback.
func (tc TransformContext) Progress(percent float64, message string) {
	if tc.OnProgress != nil {
		tc.OnProgress(percent, message)
	}
}

// Context devuelve el context de la transformación (Background si no se indicó).
func (tc TransformContext) Context() context.Context {
	if tc.Ctx == nil {
		return context.Background()
	}
	return tc.Ctx
}

// Plugin adaptador de un sistema origen al esquema normalizado.
//   - Validate nunca falla: siempre devuelve una lista (posiblemente vacía) de issues.
//   - Transform es de una sola pasada y determinista para la misma entrada.
type Plugin interface {
	Metadata() Metadata
	Validate(raw *RawInput) []ValidationIssue
	Transform(tc TransformContext, raw *RawInput) (*entity.NormalizedData, error)
}
