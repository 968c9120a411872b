package dto

import "github.com/jhoicas/bodega-wms/internal/domain/plugin"

// PluginListResponse plugins registrados y extensiones de archivo aceptadas.
type PluginListResponse struct {
	Items            []plugin.Metadata `json:"items"`
	Total            int               `json:"total"`
	SupportedFormats []string          `json:"supported_formats"`
}

// PluginFormatsResponse formatos de archivo aceptados por un plugin.
type PluginFormatsResponse struct {
	PluginID string   `json:"plugin_id"`
	Formats  []string `json:"formats"`
}
