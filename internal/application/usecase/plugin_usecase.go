package usecase

import (
	"fmt"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/importer"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/plugin"
)

// PluginUseCase consulta del registro de plugins de importación.
type PluginUseCase struct {
	registry *importer.Registry
}

// NewPluginUseCase construye el caso de uso.
func NewPluginUseCase(registry *importer.Registry) *PluginUseCase {
	return &PluginUseCase{registry: registry}
}

// List devuelve los plugins registrados ordenados por id.
func (uc *PluginUseCase) List() dto.PluginListResponse {
	items := uc.registry.List()
	formats := make([]string, len(importer.SupportedFormats))
	copy(formats, importer.SupportedFormats)
	return dto.PluginListResponse{Items: items, Total: len(items), SupportedFormats: formats}
}

// Get devuelve la metadata del plugin o domain.ErrPluginNotFound.
func (uc *PluginUseCase) Get(id string) (plugin.Metadata, error) {
	p, ok := uc.registry.Get(id)
	if !ok {
		return plugin.Metadata{}, fmt.Errorf("plugin %q: %w", id, domain.ErrPluginNotFound)
	}
	return p.Metadata(), nil
}

// Has indica si hay un plugin con ese id.
func (uc *PluginUseCase) Has(id string) bool {
	return uc.registry.Exists(id)
}

// SupportedFormats extensiones que acepta el plugin (sin punto).
func (uc *PluginUseCase) SupportedFormats(id string) (dto.PluginFormatsResponse, error) {
	meta, err := uc.Get(id)
	if err != nil {
		return dto.PluginFormatsResponse{}, err
	}
	formats := make([]string, len(meta.SupportedFormats))
	copy(formats, meta.SupportedFormats)
	return dto.PluginFormatsResponse{PluginID: meta.ID, Formats: formats}, nil
}
