package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
)

// PluginHandler expone el registro de plugins de importación.
type PluginHandler struct {
	uc *usecase.PluginUseCase
}

// NewPluginHandler construye el handler.
func NewPluginHandler(uc *usecase.PluginUseCase) *PluginHandler {
	return &PluginHandler{uc: uc}
}

// List godoc
// @Summary      Listar plugins de importación
// @Tags         plugins
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PluginListResponse
// @Router       /api/plugins [get]
func (h *PluginHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Get godoc
// @Summary      Metadata de un plugin
// @Tags         plugins
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plugin"
// @Success      200  {object}  plugin.Metadata
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plugins/{id} [get]
func (h *PluginHandler) Get(c *fiber.Ctx) error {
	meta, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(meta)
}

// Formats godoc
// @Summary      Formatos de archivo aceptados por un plugin
// @Tags         plugins
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del plugin"
// @Success      200  {object}  dto.PluginFormatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plugins/{id}/formats [get]
func (h *PluginHandler) Formats(c *fiber.Ctx) error {
	out, err := h.uc.SupportedFormats(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
