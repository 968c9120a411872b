package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
)

// ImportHandler maneja la validación y ejecución de importaciones.
type ImportHandler struct {
	uc        *usecase.ImportUseCase
	validator *RequestValidator
	log       zerolog.Logger
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase, v *RequestValidator, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{uc: uc, validator: v, log: log}
}

// progressEvent evento SSE de avance.
type progressEvent struct {
	Percent float64 `json:"percent"`
	Message string  `json:"message"`
}

// Validate godoc
// @Summary      Validar archivo de importación
// @Description  Parsea el archivo local y ejecuta la validación del plugin sin escribir en la base de datos.
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateImportRequest  true  "Archivo y plugin"
// @Success      200   {object}  dto.ValidationReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/imports/validate [post]
func (h *ImportHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateImportRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.ValidateImportFile(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Execute godoc
// @Summary      Importar archivo en una bodega
// @Description  Ejecuta validating → parsing → transforming → loading. Los fallos dentro de la
//               importación se devuelven en el resultado (status=failed), no como error HTTP.
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "Archivo, bodega y plugin"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/imports [post]
func (h *ImportHandler) Execute(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.ExecuteImport(c.UserContext(), in, h.logProgress(in.FilePath))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stream godoc
// @Summary      Importar archivo con avance en vivo (SSE)
// @Description  Igual que POST /api/imports pero responde text/event-stream con eventos
//               `progress` ({percent, message}) y un evento final `result` (ImportResult) o `error`.
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      text/event-stream
// @Param        body  body  dto.ImportRequest  true  "Archivo, bodega y plugin"
// @Success      200   {string}  string  "event stream"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/imports/stream [post]
func (h *ImportHandler) Stream(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	// El stream se escribe después de que el handler retorna: no usar c dentro del writer.
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		streamImport(context.Background(), w, func(ctx context.Context, onProgress func(float64, string)) (*dto.ImportResult, error) {
			return h.uc.ExecuteImport(ctx, in, onProgress)
		})
	}))
	return nil
}

// streamImport ejecuta run enviando el avance como eventos SSE. Si el cliente se desconecta
// (falla el Flush) se cancela el contexto de la importación.
func streamImport(parent context.Context, w *bufio.Writer, run func(ctx context.Context, onProgress func(float64, string)) (*dto.ImportResult, error)) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	send := func(event string, payload any) {
		if ctx.Err() != nil {
			return
		}
		if err := writeEvent(w, event, payload); err != nil {
			cancel()
		}
	}
	res, err := run(ctx, func(percent float64, message string) {
		send("progress", progressEvent{Percent: percent, Message: message})
	})
	if err != nil {
		send("error", dto.ErrorResponse{Code: "IMPORT_REJECTED", Message: err.Error()})
		return
	}
	send("result", res)
}

// Demo godoc
// @Summary      Cargar datos de demostración
// @Description  Genera productos, inventario y movimientos sintéticos (deterministas por semilla) en la bodega.
// @Tags         imports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DemoImportRequest  true  "Bodega y semilla"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/imports/demo [post]
func (h *ImportHandler) Demo(c *fiber.Ctx) error {
	var in dto.DemoImportRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.validator.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.GenerateDemo(c.UserContext(), in, h.logProgress("demo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *ImportHandler) logProgress(source string) func(float64, string) {
	return func(percent float64, message string) {
		h.log.Debug().Str("source", source).Float64("percent", percent).Msg(message)
	}
}

func writeEvent(w *bufio.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte(`{}`)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}
