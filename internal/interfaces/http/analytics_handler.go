package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
)

// AnalyticsHandler maneja los endpoints de análisis ABC y stock muerto.
type AnalyticsHandler struct {
	uc        *usecase.AnalysisUseCase
	reports   *usecase.ReportUseCase
	validator *RequestValidator
}

// NewAnalyticsHandler construye el handler. reports puede ser nil (sin exportación PDF).
func NewAnalyticsHandler(uc *usecase.AnalysisUseCase, reports *usecase.ReportUseCase, v *RequestValidator) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, reports: reports, validator: v}
}

// ABC godoc
// @Summary      Clasificación ABC (Pareto) por volumen de salidas
// @Description  Agrupa los movimientos OUT de la bodega por producto, ordena por cantidad
//               y clasifica A (acumulado previo <= 20%), B (<= 50%) o C.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        date_from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to       query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.ABCAnalysisResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/abc [get]
func (h *AnalyticsHandler) ABC(c *fiber.Ctx) error {
	req, err := h.abcRequest(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	res, err := h.uc.PerformABCAnalysis(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// DeadStock godoc
// @Summary      Stock muerto y capital inmovilizado
// @Description  Inventario sin movimientos en más de threshold_days días (o que nunca se movió),
//               con severidad critical / warning / monitor según los umbrales.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id        query  string  true   "ID de la bodega"
// @Param        threshold_days      query  int     false  "Días sin movimiento (default 90)"
// @Param        critical_threshold  query  int     false  "Umbral crítico en días (default 180)"
// @Param        warning_threshold   query  int     false  "Umbral de advertencia en días (default 90)"
// @Success      200  {object}  dto.DeadStockAnalysisResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/dead-stock [get]
func (h *AnalyticsHandler) DeadStock(c *fiber.Ctx) error {
	req, err := h.deadStockRequest(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	res, err := h.uc.PerformDeadStockAnalysis(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ABCReport godoc
// @Summary      Reporte ABC en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        date_from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to       query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/abc/pdf [get]
func (h *AnalyticsHandler) ABCReport(c *fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "exportación PDF no configurada"})
	}
	req, err := h.abcRequest(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	pdf, err := h.reports.ABCReport(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, fmt.Sprintf("abc-%s.pdf", req.WarehouseID), pdf)
}

// DeadStockReport godoc
// @Summary      Reporte de stock muerto en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        warehouse_id        query  string  true   "ID de la bodega"
// @Param        threshold_days      query  int     false  "Días sin movimiento (default 90)"
// @Param        critical_threshold  query  int     false  "Umbral crítico en días (default 180)"
// @Param        warning_threshold   query  int     false  "Umbral de advertencia en días (default 90)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/analytics/dead-stock/pdf [get]
func (h *AnalyticsHandler) DeadStockReport(c *fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "exportación PDF no configurada"})
	}
	req, err := h.deadStockRequest(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", err.Error())
	}
	pdf, err := h.reports.DeadStockReport(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, fmt.Sprintf("stock-muerto-%s.pdf", req.WarehouseID), pdf)
}

func (h *AnalyticsHandler) abcRequest(c *fiber.Ctx) (dto.ABCAnalysisRequest, error) {
	var req dto.ABCAnalysisRequest
	if err := c.QueryParser(&req); err != nil {
		return req, fmt.Errorf("parámetros de consulta inválidos")
	}
	return req, h.validator.Struct(req)
}

func (h *AnalyticsHandler) deadStockRequest(c *fiber.Ctx) (dto.DeadStockAnalysisRequest, error) {
	var req dto.DeadStockAnalysisRequest
	if err := c.QueryParser(&req); err != nil {
		return req, fmt.Errorf("parámetros de consulta inválidos")
	}
	return req, h.validator.Struct(req)
}

func sendPDF(c *fiber.Ctx, filename string, pdf []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
