package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/bodega-wms/internal/application/usecase"
	"github.com/jhoicas/bodega-wms/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalysisUC  *usecase.AnalysisUseCase
	ImportUC    *usecase.ImportUseCase
	PluginUC    *usecase.PluginUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ReportUC    *usecase.ReportUseCase // opcional
	// JWTSecret vacío deja la API sin autenticación (solo escucha en loopback).
	JWTSecret string
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v := NewRequestValidator()
	api := app.Group("/api")

	readScope, importScope := passThrough, passThrough
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
		readScope = RequireScope(jwt.ScopeRead)
		importScope = RequireScope(jwt.ScopeImport)
	}

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, v)
	warehouses.Get("/", readScope, warehouseHandler.List)
	warehouses.Get("/:id", readScope, warehouseHandler.GetByID)
	warehouses.Post("/", importScope, warehouseHandler.Create)

	// Plugins
	plugins := api.Group("/plugins")
	pluginHandler := NewPluginHandler(deps.PluginUC)
	plugins.Get("/", readScope, pluginHandler.List)
	plugins.Get("/:id", readScope, pluginHandler.Get)
	plugins.Get("/:id/formats", readScope, pluginHandler.Formats)

	// Imports
	imports := api.Group("/imports")
	importHandler := NewImportHandler(deps.ImportUC, v, deps.Log)
	imports.Post("/validate", readScope, importHandler.Validate)
	imports.Post("/demo", importScope, importHandler.Demo)
	imports.Post("/stream", importScope, importHandler.Stream)
	imports.Post("/", importScope, importHandler.Execute)

	// Analytics
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalysisUC, deps.ReportUC, v)
	analytics.Get("/abc", readScope, analyticsHandler.ABC)
	analytics.Get("/abc/pdf", readScope, analyticsHandler.ABCReport)
	analytics.Get("/dead-stock", readScope, analyticsHandler.DeadStock)
	analytics.Get("/dead-stock/pdf", readScope, analyticsHandler.DeadStockReport)
}

func passThrough(c *fiber.Ctx) error { return c.Next() }
