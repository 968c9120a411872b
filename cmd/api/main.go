package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bodega-wms/docs"
	"github.com/jhoicas/bodega-wms/internal/app"
	httpRouter "github.com/jhoicas/bodega-wms/internal/interfaces/http"
	"github.com/jhoicas/bodega-wms/pkg/config"
	"github.com/jhoicas/bodega-wms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	container, err := app.Build(ctx, cfg, log, app.Options{Migrate: true})
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización")
	}
	defer container.Close()

	fiberApp := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Minute * 10, // las importaciones grandes responden al terminar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    1 * 1024 * 1024,
	})
	fiberApp.Use(recover.New())

	// Swagger UI en local: http://127.0.0.1:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	if swaggerFile, err := swaggerFilePath(cfg.HTTP.SwaggerFile); err != nil {
		log.Warn().Err(err).Msg("swagger deshabilitado")
	} else {
		fiberApp.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Bodega WMS API",
		}))
	}

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: la API no exige token")
	}
	httpRouter.Router(fiberApp, httpRouter.RouterDeps{
		AnalysisUC:  container.AnalysisUC,
		ImportUC:    container.ImportUC,
		PluginUC:    container.PluginUC,
		WarehouseUC: container.WarehouseUC,
		ReportUC:    container.ReportUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Component("http"),
	})

	go func() {
		if err := fiberApp.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerFilePath usa el archivo configurado si existe; si no, vuelca el documento
// registrado por swag a un archivo temporal.
func swaggerFilePath(configured string) (string, error) {
	if _, err := os.Stat(configured); err == nil {
		return configured, nil
	}
	path := filepath.Join(os.TempDir(), "bodega-wms-swagger.json")
	if err := os.WriteFile(path, []byte(docs.SwaggerInfo.ReadDoc()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
