package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/aircatering-bi/internal/application/analytics"
	"github.com/jhoicas/aircatering-bi/internal/application/report"
	"github.com/jhoicas/aircatering-bi/internal/application/session"
	"github.com/jhoicas/aircatering-bi/internal/domain/repository"
	"github.com/jhoicas/aircatering-bi/internal/infrastructure/csvfile"
	infrapdf "github.com/jhoicas/aircatering-bi/internal/infrastructure/pdf"
	"github.com/jhoicas/aircatering-bi/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/aircatering-bi/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/aircatering-bi/internal/interfaces/http"
	"github.com/jhoicas/aircatering-bi/pkg/config"
	"github.com/jhoicas/aircatering-bi/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Data.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuente de datos: directorio de CSV (default) o PostgreSQL de solo lectura.
	var repo repository.DatasetRepository
	switch cfg.Data.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo = postgres.NewDatasetRepository(pool)
	default:
		repo = csvfile.NewRepository(cfg.Data.Dir, cfg.Data.Encoding)
	}

	store := session.NewStore(session.NewLoader(repo, log))
	loadCtx, cancelLoad := context.WithTimeout(ctx, 2*time.Minute)
	if _, err := store.Reload(loadCtx); err != nil {
		log.Error().Err(err).Msg("carga inicial de datasets")
	}
	cancelLoad()

	hrOpts := []analytics.HROption{analytics.WithAbsenteeismSeed(cfg.HR.AbsenteeismSeed)}
	reportUC := report.NewUseCase(
		store,
		infrapdf.NewMarotoSummaryGenerator(cfg.App.Name),
		infraxlsx.NewExporter(),
		hrOpts...,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "AirCatering BI API",
			}))
		} else {
			log.Warn().Str("path", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		Sessions:   store,
		Overview:   analytics.NewOverviewUseCase(store),
		Sales:      analytics.NewSalesUseCase(store),
		Finance:    analytics.NewFinanceUseCase(store),
		Inventory:  analytics.NewInventoryUseCase(store),
		HR:         analytics.NewHRUseCase(store, hrOpts...),
		Production: analytics.NewProductionUseCase(store),
		Reports:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
