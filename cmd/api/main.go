package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	catalogHttp "sales-insights-service/internal/catalog/adapters/http/fiber"
	catalogRepoPg "sales-insights-service/internal/catalog/adapters/postgres"
	catalogUsecase "sales-insights-service/internal/catalog/core/usecase"
	"sales-insights-service/internal/config"

	chartsHttp "sales-insights-service/internal/charts/adapters/http/fiber"
	chartsRepoPg "sales-insights-service/internal/charts/adapters/postgres"
	"sales-insights-service/internal/charts/core/aggregate"
	chartsDomain "sales-insights-service/internal/charts/core/domain"
	chartsUsecase "sales-insights-service/internal/charts/core/usecase"

	"sales-insights-service/internal/dataset"
	datasetHttp "sales-insights-service/internal/dataset/adapters/http/fiber"

	_ "sales-insights-service/docs"
)

// @title Sales Insights Service API
// @version 1.0
// @description Chart-ready aggregates over joined product and sales datasets.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Repositories
	productRepository := catalogRepoPg.NewProductRepository(catalogRepoPg.NewSQLDB(db))
	salesRepository := chartsRepoPg.NewSalesRepository(chartsRepoPg.NewSQLDB(db))

	// Snapshot store + initial load
	store := dataset.NewStore(productRepository, salesRepository, log)
	if _, err := store.Refresh(context.Background()); err != nil {
		log.Fatalf("failed to load initial snapshot: %v", err)
	}

	// Usecases
	aggOpts := aggregate.Options{
		StackTopN:     cfg.StackTopN,
		FallbackLabel: cfg.FallbackLabel,
		Thresholds: chartsDomain.BadgeThresholds{
			TopPercentile:      cfg.TopPercentile,
			TopPercentileScope: chartsDomain.PercentileScope(cfg.TopPercentileScope),
			AppHeavyMin:        cfg.AppHeavyMin,
			WebHeavyMax:        cfg.WebHeavyMax,
			ViralMinRead:       cfg.ViralMinRead,
			ViralMinRatio:      cfg.ViralMinRatio,
			LowConvMinRead:     cfg.LowConvMinRead,
			LowConvMaxRatio:    cfg.LowConvMaxRatio,
			RecencyDays:        cfg.RecencyDays,
		},
	}
	getChartsUC := chartsUsecase.NewGetChartsUseCase(
		store,
		chartsUsecase.Defaults{Start: cfg.DefaultStart, End: cfg.DefaultEnd},
		aggOpts,
	)
	getOptionsUC := catalogUsecase.NewGetFacetOptionsUseCase(store)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	chartsHandler := chartsHttp.NewChartsHandler(getChartsUC)
	app.Get("/api/charts", chartsHandler.GetCharts)

	optionsHandler := catalogHttp.NewOptionsHandler(getOptionsUC)
	app.Get("/api/filters/options", optionsHandler.GetFacetOptions)

	datasetHandler := datasetHttp.NewDatasetHandler(store)
	app.Post("/api/refresh", datasetHandler.Refresh)
	app.Get("/healthz", datasetHandler.Health)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Address); err != nil {
			log.Errorf("fiber stopped: %v", err)
		}
	}()

	log.Infof("server started on %s", cfg.Address)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("fiber shutdown error: %v", err)
	}

	log.Info("server exiting")
}
