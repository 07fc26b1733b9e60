package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"salesdash/docs"
	"salesdash/internal/config"
	"salesdash/internal/database"
	"salesdash/internal/database/migration"
	handlers "salesdash/internal/http/handler"
	"salesdash/internal/http/middleware"
	"salesdash/internal/logging"
	"salesdash/internal/otel"
	"salesdash/internal/repository/postgres"
	"salesdash/internal/service"
	"salesdash/internal/source"
	"salesdash/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Salesperson Dashboard API
// @version 1.0.0
// @description API serving dashboard data and AI placeholder answers.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewStdout(cfg.Location())
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	src, db, err := newSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize data source", zap.String("data_source", cfg.Data.Source), zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}
	logger.Info("data_source_configured", zap.String("source", src.Name()))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	// Order matters: the request ID and span must exist before the logger runs.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))

	deps := handlers.Deps{
		Data:      service.NewDataService(src, logger),
		Assistant: service.NewAssistantService(),
		Gatherer:  reg,
	}
	if db != nil {
		deps.DB = database.NewDatasetCheck(db, cfg.Data.DatasetName)
	}
	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		logger.Info("server_shutdown", zap.String("reason", "signal"))
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server_starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// newSource builds the dataset source selected by DATA_SOURCE. The database
// handle is returned only for the postgres source so /health can ping it.
func newSource(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (source.Source, *sql.DB, error) {
	switch cfg.Data.Source {
	case config.SourceObject:
		store, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, nil, err
		}
		return source.NewObject(store, cfg.Data.ObjectKey), nil, nil

	case config.SourcePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return source.NewRepository(postgres.NewDatasetPostgres(db), cfg.Data.DatasetName), db, nil

	default:
		return source.NewFile(cfg.Data.FilePath), nil, nil
	}
}
