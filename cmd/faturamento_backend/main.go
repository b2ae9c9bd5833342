package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danilosilva441/projeto-faturamento/internal/clients/analysis"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/core/services"
	"github.com/danilosilva441/projeto-faturamento/internal/handlers"
	"github.com/danilosilva441/projeto-faturamento/internal/messaging/amqp"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/danilosilva441/projeto-faturamento/internal/platform/config"
	"github.com/danilosilva441/projeto-faturamento/internal/platform/server"
	"github.com/danilosilva441/projeto-faturamento/internal/repositories/database/pgsql"
	"github.com/danilosilva441/projeto-faturamento/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Faturamento API
// @version 1.0
// @description Daily revenue ledger per operation, with monthly goal progress and revenue forecasts.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	containerOpts := []services.ContainerOption{services.WithEstimator(newEstimator(cfg, logger))}

	if cfg.AMQPURL != "" {
		publisher, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect to message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := publisher.Close(); cerr != nil {
				logger.Error("Error closing message broker connection", slog.String("error", cerr.Error()))
			}
		}()
		containerOpts = append(containerOpts, services.WithPublisher(publisher))
		logger.Info("Revenue events will be published", slog.String("exchange", cfg.AMQPExchange))
	}

	serviceContainer := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool), containerOpts...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	if err := server.Run(ctx, server.New(":"+cfg.Port, r), cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newEstimator picks the remote analysis service when one is configured.
func newEstimator(cfg *config.Config, logger *slog.Logger) portssvc.Estimator {
	if cfg.AnalysisServiceURL == "" {
		logger.Info("Using in-process estimator")
		return services.NewLocalEstimator(nil)
	}
	logger.Info("Using remote analysis service", slog.String("url", cfg.AnalysisServiceURL))
	return analysis.NewClient(cfg.AnalysisServiceURL, cfg.AnalysisServiceTimeout)
}
