package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danilosilva441/projeto-faturamento/internal/core/services"
	"github.com/danilosilva441/projeto-faturamento/internal/handlers"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/danilosilva441/projeto-faturamento/internal/platform/config"
	"github.com/danilosilva441/projeto-faturamento/internal/platform/server"
	"github.com/gin-gonic/gin"
)

// The analysis service is stateless: it holds no database connection and
// answers purely from the request body.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "analysis"))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterAnalysisServiceRoutes(r, services.NewLocalEstimator(nil))

	if err := server.Run(ctx, server.New(":"+cfg.AnalysisPort, r), cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
