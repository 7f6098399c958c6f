package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mcbank/mc_bank_app/internal/adapters/database/sqlite"
	"github.com/mcbank/mc_bank_app/internal/core/services"
	"github.com/mcbank/mc_bank_app/internal/handlers"
	"github.com/mcbank/mc_bank_app/internal/middleware"
	"github.com/mcbank/mc_bank_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the local snapshot store
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open snapshot store", slog.String("error", err.Error()), slog.String("path", cfg.DBPath))
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Snapshot store opened", slog.String("path", cfg.DBPath))

	// Build repositories and services; the stores load their collections here
	repos := sqlite.NewRepositoryProvider(store)
	container, err := services.NewServiceContainer(context.Background(), repos)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
