package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-task-tracker/config"
	_ "ai-task-tracker/docs" // Swagger docs
	"ai-task-tracker/internal/enrichment"
	"ai-task-tracker/internal/httpserver"
	"ai-task-tracker/pkg/claude"
	"ai-task-tracker/pkg/log"
)

// @title       AI Task Tracker API
// @description In-memory task tracker with AI-suggested priority and time estimates.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Enrichment (optional)
	var enricher enrichment.UseCase
	if cfg.Enrichment.Enabled {
		claudeClient, err := claude.New(claude.Config{
			APIKey:            cfg.Claude.APIKey,
			BaseURL:           cfg.Claude.BaseURL,
			Model:             cfg.Claude.Model,
			MaxTokensToSample: cfg.Claude.MaxTokens,
		})
		if err != nil {
			logger.Fatalf(ctx, "Failed to initialize Claude client: %v", err)
		}

		enricher = enrichment.New(logger, claudeClient, enrichment.Config{
			CacheSize:  cfg.Enrichment.CacheSize,
			CacheTTL:   cfg.Enrichment.CacheTTL,
			RatePerMin: cfg.Enrichment.RatePerMin,
		})
		logger.Infof(ctx, "Enrichment enabled (model=%s, timeout=%s)", claudeClient.Model(), cfg.Enrichment.Timeout)
	} else {
		logger.Warn(ctx, "Enrichment disabled: tasks are created without priority or estimate")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ShutdownTimeout:   cfg.HTTPServer.ShutdownTimeout,
		Enricher:          enricher,
		EnrichmentTimeout: cfg.Enrichment.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
