// Package main implements the entry point for the Intelligent Email Writer API
// server, which turns structured email parameters into a prompt for Gemini and
// returns the generated email text.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/email-writer-api/internal/config"
	"github.com/phrazzld/email-writer-api/internal/platform/logger"
)

func main() {
	fmt.Println("Intelligent Email Writer API starting...")

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Application exited with error", "error", err)
		log.Fatalf("Application error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)
	appLogger.Debug("LLM configuration", "api_key_present", cfg.LLM.HasAPIKey())

	return cfg, appLogger, nil
}
