package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/email-writer-api/internal/config"
	"github.com/phrazzld/email-writer-api/internal/generation"
	"github.com/phrazzld/email-writer-api/internal/platform/gemini"
	"github.com/phrazzld/email-writer-api/internal/platform/metrics"
	"github.com/phrazzld/email-writer-api/internal/service"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	metrics      *metrics.Metrics
	generator    generation.Generator
	emailService service.EmailService
}

// newApplication builds the application with the Gemini-backed generator.
// A missing API key does not fail startup; see gemini.NewGenerator.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	m := metrics.New()

	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
		m,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	return newApplicationWithGenerator(cfg, logger, m, generator)
}

// newApplicationWithGenerator wires the service layer around an existing
// generator. Tests use it to substitute a mock provider.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	generator generation.Generator,
) (*application, error) {
	if m == nil {
		m = metrics.New()
	}

	emailService, err := service.NewEmailService(generator, m, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create email service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return &application{
		config:       cfg,
		logger:       logger,
		metrics:      m,
		generator:    generator,
		emailService: emailService,
	}, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
