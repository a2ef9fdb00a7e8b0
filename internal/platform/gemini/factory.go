package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/email-writer-api/internal/config"
	"github.com/phrazzld/email-writer-api/internal/generation"
	"github.com/phrazzld/email-writer-api/internal/platform/metrics"
)

// NewGenerator creates the generator used by the server.
//
// Without an API key it returns a generator whose every call fails with
// generation.ErrMissingAPIKey, so the server still starts. Any other
// initialization failure is returned as an error.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	m *metrics.Metrics,
) (generation.Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logger.InfoContext(ctx, "Initializing Gemini generator", "model", cfg.ModelName)

	if !cfg.HasAPIKey() {
		logger.WarnContext(ctx, "Gemini API key is not configured; generation requests will fail",
			"env_var", config.GeminiAPIKeyEnv)
		return unavailableGenerator{}, nil
	}

	generator, err := NewGeminiGenerator(ctx, logger, cfg, m)
	if err != nil {
		return nil, err
	}

	return generator, nil
}

// unavailableGenerator stands in for the Gemini client when no credential exists.
type unavailableGenerator struct{}

// Generate always fails.
func (unavailableGenerator) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrMissingAPIKey)
}
