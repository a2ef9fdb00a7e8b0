package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/email-writer-api/internal/config"
	"github.com/phrazzld/email-writer-api/internal/generation"
	"github.com/phrazzld/email-writer-api/internal/platform/metrics"
	"github.com/phrazzld/email-writer-api/internal/redact"
	"google.golang.org/genai"
)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues the GenerateContent calls
	models contentGenerator

	// model is the name of the Gemini model to use
	model string

	// sampling is sent with every call
	sampling generation.Sampling

	// metrics may be nil
	metrics *metrics.Metrics
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and model name
//   - m: Metrics recorder, or nil to disable instrumentation
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	m *metrics.Metrics,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return newGeminiGenerator(logger, client.Models, cfg.ModelName, m), nil
}

// newGeminiGenerator wires a generator around an already constructed models API.
func newGeminiGenerator(
	logger *slog.Logger,
	models contentGenerator,
	model string,
	m *metrics.Metrics,
) *GeminiGenerator {
	return &GeminiGenerator{
		logger:   logger,
		models:   models,
		model:    model,
		sampling: generation.DefaultSampling,
		metrics:  m,
	}
}

// Model returns the configured model name.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// generateConfig converts the sampling parameters into the SDK request config.
func generateConfig(s generation.Sampling) *genai.GenerateContentConfig {
	temperature := s.Temperature
	topP := s.TopP
	topK := s.TopK

	return &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: s.MaxOutputTokens,
	}
}

// Generate submits the prompt to Gemini and returns the text of the first candidate.
//
// A response without candidates or text parts yields an empty string and a nil
// error; deciding that empty output is a failure is left to the caller.
// SDK and transport errors are wrapped in generation.ErrGenerationFailed.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), generateConfig(g.sampling))
	elapsed := time.Since(start)

	if err != nil {
		g.observe(metrics.StatusError, elapsed)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.model,
			"duration_ms", elapsed.Milliseconds(),
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.observe(metrics.StatusError, elapsed)
		g.logger.WarnContext(ctx, "Gemini API returned unusable response",
			"model", g.model,
			"error", err)
		return "", err
	}

	status := metrics.StatusSuccess
	if strings.TrimSpace(text) == "" {
		status = metrics.StatusEmpty
	}
	g.observe(status, elapsed)

	g.logger.InfoContext(ctx, "Gemini API call completed",
		"model", g.model,
		"duration_ms", elapsed.Milliseconds(),
		"response_length", len(text))

	return text, nil
}

func (g *GeminiGenerator) observe(status string, elapsed time.Duration) {
	if g.metrics != nil {
		g.metrics.ObserveGeneration(g.model, status, elapsed)
	}
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", nil
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
