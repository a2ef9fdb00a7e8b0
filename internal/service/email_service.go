package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/email-writer-api/internal/domain"
	"github.com/phrazzld/email-writer-api/internal/generation"
	"github.com/phrazzld/email-writer-api/internal/platform/metrics"
)

// EmailService writes emails from structured parameters.
type EmailService interface {
	// GenerateEmail builds the prompt for req, asks the generator for text and
	// returns it trimmed. Errors wrap a generation sentinel (ErrGenerationFailed
	// or ErrEmptyResult) and embed the underlying failure description.
	GenerateEmail(ctx context.Context, req domain.EmailRequest) (domain.EmailResponse, error)
}

// emailServiceImpl implements EmailService
type emailServiceImpl struct {
	generator generation.Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewEmailService creates a new EmailService.
// The metrics argument may be nil.
func NewEmailService(
	generator generation.Generator,
	m *metrics.Metrics,
	logger *slog.Logger,
) (EmailService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &emailServiceImpl{
		generator: generator,
		metrics:   m,
		logger:    logger.With(slog.String("component", "email_service")),
	}, nil
}

// GenerateEmail implements EmailService.
func (s *emailServiceImpl) GenerateEmail(
	ctx context.Context,
	req domain.EmailRequest,
) (domain.EmailResponse, error) {
	req = req.WithDefaults()

	prompt := generation.BuildPrompt(req)
	if s.metrics != nil {
		s.metrics.ObservePrompt(prompt)
	}

	s.logger.DebugContext(ctx, "generating email",
		"category", req.Category,
		"points", len(req.Points),
		"has_example", req.HasExample(),
		"prompt_length", len(prompt))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return domain.EmailResponse{}, err
	}

	generated := strings.TrimSpace(text)
	if generated == "" {
		s.logger.WarnContext(ctx, "generator returned no usable text")
		return domain.EmailResponse{}, generation.ErrEmptyResult
	}

	return domain.EmailResponse{GeneratedEmail: generated}, nil
}
