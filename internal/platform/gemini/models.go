package gemini

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/email-writer-api/internal/config"
	"github.com/phrazzld/email-writer-api/internal/generation"
	"github.com/phrazzld/email-writer-api/internal/redact"
	"google.golang.org/genai"
)

// ListModels returns the names of the models available to the given API key
// that support content generation, in the order the API reports them.
func ListModels(ctx context.Context, cfg config.LLMConfig) ([]string, error) {
	if !cfg.HasAPIKey() {
		return nil, generation.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %s",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return listGenerativeModels(ctx, client.Models)
}

// listGenerativeModels walks every page of the model listing.
func listGenerativeModels(ctx context.Context, lister modelLister) ([]string, error) {
	page, err := lister.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var names []string
	for {
		for _, model := range page.Items {
			if model != nil && slices.Contains(model.SupportedActions, generateContentAction) {
				names = append(names, strings.TrimSpace(model.Name))
			}
		}

		if page.NextPageToken == "" {
			return names, nil
		}

		page, err = page.Next(ctx)
		if errors.Is(err, genai.ErrPageDone) {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
	}
}
