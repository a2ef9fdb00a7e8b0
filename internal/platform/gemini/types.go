package gemini

import (
	"context"

	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used for generation.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// modelLister is the subset of *genai.Models used by ListModels.
type modelLister interface {
	List(ctx context.Context, config *genai.ListModelsConfig) (genai.Page[genai.Model], error)
}

// generateContentAction is the supported action name of models that can
// serve GenerateContent calls.
const generateContentAction = "generateContent"
