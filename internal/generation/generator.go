package generation

import (
	"context"
)

// Generator defines the interface for turning a prompt into generated text.
// Implementations are constructed once at startup and are safe for
// concurrent use by independent requests.
type Generator interface {
	// Generate submits the prompt to the provider and returns its raw text output.
	// An empty string with a nil error means the provider answered without text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sampling holds the provider sampling parameters.
type Sampling struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// DefaultSampling is applied to every generation call. It is not
// configurable per request.
var DefaultSampling = Sampling{
	Temperature:     0.7,
	TopP:            1.0,
	TopK:            40,
	MaxOutputTokens: 1024,
}
