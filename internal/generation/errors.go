package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the provider call fails for any
	// general reason. It is wrapped with the underlying failure description.
	ErrGenerationFailed = errors.New("provider call failed")

	// ErrEmptyResult is returned when the provider answered but produced no
	// usable text after trimming whitespace.
	ErrEmptyResult = errors.New("no result was produced by the language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrMissingAPIKey is returned by every call when the service started
	// without a provider credential.
	ErrMissingAPIKey = errors.New("gemini API key is not configured")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
