// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to write email text from a prompt.
//
// This package is an infrastructure adapter: it translates a prompt string into a
// GenerateContent call with the service's fixed sampling parameters, and
// translates the response (or failure) back into plain text or a
// generation error. Nothing outside this package imports the genai SDK.
//
// Key components:
//
// 1. GeminiGenerator:
//   - Implements the generation.Generator interface
//   - Makes exactly one API call per request; there is no retry policy
//   - Records call outcomes and latency in Prometheus metrics
//
// 2. NewGenerator:
//   - Startup factory used by the server
//   - Falls back to a generator that always fails when no API key is configured,
//     so the process can still start and answer liveness checks
//
// 3. ListModels:
//   - Diagnostic helper listing the models that support content generation
package gemini
