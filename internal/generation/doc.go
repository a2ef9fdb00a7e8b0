// Package generation defines the boundary between the email service and the
// external LLM that writes the email text. It owns the prompt format and the
// fixed sampling parameters, and exposes the Generator interface implemented
// by provider adapters such as the Gemini client.
package generation
