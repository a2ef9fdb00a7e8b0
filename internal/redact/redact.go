// Package redact removes credentials from strings before they are logged.
// Provider and transport errors can echo request URLs or headers, and the
// Gemini API key travels in both, so every error written to the logs goes
// through Error first.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; earlier rules see the raw input.
var rules = []rule{
	// Google API keys have a fixed prefix and length.
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// Credentials passed as query parameters, e.g. ...:generateContent?key=...
	{regexp.MustCompile(`([?&](?:key|api_key|access_token)=)[A-Za-z0-9_\-.~+/%]+`), "${1}" + RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`), "${1}" + RedactedTokenPlaceholder},
	{
		// Only key/value pairs; prose such as "token limit exceeded" is kept.
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"]?\s*[:=]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
