package generation

import (
	"strings"

	"github.com/phrazzld/email-writer-api/internal/domain"
)

// Prompt lines that do not depend on the request.
const (
	pointsHeader  = "Isi email harus mencakup poin-poin berikut:"
	exampleHeader = "Contoh email sebelumnya:"
	closingLine   = "Buat email yang profesional, jelas, dan padat."
)

// BuildPrompt renders the request into the instruction text sent to the provider.
// The output is deterministic: identical requests produce byte-identical prompts.
// Points are emitted in input order with no deduplication or truncation.
func BuildPrompt(req domain.EmailRequest) string {
	lines := make([]string, 0, 10+len(req.Points))
	lines = append(lines,
		"Tolong buatkan email dalam "+strings.ToLower(req.Language)+" yang "+strings.ToLower(req.Tone),
		"kepada "+req.Recipient+".",
		"Subjek: "+req.Subject+".",
		"Kategori email: "+req.Category+".",
		"Tingkat urgensi: "+req.UrgencyLevel+".",
		"",
		pointsHeader,
	)

	for _, point := range req.Points {
		lines = append(lines, "- "+point)
	}

	if req.HasExample() {
		lines = append(lines, "", exampleHeader, req.ExampleEmail)
	}

	lines = append(lines, "", closingLine)

	return strings.Join(lines, "\n")
}
