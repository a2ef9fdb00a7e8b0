package api

import (
	"testing"

	"github.com/phrazzld/email-writer-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func strPtrs(values ...string) []*string {
	ptrs := make([]*string, 0, len(values))
	for _, v := range values {
		ptrs = append(ptrs, strPtr(v))
	}
	return ptrs
}

func TestGenerateEmailRequest_ToDomain(t *testing.T) {
	t.Parallel()

	t.Run("all fields", func(t *testing.T) {
		wire := GenerateEmailRequest{
			Category:     strPtr("Reminder"),
			Recipient:    strPtr("John"),
			Subject:      strPtr("Project Update"),
			Tone:         strPtr("Formal"),
			Language:     strPtr("English"),
			UrgencyLevel: strPtr("Tinggi"),
			Points:       strPtrs("Deadline is Friday"),
			ExampleEmail: strPtr("Dear team, ..."),
		}

		assert.Equal(t, domain.EmailRequest{
			Category:     "Reminder",
			Recipient:    "John",
			Subject:      "Project Update",
			Tone:         "Formal",
			Language:     "English",
			UrgencyLevel: "Tinggi",
			Points:       []string{"Deadline is Friday"},
			ExampleEmail: "Dear team, ...",
		}, wire.ToDomain())
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		req := GenerateEmailRequest{Points: []*string{}}.ToDomain()

		assert.Equal(t, domain.DefaultUrgencyLevel, req.UrgencyLevel)
		assert.Empty(t, req.ExampleEmail)
		assert.False(t, req.HasExample())
		assert.NotNil(t, req.Points)
		assert.Empty(t, req.Points)
	})

	t.Run("points are copied", func(t *testing.T) {
		points := strPtrs("a", "b")
		req := GenerateEmailRequest{Points: points}.ToDomain()
		*points[0] = "changed"

		assert.Equal(t, []string{"a", "b"}, req.Points)
	})
}
