package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailRequest_WithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills missing urgency level", func(t *testing.T) {
		req := EmailRequest{Subject: "Project Update"}.WithDefaults()
		assert.Equal(t, DefaultUrgencyLevel, req.UrgencyLevel)
	})

	t.Run("keeps explicit urgency level", func(t *testing.T) {
		req := EmailRequest{UrgencyLevel: "Tinggi"}.WithDefaults()
		assert.Equal(t, "Tinggi", req.UrgencyLevel)
	})

	t.Run("does not modify the receiver", func(t *testing.T) {
		original := EmailRequest{}
		_ = original.WithDefaults()
		assert.Empty(t, original.UrgencyLevel)
	})
}

func TestEmailRequest_HasExample(t *testing.T) {
	t.Parallel()

	assert.False(t, EmailRequest{}.HasExample())
	assert.True(t, EmailRequest{ExampleEmail: "Dear team, ..."}.HasExample())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("points", "is required", ErrValidation)

	assert.Equal(t, "points: is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	bare := NewValidationError("", "request body is not valid JSON", ErrValidation)
	assert.Equal(t, "request body is not valid JSON", bare.Error())
}
