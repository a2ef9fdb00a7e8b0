package api

import (
	"github.com/phrazzld/email-writer-api/internal/domain"
)

// GenerateEmailRequest defines the payload for the email generation endpoint.
// Required text fields are pointers so that an omitted field can be told
// apart from an empty string; an empty string is accepted. Points are
// pointers for the same reason: a null entry is rejected.
type GenerateEmailRequest struct {
	Category     *string   `json:"category"      validate:"required"`
	Recipient    *string   `json:"recipient"     validate:"required"`
	Subject      *string   `json:"subject"       validate:"required"`
	Tone         *string   `json:"tone"          validate:"required"`
	Language     *string   `json:"language"      validate:"required"`
	UrgencyLevel *string   `json:"urgency_level"`
	Points       []*string `json:"points"        validate:"required,dive,required"`
	ExampleEmail *string   `json:"example_email"`
}

// ToDomain converts a validated request into a domain.EmailRequest.
// A missing or null urgency level becomes domain.DefaultUrgencyLevel.
func (r GenerateEmailRequest) ToDomain() domain.EmailRequest {
	req := domain.EmailRequest{
		Category:     deref(r.Category),
		Recipient:    deref(r.Recipient),
		Subject:      deref(r.Subject),
		Tone:         deref(r.Tone),
		Language:     deref(r.Language),
		UrgencyLevel: domain.DefaultUrgencyLevel,
		Points:       make([]string, 0, len(r.Points)),
		ExampleEmail: deref(r.ExampleEmail),
	}
	for _, point := range r.Points {
		req.Points = append(req.Points, deref(point))
	}
	if r.UrgencyLevel != nil {
		req.UrgencyLevel = *r.UrgencyLevel
	}
	return req
}

// GenerateEmailResponse defines the successful response of the generation endpoint.
type GenerateEmailResponse struct {
	GeneratedEmail string `json:"generated_email"`
}

// StatusResponse is the liveness payload.
type StatusResponse struct {
	Status string `json:"status"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
