package domain

// DefaultUrgencyLevel is used when a request does not specify an urgency level.
const DefaultUrgencyLevel = "Biasa"

// EmailRequest holds the parameters a caller supplies for one generated email.
// It exists only for the lifetime of a single request.
type EmailRequest struct {
	Category     string
	Recipient    string
	Subject      string
	Tone         string
	Language     string
	UrgencyLevel string

	// Points are the bullets the email must cover, in the order given.
	Points []string

	// ExampleEmail is an optional earlier email used as a style reference.
	// An empty string means no example was provided.
	ExampleEmail string
}

// HasExample reports whether the request carries a reference email.
func (r EmailRequest) HasExample() bool {
	return r.ExampleEmail != ""
}

// WithDefaults returns a copy of the request with unset optional fields filled in.
func (r EmailRequest) WithDefaults() EmailRequest {
	if r.UrgencyLevel == "" {
		r.UrgencyLevel = DefaultUrgencyLevel
	}
	return r
}

// EmailResponse carries the generated email text back to the caller.
type EmailResponse struct {
	GeneratedEmail string
}
