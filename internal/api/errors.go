package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/email-writer-api/internal/api/shared"
	"github.com/phrazzld/email-writer-api/internal/domain"
	"github.com/phrazzld/email-writer-api/internal/redact"
)

// generationErrorPrefix starts the detail of every generation failure response.
const generationErrorPrefix = "Error generating email: "

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation failures are client errors; every other failure is terminal
// for the request and reported as a server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorDetail returns the detail message sent to the client for err.
// Server errors embed the underlying failure description with credentials redacted.
func ErrorDetail(err error) string {
	if err == nil {
		return generationErrorPrefix + "unknown error"
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	return generationErrorPrefix + redact.Error(err)
}

// HandleAPIError is the single boundary that turns a failure into a response.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorDetail(err), err)
}
