package api

import (
	"net/http"

	"github.com/phrazzld/email-writer-api/internal/api/shared"
	"github.com/phrazzld/email-writer-api/internal/service"
)

// EmailHandler handles the email generation and liveness endpoints
type EmailHandler struct {
	emailService service.EmailService
	status       StatusResponse
}

// NewEmailHandler creates a new EmailHandler.
// serviceName is reported by the liveness endpoint.
func NewEmailHandler(emailService service.EmailService, serviceName string) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
		status:       StatusResponse{Status: serviceName + " running"},
	}
}

// GenerateEmail handles POST /generate/ requests
func (h *EmailHandler) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req GenerateEmailRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp, err := h.emailService.GenerateEmail(r.Context(), req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateEmailResponse{
		GeneratedEmail: resp.GeneratedEmail,
	})
}

// Status handles GET / requests with a static payload.
func (h *EmailHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.status)
}
