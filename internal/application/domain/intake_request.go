package domain

import (
	"encoding/json"

	"pilot-server/internal/infra/utils"
	shared "pilot-server/internal/shared_kernel/domain"
)

// IntakeRequest is the application as received by the intake endpoint.
// Only the flattened fields are read; the nested form is ignored.
type IntakeRequest struct {
	Name         string
	Email        string
	Organization string
	CurrentCrm   string
	Goals        string
	PageURL      string
	UTM          json.RawMessage
	UserAgent    string
	Honeypot     shared.Honeypot
}

func NewIntakeRequest(body shared.RequestBody, userAgent string) IntakeRequest {
	utm, ok := body.Object("utm")
	if !ok {
		utm = json.RawMessage(`{}`)
	}
	return IntakeRequest{
		Name:         body.String("name"),
		Email:        body.String("email"),
		Organization: body.String("organization"),
		CurrentCrm:   body.String("currentCrm"),
		Goals:        body.String("goals"),
		PageURL:      body.String("pageUrl"),
		UTM:          utm,
		UserAgent:    utils.PickString(userAgent),
		Honeypot:     shared.HoneypotFrom(body),
	}
}

func (r IntakeRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Organization == "" || r.Goals == "" {
		return ErrMissingRequiredFields
	}
	if !utils.IsValidEmail(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}
