package domain

import "strings"

const FormVersionV1 = "v1"

// LegacyFields is the flattened shape the intake endpoint and the sheet
// columns still expect.
type LegacyFields struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	CurrentCrm   string `json:"currentCrm"`
	Goals        string `json:"goals"`
}

type SubmissionPayload struct {
	FormVersion string       `json:"formVersion"`
	Form        Form         `json:"form"`
	Honeypot    string       `json:"honeypot"`
	Legacy      LegacyFields `json:"legacy"`
}

func BuildCurrentCrm(form Form) string {
	if form.CurrentSystem == "" {
		return ""
	}
	if form.CurrentSystem != OtherCurrentSystem {
		return form.CurrentSystem
	}
	if other := strings.TrimSpace(form.CurrentSystemOther); other != "" {
		return OtherCurrentSystem + ": " + other
	}
	return OtherCurrentSystem
}

func BuildGoals(form Form) string {
	details := make([]string, 0, 2)
	if reason := strings.TrimSpace(form.CrmChangeReason); reason != "" {
		details = append(details, "CRM context:\n"+reason)
	}
	if notes := strings.TrimSpace(form.PilotNotes); notes != "" {
		details = append(details, "Pilot notes:\n"+notes)
	}
	return strings.Join(details, "\n\n")
}

// AssembleSubmission is a pure transform; it expects a form that already
// passed RequiredMissing.
func AssembleSubmission(form Form, honeypot string) SubmissionPayload {
	normalized := form
	normalized.ContactEmail = NormalizeEmail(form.ContactEmail)

	return SubmissionPayload{
		FormVersion: FormVersionV1,
		Form:        normalized,
		Honeypot:    honeypot,
		Legacy: LegacyFields{
			Name:         strings.TrimSpace(form.ContactName),
			Email:        normalized.ContactEmail,
			Organization: strings.TrimSpace(form.OrgName),
			CurrentCrm:   BuildCurrentCrm(form),
			Goals:        BuildGoals(form),
		},
	}
}
