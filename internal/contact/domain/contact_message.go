package domain

import (
	"strings"

	"pilot-server/internal/infra/utils"
	shared "pilot-server/internal/shared_kernel/domain"
)

const (
	DefaultContactSource = "unknown"
	DefaultSubjectPrefix = "[Contact]"

	_pageURLNotProvided = "(not provided)"
)

// ContactMessage is a message left through the contact panel.
type ContactMessage struct {
	Name        string
	Email       string
	Message     string
	Source      string
	PageURL     string
	SubmittedAt utils.Time
	Honeypot    shared.Honeypot
}

func NewContactMessage(body shared.RequestBody) ContactMessage {
	source := body.String("source")
	if source == "" {
		source = DefaultContactSource
	}
	return ContactMessage{
		Name:     body.String("name"),
		Email:    body.String("email"),
		Message:  body.String("message"),
		Source:   source,
		PageURL:  body.String("pageUrl"),
		Honeypot: shared.HoneypotFrom(body),
	}
}

func (m ContactMessage) Validate() error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return ErrMissingRequiredFields
	}
	if !utils.IsValidEmail(m.Email) {
		return ErrInvalidEmail
	}
	return nil
}

func (m ContactMessage) Subject(prefix string) string {
	return prefix + " " + m.Name
}

// EmailBody renders the plain-text notification. Carriage returns are
// stripped so submitted text cannot forge extra lines.
func (m ContactMessage) EmailBody(prefix string) string {
	pageURL := utils.StripCarriageReturns(m.PageURL)
	if pageURL == "" {
		pageURL = _pageURLNotProvided
	}

	return strings.Join([]string{
		prefix + " New message",
		"",
		"Name: " + utils.StripCarriageReturns(m.Name),
		"Email: " + utils.StripCarriageReturns(m.Email),
		"Source: " + utils.StripCarriageReturns(m.Source),
		"Page URL: " + pageURL,
		"Submitted At: " + m.SubmittedAt.String(),
		"",
		"Message:",
		utils.StripCarriageReturns(m.Message),
	}, "\n")
}
