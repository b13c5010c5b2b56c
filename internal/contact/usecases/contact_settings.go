package usecases

import (
	"strings"

	"pilot-server/internal/contact/domain"
)

const (
	ProviderResend     = "resend"
	ProviderMailerSend = "mailersend"
)

type ContactSettings struct {
	Provider      string
	APIKey        string
	FromEmail     string
	ToEmail       string
	SubjectPrefix string
}

func (s ContactSettings) provider() string {
	if strings.EqualFold(strings.TrimSpace(s.Provider), ProviderMailerSend) {
		return ProviderMailerSend
	}
	return ProviderResend
}

func (s ContactSettings) APIKeyVariable() string {
	if s.provider() == ProviderMailerSend {
		return "MAILERSEND_API_KEY"
	}
	return "RESEND_API_KEY"
}

func (s ContactSettings) Required() []string {
	return []string{s.APIKeyVariable(), "CONTACT_FROM_EMAIL", "CONTACT_TO_EMAIL"}
}

func (s ContactSettings) Missing() []string {
	var missing []string
	values := []string{s.APIKey, s.FromEmail, s.ToEmail}
	for i, name := range s.Required() {
		if strings.TrimSpace(values[i]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func (s ContactSettings) Prefix() string {
	if strings.TrimSpace(s.SubjectPrefix) == "" {
		return domain.DefaultSubjectPrefix
	}
	return s.SubjectPrefix
}
