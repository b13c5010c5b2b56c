package driver

import (
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"

	applicationHTTPAPI "pilot-server/internal/application/httpapi"
	"pilot-server/internal/application/persistence"
	applicationUsecases "pilot-server/internal/application/usecases"
	contactHTTPAPI "pilot-server/internal/contact/httpapi"
	contactUsecases "pilot-server/internal/contact/usecases"
	"pilot-server/internal/infra/httpserver"
	"pilot-server/internal/infra/notification"
)

const (
	AllowedOrigin = "https://pilot.example.org"
	FromEmail     = "pilot@example.org"
	ToEmail       = "team@example.org"
)

// Environment is a pilot server wired to an NDJSON file and a fake Resend
// API, served in-process.
type Environment struct {
	API             *APIDriver
	Provider        *FakeProvider
	SubmissionsPath string

	dir    string
	server *httptest.Server
}

func StartEnvironment() (*Environment, error) {
	dir, err := os.MkdirTemp("", "pilot-functional-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	submissionsPath := filepath.Join(dir, "applications.ndjson")

	provider := NewFakeProvider()
	sender, err := notification.NewResendClient(notification.ResendConfig{
		APIKey:  "re_functional",
		BaseURL: provider.URL() + "/",
	})
	if err != nil {
		provider.Close()
		return nil, err
	}

	intake := applicationUsecases.NewIntakeService(persistence.NewNDJSONCapture(submissionsPath))
	contact := contactUsecases.NewContactService(contactUsecases.ContactSettings{
		Provider:  contactUsecases.ProviderResend,
		APIKey:    "re_functional",
		FromEmail: FromEmail,
		ToEmail:   ToEmail,
	}, sender)

	handler := httpserver.NewServer(
		httpserver.ServerOptions{AllowedOrigins: []string{AllowedOrigin}},
		applicationHTTPAPI.NewApplyController(intake, applicationHTTPAPI.ApplyControllerConfig{}),
		contactHTTPAPI.NewContactController(contact),
	).Handler()
	server := httptest.NewServer(handler)

	return &Environment{
		API:             NewAPIDriver(server.URL),
		Provider:        provider,
		SubmissionsPath: submissionsPath,
		dir:             dir,
		server:          server,
	}, nil
}

// Reset forgets captured applications and provider traffic.
func (e *Environment) Reset() error {
	e.Provider.Reset()
	if err := os.Remove(e.SubmissionsPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (e *Environment) Close() {
	e.server.Close()
	e.Provider.Close()
	_ = os.RemoveAll(e.dir)
}
