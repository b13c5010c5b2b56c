package client

import (
	"context"
	"net/http"

	"pilot-server/internal/application/domain"
)

type ContactRequest struct {
	Name     string
	Email    string
	Message  string
	Source   string
	PageURL  string
	Honeypot string
}

type contactBody struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Message string     `json:"message"`
	Source  string     `json:"source"`
	PageURL string     `json:"pageUrl"`
	UTM     contactUTM `json:"utm"`
	Website string     `json:"website"`
}

// The contact panel has always sent the campaign keys without their prefix.
type contactUTM struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Content  string `json:"content,omitempty"`
	Term     string `json:"term,omitempty"`
}

func newContactUTM(pageURL string) contactUTM {
	return contactUTM(domain.UTMFromURL(pageURL))
}

var _ ContactSender = (*ContactClient)(nil)

type ContactClient struct {
	api apiClient
}

func NewContactClient(baseURL string, httpClient *http.Client) *ContactClient {
	return &ContactClient{api: newAPIClient(baseURL, httpClient)}
}

func (c *ContactClient) Send(ctx context.Context, request ContactRequest) error {
	source := request.Source
	if source == "" {
		source = domain.DefaultContactSource
	}

	_, err := c.api.post(ctx, "/api/contact", contactBody{
		Name:    request.Name,
		Email:   request.Email,
		Message: request.Message,
		Source:  source,
		PageURL: request.PageURL,
		UTM:     newContactUTM(request.PageURL),
		Website: request.Honeypot,
	})
	return err
}
