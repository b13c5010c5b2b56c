package notification

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/resend/resend-go/v2"
)

const (
	ProviderResend = "resend"

	_sendTimeout = 30 * time.Second
)

// ResendConfig holds configuration for the Resend client
type ResendConfig struct {
	APIKey string
	// BaseURL overrides https://api.resend.com/ when set.
	BaseURL    string
	HTTPClient *http.Client
}

var _ EmailSender = (*ResendClient)(nil)

// ResendClient implements EmailSender using the Resend API
type ResendClient struct {
	client *resend.Client
}

func NewResendClient(config ResendConfig) (*ResendClient, error) {
	client := resend.NewCustomClient(newRecordingClient(config.HTTPClient, nil), config.APIKey)

	if config.BaseURL != "" {
		baseURL, err := url.Parse(config.BaseURL)
		if err != nil {
			return nil, &NotificationError{Message: "invalid resend base url", Err: err}
		}
		client.BaseURL = baseURL
	}

	return &ResendClient{client: client}, nil
}

// SendEmail makes exactly one attempt.
func (c *ResendClient) SendEmail(ctx context.Context, request EmailRequest) error {
	ctx, failure := withFailureRecorder(ctx)

	_, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    request.From,
		To:      []string{request.To},
		ReplyTo: request.ReplyTo,
		Subject: request.Subject,
		Text:    request.Body,
	})
	if failure.recorded() {
		return &SendError{Provider: ProviderResend, StatusCode: failure.statusCode, Body: failure.body}
	}
	if err != nil {
		return &NotificationError{Message: "Resend API error", Err: err}
	}

	return nil
}
