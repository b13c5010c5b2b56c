package notification

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mailersend/mailersend-go"
)

const ProviderMailerSend = "mailersend"

// MailerSendConfig holds configuration for MailerSend client
type MailerSendConfig struct {
	APIKey   string
	FromName string
	// BaseURL redirects API calls to another host, for tests.
	BaseURL    string
	HTTPClient *http.Client
}

var _ EmailSender = (*MailerSendClient)(nil)

// MailerSendClient implements EmailSender using MailerSend API
type MailerSendClient struct {
	client   *mailersend.Mailersend
	fromName string
}

// NewMailerSendClient creates a new MailerSend client
func NewMailerSendClient(config MailerSendConfig) (*MailerSendClient, error) {
	var baseURL *url.URL
	if config.BaseURL != "" {
		parsed, err := url.Parse(config.BaseURL)
		if err != nil {
			return nil, &NotificationError{Message: "invalid mailersend base url", Err: err}
		}
		baseURL = parsed
	}

	client := mailersend.NewMailersend(config.APIKey)
	client.SetClient(newRecordingClient(config.HTTPClient, baseURL))

	return &MailerSendClient{
		client:   client,
		fromName: config.FromName,
	}, nil
}

// SendEmail makes exactly one attempt.
func (c *MailerSendClient) SendEmail(ctx context.Context, request EmailRequest) error {
	ctx, failure := withFailureRecorder(ctx)

	message := c.client.Email.NewMessage()

	message.SetFrom(mailersend.From{
		Email: request.From,
		Name:  c.fromName,
	})

	message.SetRecipients([]mailersend.Recipient{
		{
			Email: request.To,
		},
	})

	if request.ReplyTo != "" {
		message.SetReplyTo(mailersend.ReplyTo{
			Email: request.ReplyTo,
		})
	}

	message.SetSubject(request.Subject)
	message.SetText(request.Body)

	_, err := c.client.Email.Send(ctx, message)
	if failure.recorded() {
		return &SendError{Provider: ProviderMailerSend, StatusCode: failure.statusCode, Body: failure.body}
	}
	if err != nil {
		return &NotificationError{Message: "MailerSend API error", Err: err}
	}

	return nil
}
