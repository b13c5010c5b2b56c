package notification

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=notification_client.go -destination=../../../test/unit/doubles/infra/notification/notification_client_mock.go -package=notification -mock_names=EmailSender=MockEmailSender

// EmailSender relays a plain-text email through a transactional provider.
type EmailSender interface {
	SendEmail(ctx context.Context, request EmailRequest) error
}

// EmailRequest represents the data needed to send an email notification
type EmailRequest struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// SendError is a non-2xx answer from the email provider.
type SendError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("Email send failed: %d %s", e.StatusCode, e.Body)
}

// NotificationError represents a failure that never reached the provider,
// or whose answer could not be read.
type NotificationError struct {
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
