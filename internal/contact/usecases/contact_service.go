package usecases

import (
	"context"
	"log/slog"

	"pilot-server/internal/contact/domain"
	"pilot-server/internal/infra/notification"
	"pilot-server/internal/infra/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=contact_service.go -destination=../../../test/unit/doubles/contact/usecases/contact_service_mock.go -package=usecases

type ContactOutcome string

const (
	ContactDelivered ContactOutcome = "delivered"
	ContactDropped   ContactOutcome = "dropped"
)

type ContactService interface {
	Send(ctx context.Context, requestID string, message domain.ContactMessage) (ContactOutcome, error)
}

func NewContactService(settings ContactSettings, sender notification.EmailSender) *SimpleContactService {
	meter := otel.Meter("pilot_server")
	messageCounter, _ := meter.Int64Counter(
		"pilot_server.contact_messages.total",
		metric.WithDescription("Contact messages received by outcome"),
	)

	return &SimpleContactService{
		settings:       settings,
		sender:         sender,
		now:            utils.Now,
		messageCounter: messageCounter,
	}
}

var _ ContactService = (*SimpleContactService)(nil)

type SimpleContactService struct {
	settings       ContactSettings
	sender         notification.EmailSender
	now            func() utils.Time
	messageCounter metric.Int64Counter
}

func (s *SimpleContactService) WithClock(now func() utils.Time) *SimpleContactService {
	s.now = now
	return s
}

func (s *SimpleContactService) Send(ctx context.Context, requestID string, message domain.ContactMessage) (ContactOutcome, error) {
	message.SubmittedAt = s.now()

	if message.Honeypot.Tripped() {
		slog.Info("honeypot tripped, dropping contact message", slog.String("request_id", requestID))
		s.count(ctx, "dropped")
		return ContactDropped, nil
	}

	if err := message.Validate(); err != nil {
		s.count(ctx, "rejected")
		return "", err
	}

	if missing := s.settings.Missing(); len(missing) > 0 {
		slog.Error("contact email not configured",
			slog.String("request_id", requestID),
			slog.Any("missing", missing),
		)
		s.count(ctx, "misconfigured")
		return "", &EmailNotConfiguredError{Required: s.settings.Required(), Missing: missing}
	}

	ctx, span := otel.Tracer("pilot_server").Start(ctx, "send-contact-email",
		trace.WithAttributes(
			attribute.String("request_id", requestID),
			attribute.String("email_provider", s.settings.provider()),
			attribute.String("source", message.Source),
		),
	)
	defer span.End()

	prefix := s.settings.Prefix()
	err := s.sender.SendEmail(ctx, notification.EmailRequest{
		From:    s.settings.FromEmail,
		To:      s.settings.ToEmail,
		ReplyTo: message.Email,
		Subject: message.Subject(prefix),
		Body:    message.EmailBody(prefix),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "email send failed")
		slog.Error("contact email failed",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		s.count(ctx, "failed")
		return "", err
	}

	slog.Info("contact message delivered",
		slog.String("request_id", requestID),
		slog.String("source", message.Source),
	)
	s.count(ctx, "delivered")
	return ContactDelivered, nil
}

func (s *SimpleContactService) count(ctx context.Context, outcome string) {
	if s.messageCounter == nil {
		return
	}
	s.messageCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
