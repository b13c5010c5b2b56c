package usecases

import (
	"context"
	"log/slog"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/infra/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=intake_service.go -destination=../../../test/unit/doubles/application/usecases/intake_service_mock.go -package=usecases

type IntakeOutcome string

const (
	IntakeAccepted IntakeOutcome = "accepted"
	IntakeDropped  IntakeOutcome = "dropped"
)

type IntakeReceipt struct {
	Outcome IntakeOutcome
	Mode    CaptureMode
}

type IntakeService interface {
	Submit(ctx context.Context, requestID string, request domain.IntakeRequest) (IntakeReceipt, error)
}

func NewIntakeService(backend CaptureBackend) *SimpleIntakeService {
	meter := otel.Meter("pilot_server")
	applicationCounter, _ := meter.Int64Counter(
		"pilot_server.applications.total",
		metric.WithDescription("Applications received by outcome"),
	)

	return &SimpleIntakeService{
		backend:            backend,
		now:                utils.Now,
		applicationCounter: applicationCounter,
	}
}

var _ IntakeService = (*SimpleIntakeService)(nil)

type SimpleIntakeService struct {
	backend            CaptureBackend
	now                func() utils.Time
	applicationCounter metric.Int64Counter
}

// WithClock replaces the source of submittedAt timestamps.
func (s *SimpleIntakeService) WithClock(now func() utils.Time) *SimpleIntakeService {
	s.now = now
	return s
}

// Submit runs the intake pipeline. Backend failures are returned unwrapped so
// their message can be surfaced in debug mode.
func (s *SimpleIntakeService) Submit(ctx context.Context, requestID string, request domain.IntakeRequest) (IntakeReceipt, error) {
	mode := s.backend.Mode()
	receipt := IntakeReceipt{Mode: mode}

	if request.Honeypot.Tripped() {
		slog.Info("honeypot tripped, dropping application", slog.String("request_id", requestID))
		s.count(ctx, mode, "dropped")
		receipt.Outcome = IntakeDropped
		return receipt, nil
	}

	if err := request.Validate(); err != nil {
		s.count(ctx, mode, "rejected")
		return receipt, err
	}

	record := domain.NewCapturedRecord(request, s.now())

	if missing := s.backend.MissingConfiguration(); len(missing) > 0 {
		err := &CaptureMisconfiguredError{Mode: mode, Missing: missing}
		slog.Error("capture backend not configured",
			slog.String("request_id", requestID),
			slog.String("capture_mode", string(mode)),
			slog.Any("missing", missing),
		)
		s.count(ctx, mode, "misconfigured")
		return receipt, err
	}

	ctx, span := otel.Tracer("pilot_server").Start(ctx, "capture-application",
		trace.WithAttributes(
			attribute.String("request_id", requestID),
			attribute.String("capture_mode", string(mode)),
		),
	)
	defer span.End()

	if err := s.backend.Capture(ctx, requestID, record); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "capture failed")
		s.count(ctx, mode, "failed")
		return receipt, err
	}

	slog.Info("application captured",
		slog.String("request_id", requestID),
		slog.String("capture_mode", string(mode)),
	)
	s.count(ctx, mode, "accepted")
	receipt.Outcome = IntakeAccepted
	return receipt, nil
}

func (s *SimpleIntakeService) count(ctx context.Context, mode CaptureMode, outcome string) {
	if s.applicationCounter == nil {
		return
	}
	s.applicationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("capture_mode", string(mode)),
		attribute.String("outcome", outcome),
	))
}
