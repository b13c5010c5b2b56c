package usecases

import (
	"context"
	"strings"

	"pilot-server/internal/application/domain"
)

//go:generate mockgen -source=capture_port.go -destination=../../../test/unit/doubles/application/usecases/capture_port_mock.go -package=usecases

type CaptureMode string

const (
	CaptureModeNDJSON       CaptureMode = "ndjson"
	CaptureModeGoogleSheets CaptureMode = "google_sheets"
	CaptureModeDatabase     CaptureMode = "database"
)

// ParseCaptureMode is case-insensitive; anything unknown means ndjson.
func ParseCaptureMode(value string) CaptureMode {
	switch mode := CaptureMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case CaptureModeGoogleSheets, CaptureModeDatabase:
		return mode
	default:
		return CaptureModeNDJSON
	}
}

// EchoesRequestID reports whether successful responses carry the request id.
func (m CaptureMode) EchoesRequestID() bool {
	return m != CaptureModeNDJSON
}

// CaptureBackend persists accepted applications. Implementations must not
// keep per-request state; concurrent calls are expected.
type CaptureBackend interface {
	Mode() CaptureMode
	// MissingConfiguration names the settings that prevent capturing, never
	// their values.
	MissingConfiguration() []string
	Capture(ctx context.Context, requestID string, record domain.CapturedRecord) error
}
