package usecases

import (
	"fmt"
	"strings"
)

// CaptureMisconfiguredError is answered with its own message whatever the
// debug setting, since it only names environment variables.
type CaptureMisconfiguredError struct {
	Mode    CaptureMode
	Missing []string
}

func (e *CaptureMisconfiguredError) Error() string {
	switch e.Mode {
	case CaptureModeGoogleSheets:
		return "Google Sheets capture not configured (missing GOOGLE_* env vars)"
	case CaptureModeDatabase:
		return "Database capture not configured (missing DATABASE_* env vars)"
	default:
		return fmt.Sprintf("%s capture not configured (missing %s)", e.Mode, strings.Join(e.Missing, ", "))
	}
}

// UpstreamError is a non-2xx answer from a remote dependency.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %d %s", e.Operation, e.StatusCode, e.Body)
}
