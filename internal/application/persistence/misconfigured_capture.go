package persistence

import (
	"context"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/application/usecases"
)

// NewMisconfiguredCapture stands in for a backend whose settings are too
// incomplete to even construct it.
func NewMisconfiguredCapture(mode usecases.CaptureMode, missing ...string) *MisconfiguredCapture {
	return &MisconfiguredCapture{mode: mode, missing: missing}
}

var _ usecases.CaptureBackend = (*MisconfiguredCapture)(nil)

type MisconfiguredCapture struct {
	mode    usecases.CaptureMode
	missing []string
}

func (c *MisconfiguredCapture) Mode() usecases.CaptureMode {
	return c.mode
}

func (c *MisconfiguredCapture) MissingConfiguration() []string {
	return c.missing
}

func (c *MisconfiguredCapture) Capture(context.Context, string, domain.CapturedRecord) error {
	return &usecases.CaptureMisconfiguredError{Mode: c.mode, Missing: c.missing}
}
