package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/application/usecases"
)

const DefaultSubmissionsPath = "/tmp/fundraising-pilot-applications.ndjson"

func NewNDJSONCapture(path string) *NDJSONCapture {
	if path == "" {
		path = DefaultSubmissionsPath
	}
	return &NDJSONCapture{path: path}
}

var _ usecases.CaptureBackend = (*NDJSONCapture)(nil)

// NDJSONCapture appends one JSON document per line. Each line goes out in a
// single write on an O_APPEND descriptor, so concurrent requests never
// interleave inside a line.
type NDJSONCapture struct {
	path string
}

func (c *NDJSONCapture) Mode() usecases.CaptureMode {
	return usecases.CaptureModeNDJSON
}

func (c *NDJSONCapture) MissingConfiguration() []string {
	return nil
}

func (c *NDJSONCapture) Capture(ctx context.Context, requestID string, record domain.CapturedRecord) error {
	var line bytes.Buffer
	encoder := json.NewEncoder(&line)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	file, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := file.Write(line.Bytes()); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func (c *NDJSONCapture) Path() string {
	return c.path
}
