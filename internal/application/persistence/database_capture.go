package persistence

import (
	"context"
	"fmt"

	"pilot-server/internal/application/domain"
	"pilot-server/internal/application/persistence/internal"
	"pilot-server/internal/application/usecases"
	"pilot-server/internal/infra/sql"
)

func NewDatabaseCapture(orm sql.ORM) (*DatabaseCapture, error) {
	err := orm.AutoMigrate(&internal.ApplicationRecord{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &DatabaseCapture{
		orm: orm,
	}, nil
}

var _ usecases.CaptureBackend = (*DatabaseCapture)(nil)

// DatabaseCapture inserts one row per application keyed by request id. Rows
// are never updated.
type DatabaseCapture struct {
	orm sql.ORM
}

func (c *DatabaseCapture) Mode() usecases.CaptureMode {
	return usecases.CaptureModeDatabase
}

func (c *DatabaseCapture) MissingConfiguration() []string {
	return nil
}

func (c *DatabaseCapture) Capture(ctx context.Context, requestID string, record domain.CapturedRecord) error {
	entity := internal.FromCapturedRecord(requestID, record)
	err := c.orm.
		WithContext(ctx).
		Create(&entity).
		Error()

	if err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}

	return nil
}
