package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

//go:generate mockgen -source=orm.go -destination=../../../test/unit/doubles/infra/sql/orm_mock.go -package=sql -mock_names=ORM=MockORM

// ORM is the subset of gorm the capture tables need. Rows are only ever
// inserted.
type ORM interface {
	AutoMigrate(dst ...any) error
	Create(value any) ORM
	WithContext(ctx context.Context) ORM

	Error() error
}

type DB struct {
	*gorm.DB
	autoMigrationEnabled bool
	timeout              time.Duration
}

var ErrDuplicatedKey = errors.New("duplicated key")

func (d DB) Error() error {
	switch {
	case errors.Is(d.DB.Error, gorm.ErrDuplicatedKey):
		return ErrDuplicatedKey
	case d.DB.Error != nil:
		return fmt.Errorf("database error: %w", d.DB.Error)
	default:
		return nil
	}
}

var _ ORM = (*DB)(nil)

func (d DB) AutoMigrate(dst ...any) error {
	if d.autoMigrationEnabled {
		return d.DB.AutoMigrate(dst...)
	}

	return nil
}

func (d DB) Create(value any) ORM {
	d.setSpanAttributes("create")
	tx := d.DB.Create(value)
	d.DB = tx
	return &d
}

// WithContext bounds the statement by the configured query timeout, if any.
func (d DB) WithContext(value context.Context) ORM {
	if d.timeout > 0 {
		timeoutCtx, cancel := context.WithTimeout(value, d.timeout)
		// cancel runs once the deadline passes or the parent is done
		go func() {
			<-timeoutCtx.Done()
			cancel()
		}()
		value = timeoutCtx
	}

	tx := d.DB.WithContext(value)
	d.DB = tx
	return &d
}

func (d DB) setSpanAttributes(operation string) {
	if ctx := d.DB.Statement.Context; ctx != nil {
		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String("span.kind", "client"),
				attribute.String("component", "database"),
				attribute.String("db.system", d.DB.Dialector.Name()),
				attribute.String("db.operation", operation),
			)
		}
	}
}
