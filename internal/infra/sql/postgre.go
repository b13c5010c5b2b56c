package sql

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

func ParseDriver(value string) Driver {
	switch Driver(strings.ToLower(strings.TrimSpace(value))) {
	case DriverSQLite:
		return DriverSQLite
	default:
		return DriverPostgres
	}
}

func NewPostgresORM(dsn string) (*DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %w", err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
	}, nil
}

// Open picks the gorm dialect for driver.
func Open(driver Driver, dsn string) (ORM, error) {
	var (
		db  *DB
		err error
	)
	switch driver {
	case DriverSQLite:
		db, err = NewSQLiteORM(dsn)
	default:
		db, err = NewPostgresORM(dsn)
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}
