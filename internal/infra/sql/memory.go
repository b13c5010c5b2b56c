package sql

import (
	"fmt"

	"pilot-server/internal/infra/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewMemoryORM opens a private in-memory sqlite database, mostly for tests.
// Every call gets its own database.
func NewMemoryORM() (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateUUID())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true}, nil
}

func NewSQLiteORM(path string) (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db %s: %w", path, err)
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _queryTimeout,
	}, nil
}
