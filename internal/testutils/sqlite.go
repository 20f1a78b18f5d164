package testutils

import (
	"testing"

	"field-marketing-backend/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a migrated in-memory database for fast unit tests.
// The pool is pinned to one connection because every sqlite :memory:
// connection is a separate database.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), &database.Options{
		LogLevel:           logger.Silent,
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		DisableForeignKeys: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
