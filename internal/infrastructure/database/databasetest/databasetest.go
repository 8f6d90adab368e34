// Package databasetest opens throwaway stores for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"mediguard-api/config"
	"mediguard-api/internal/infrastructure/database"

	"gorm.io/gorm"
)

// New returns a migrated SQLite store in a fresh temp dir, closed on cleanup.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := database.NewConnection(config.DBConfig{
		Driver:   database.DriverSQLite,
		Path:     filepath.Join(tb.TempDir(), "test.db"),
		LogLevel: "silent",
	})
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}
	tb.Cleanup(func() {
		database.Close(db)
	})
	return db
}
