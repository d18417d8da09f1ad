// Package dbtest provides a migrated in-memory database for adapter tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dividend_backend/internal/platform/db"
)

// New returns a migrated in-memory sqlite database with the default currencies seeded.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	require.NoError(t, err, "failed to initialize test database")

	// Every pooled connection would otherwise get its own empty database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb), "failed to migrate tables")
	return gdb
}
