// Package repotest provides migrated databases for tests.
package repotest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fedora-infra/spechub/internal/config"
	"github.com/fedora-infra/spechub/internal/repository"
)

// SetupTestDB returns a migrated SQLite database living in a temporary directory.
// The database is closed when the test ends.
func SetupTestDB(t testing.TB) *sql.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "spechub.sqlite"),
		ConnMaxLifetime: time.Hour,
	}

	ctx := context.Background()
	db, err := repository.Open(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = repository.Migrate(ctx, db, cfg.Driver)
	require.NoError(t, err)

	return db
}

// CleanupTestDB deletes all rows in reverse order of dependencies.
func CleanupTestDB(t testing.TB, db *sql.DB) {
	t.Helper()

	tables := []string{
		"pull_request_comments",
		"pull_requests",
		"projects",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err, "failed to clean table %s", table)
	}
}
