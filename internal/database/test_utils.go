package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a migrated in-memory database for tests in this and
// other packages. Cleanup is registered on t.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(NewMemoryOptions())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, db.MigrateDatabase())
	return db
}
