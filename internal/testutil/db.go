package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/roped/internal/domain"
	"github.com/footprint-tools/roped/internal/store"
	"github.com/footprint-tools/roped/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a history store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedHistory records the entries in order.
func SeedHistory(t *testing.T, s domain.HistoryStore, entries []domain.HistoryEntry) {
	t.Helper()

	for _, entry := range entries {
		err := s.Record(entry)
		require.NoError(t, err, "failed to seed entry: %+v", entry)
	}
}
