package repository

import (
	"testing"

	"github.com/gracechapel/api/internal/db"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)

	// One connection: each in-memory SQLite connection is its own database
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close() })
	return database
}

func strPtr(s string) *string {
	return &s
}
