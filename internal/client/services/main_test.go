package services

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/records"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/settings"
	"github.com/tailorapp898-afk/tailorsync/internal/logging"
	_ "modernc.org/sqlite"
)

// setupRepos opens an in-memory store with the production schema and returns
// the repositories services are built on.
func setupRepos(t *testing.T) (*records.SQLiteRepository, *settings.SQLiteRepository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  collection TEXT NOT NULL,
  id TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL DEFAULT '',
  synced INTEGER NOT NULL DEFAULT 0,
  fields TEXT NOT NULL DEFAULT '{}',
  PRIMARY KEY (collection, id)
);
CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);
`)
	require.NoError(t, err)

	return records.NewSQLiteRepository(db), settings.NewSQLiteRepository(db)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
