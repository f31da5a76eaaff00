// Package client wires the local database, repositories, remote API client
// and services that make up the TailorSync client.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/tailorapp898-afk/tailorsync/internal/client/migrations"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/records"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/settings"
)

// Repositories bundles the local-store repositories handed to services.
type Repositories struct {
	Records  records.Repository
	Settings settings.Repository

	db *sql.DB
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.db.Close()
}

// RunMigrations applies the embedded goose migrations. Safe to call on every
// startup; goose skips versions that are already applied.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the SQLite database at dsn, applies
// migrations and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Repositories{
		Records:  records.NewSQLiteRepository(db),
		Settings: settings.NewSQLiteRepository(db),
		db:       db,
	}, nil
}
