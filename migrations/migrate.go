// Package migrations holds the embedded schema migrations for every
// supported database driver and applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// dialects maps database/sql driver names to goose dialects and the
// directory holding their migrations.
var dialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"pgx":     {goose.DialectPostgres, "postgres"},
	"sqlite3": {goose.DialectSQLite3, "sqlite"},
}

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	fsys, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", d.dir, err)
	}

	provider, err := goose.NewProvider(d.dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
