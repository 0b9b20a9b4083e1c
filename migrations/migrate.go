// Package migrations embeds the schema of the document store and applies it
// with goose. Every migration is additive and idempotent, so re-running an
// interrupted upgrade is safe.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// TargetVersion is the schema version the application expects. It equals the
// number of the newest embedded migration.
const TargetVersion int64 = 5

// Dialects understood by [Migrate].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

var errNilDB = errors.New("db is nil")

// goose keeps its configuration in package globals.
var mu sync.Mutex

// Migrate upgrades db to [TargetVersion], applying only pending migrations.
// When log is nil goose output is discarded.
func Migrate(db *sql.DB, dialect string, log goose.Logger) error {
	return MigrateTo(db, dialect, TargetVersion, log)
}

// MigrateTo upgrades db up to and including version.
func MigrateTo(db *sql.DB, dialect string, version int64, log goose.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	mu.Lock()
	defer mu.Unlock()

	if err := setup(dialect, log); err != nil {
		return err
	}

	if err := goose.UpTo(db, ".", version); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version reports the schema version currently applied to db.
func Version(db *sql.DB, dialect string) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", errNilDB)
	}

	mu.Lock()
	defer mu.Unlock()

	if err := setup(dialect, nil); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("migration error reading version: %w", err)
	}

	return version, nil
}

func setup(dialect string, log goose.Logger) error {
	goose.SetBaseFS(embedMigrations)

	if log == nil {
		goose.SetLogger(goose.NopLogger())
	} else {
		goose.SetLogger(log)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return nil
}
