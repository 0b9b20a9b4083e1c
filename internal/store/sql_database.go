package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/migrations"
)

// DB is an open document store connection together with the
// driver-specific pieces the repositories need: the goose dialect, the
// placeholder format and the error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Connect opens the document store described by dsn. "postgres://" and
// "postgresql://" DSNs open PostgreSQL, anything else is a SQLite file.
func Connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(dsn) {
		return NewConnectPostgres(ctx, dsn, log)
	}
	return NewConnectSQLite(ctx, dsn, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	var log goose.Logger
	if db.logger != nil {
		log = db.logger
	}
	return migrations.Migrate(db.DB, db.dialect, log)
}

// SchemaVersion reports the schema version applied to the database.
func (db *DB) SchemaVersion() (int64, error) {
	return migrations.Version(db.DB, db.dialect)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execBuilt(ctx context.Context, ex execer, query string, args []any, buildErr error) (sql.Result, error) {
	if buildErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}
	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res, nil
}
