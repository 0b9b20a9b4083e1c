package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dia-companion/internal/logger"
)

const (
	kvTable = "kv_entries"

	createKVTable = `CREATE TABLE IF NOT EXISTS kv_entries (
    entry_key   TEXT PRIMARY KEY,
    entry_value BLOB NOT NULL
);`
)

// sqliteMedium is a [KVMedium] backed by a single SQLite table on its own
// connection, separate from the document store.
type sqliteMedium struct {
	db *DB
}

// NewSQLiteMedium opens (creating when needed) the SQLite file at dsn and
// prepares the key-value table.
func NewSQLiteMedium(ctx context.Context, dsn string, log *logger.Logger) (KVMedium, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if _, err = db.ExecContext(ctx, createKVTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteMedium").Msg("error creating key-value table")
		_ = db.Close()
		return nil, fmt.Errorf("error creating key-value table: %w", err)
	}

	return &sqliteMedium{db: db}, nil
}

func (m *sqliteMedium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := m.db.builder().
		Select("entry_value").
		From(kvTable).
		Where(sq.Eq{"entry_key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = m.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// Set writes key in one upsert statement.
func (m *sqliteMedium) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := m.db.builder().
		Insert(kvTable).
		Columns("entry_key", "entry_value").
		Values(key, value).
		Suffix("ON CONFLICT(entry_key) DO UPDATE SET entry_value = excluded.entry_value").
		ToSql()

	_, err = execBuilt(ctx, m.db, query, args, err)
	return err
}

func (m *sqliteMedium) Delete(ctx context.Context, key string) error {
	query, args, err := m.db.builder().
		Delete(kvTable).
		Where(sq.Eq{"entry_key": key}).
		ToSql()

	_, err = execBuilt(ctx, m.db, query, args, err)
	return err
}

func (m *sqliteMedium) Close() error {
	return m.db.Close()
}
