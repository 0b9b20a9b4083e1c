package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// collection implements the CRUD shared by every per-user table. Reads
// follow the soft-fail policy: any failure is logged and an empty list is
// returned. Writes surface their errors.
type collection[T any] struct {
	store   *DocumentStore
	ids     *utils.UUIDGenerator
	table   string
	columns []string

	// row converts an item into column values, in columns order.
	row func(item T) ([]any, error)
	// scan reads one row produced by a SELECT of columns.
	scan func(s rowScanner) (T, error)
	// datetime returns the timestamp the listing is ordered by.
	datetime func(item T) string
}

func (c *collection[T]) add(ctx context.Context, item T) error {
	log := logger.FromContext(ctx)

	db, err := c.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "collection.add").Str("table", c.table).Msg("document store is unavailable")
		return err
	}

	values, err := c.row(item)
	if err != nil {
		log.Err(err).Str("func", "collection.add").Str("table", c.table).Msg("failed to encode item")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, buildErr := buildInsertQuery(db.builder(), c.table, c.columns, values)
	if _, err = execBuilt(ctx, db, query, args, buildErr); err != nil {
		log.Err(err).
			Str("func", "collection.add").
			Str("table", c.table).
			Bool("retryable", db.retryable(err)).
			Msg("failed to insert item")
		return err
	}

	return nil
}

func (c *collection[T]) getAll(ctx context.Context, email string) []T {
	log := logger.FromContext(ctx)
	items := make([]T, 0)

	db, err := c.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "collection.getAll").Str("table", c.table).Msg("document store is unavailable, returning empty list")
		return items
	}

	query, args, err := buildSelectByUserQuery(db.builder(), c.table, c.columns, email)
	if err != nil {
		log.Err(err).Str("func", "collection.getAll").Str("table", c.table).Msg("failed to create query")
		return items
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collection.getAll").
			Str("table", c.table).
			Bool("retryable", db.retryable(err)).
			Msg("failed to execute query, returning empty list")
		return items
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := c.scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "collection.getAll").Str("table", c.table).Msg("failed to scan row, returning empty list")
			return make([]T, 0)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "collection.getAll").Str("table", c.table).Msg("error occurred during rows iteration, returning empty list")
		return make([]T, 0)
	}

	sortNewestFirst(items, c.datetime)
	return items
}

// delete removes the item with id owned by email. Deleting a missing id
// succeeds.
func (c *collection[T]) delete(ctx context.Context, email, id string) error {
	log := logger.FromContext(ctx)

	db, err := c.store.Open(ctx)
	if err != nil {
		log.Err(err).Str("func", "collection.delete").Str("table", c.table).Msg("document store is unavailable")
		return err
	}

	query, args, buildErr := buildDeleteByIDQuery(db.builder(), c.table, email, id)
	if _, err = execBuilt(ctx, db, query, args, buildErr); err != nil {
		log.Err(err).
			Str("func", "collection.delete").
			Str("table", c.table).
			Str("id", id).
			Bool("retryable", db.retryable(err)).
			Msg("failed to delete item")
		return err
	}

	return nil
}

func sortNewestFirst[T any](items []T, datetime func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return models.ParseDatetime(datetime(items[i])).After(models.ParseDatetime(datetime(items[j])))
	})
}
