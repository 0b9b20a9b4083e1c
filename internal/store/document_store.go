// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/dia-companion/internal/logger"
)

// DocumentStore owns the process-wide document store connection.
//
// The connection is opened lazily by [DocumentStore.Open], migrated to the
// current schema version and cached. A failed attempt is not cached, so a
// later call retries. Callers that arrive while an attempt is in progress
// wait for it and reuse its connection.
type DocumentStore struct {
	dsn    string
	logger *logger.Logger

	mu sync.Mutex
	db *DB
}

// NewDocumentStore returns a store for dsn without opening it.
func NewDocumentStore(dsn string, log *logger.Logger) *DocumentStore {
	return &DocumentStore{dsn: dsn, logger: log}
}

// Open ensures the store is open and migrated and returns the connection.
// Every failure wraps [ErrStoreUnavailable].
func (s *DocumentStore) Open(ctx context.Context) (*DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := Connect(ctx, s.dsn, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = db.Migrate(); err != nil {
		s.logger.Err(err).Str("func", "*DocumentStore.Open").Msg("error migrating document store")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.logger.Info().Str("func", "*DocumentStore.Open").Str("dialect", db.dialect).Msg("document store opened")
	s.db = db

	return db, nil
}

// SchemaVersion opens the store if needed and reports the applied schema
// version.
func (s *DocumentStore) SchemaVersion(ctx context.Context) (int64, error) {
	db, err := s.Open(ctx)
	if err != nil {
		return 0, err
	}
	return db.SchemaVersion()
}

// Available reports whether the store can be opened and answers a ping.
func (s *DocumentStore) Available(ctx context.Context) bool {
	db, err := s.Open(ctx)
	if err != nil {
		return false
	}
	return db.PingContext(ctx) == nil
}

// Close closes the connection if it was opened. The store may be opened
// again afterwards.
func (s *DocumentStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}
