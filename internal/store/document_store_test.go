package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/migrations"
)

func newTestDocumentStore(t *testing.T) *DocumentStore {
	t.Helper()
	s := NewDocumentStore(filepath.Join(t.TempDir(), "docs.db"), logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newUnavailableDocumentStore returns a store whose DSN points below a
// regular file, so that every open attempt fails.
func newUnavailableDocumentStore(t *testing.T) *DocumentStore {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	return NewDocumentStore(filepath.Join(blocker, "docs.db"), logger.Nop())
}

func TestDocumentStore_OpenMigratesAndCaches(t *testing.T) {
	s := newTestDocumentStore(t)
	ctx := context.Background()

	first, err := s.Open(ctx)
	require.NoError(t, err)
	second, err := s.Open(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)

	version, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migrations.TargetVersion, version)
	assert.True(t, s.Available(ctx))
}

func TestDocumentStore_FailedOpenIsNotCached(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	s := NewDocumentStore(filepath.Join(blocker, "docs.db"), logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	_, err := s.Open(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.False(t, s.Available(ctx))

	// the medium recovers: the next attempt must succeed
	require.NoError(t, os.Remove(blocker))

	db, err := s.Open(ctx)
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestDocumentStore_ConcurrentOpenSharesConnection(t *testing.T) {
	s := newTestDocumentStore(t)
	ctx := context.Background()

	const callers = 16
	results := make([]*DB, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := s.Open(ctx)
			assert.NoError(t, err)
			results[i] = db
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestDocumentStore_ReopenKeepsDataAndVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.db")
	ctx := context.Background()

	s := NewDocumentStore(path, logger.Nop())
	chats := NewChatRepository(s, utils.NewUUIDGenerator(), logger.Nop())

	_, err := chats.Add(ctx, testChat("a@b.c", "2024-01-01T10:00:00Z"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := NewDocumentStore(path, logger.Nop())
	t.Cleanup(func() { _ = reopened.Close() })

	version, err := reopened.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migrations.TargetVersion, version)

	again := NewChatRepository(reopened, utils.NewUUIDGenerator(), logger.Nop())
	assert.Len(t, again.GetAll(ctx, "a@b.c"), 1)
}

func TestDocumentStore_CloseWithoutOpen(t *testing.T) {
	s := NewDocumentStore(filepath.Join(t.TempDir(), "docs.db"), logger.Nop())
	assert.NoError(t, s.Close())
}

func TestConnect_SelectsDialect(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("diacompanion.db"))
	assert.False(t, isPostgresDSN(":memory:"))
}
