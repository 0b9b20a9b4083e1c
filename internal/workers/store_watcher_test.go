package workers

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// scriptedStore answers Available from a script; the last answer repeats.
type scriptedStore struct {
	mu      sync.Mutex
	answers []bool
	calls   int
}

func (s *scriptedStore) Available(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := min(s.calls, len(s.answers)-1)
	s.calls++
	return s.answers[i]
}

type recordingStatus struct {
	mu       sync.Mutex
	statuses []bool
}

func (r *recordingStatus) SetServing(serving bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, serving)
}

func (r *recordingStatus) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.statuses...)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStoreWatcher_ReportsEveryCheck(t *testing.T) {
	store := &scriptedStore{answers: []bool{false, false, true}}
	status := &recordingStatus{}
	var logs syncBuffer

	watcher := NewStoreWatcher(store, status, 5*time.Millisecond, &logger.Logger{Logger: zerolog.New(&logs)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watcher.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(status.snapshot()) >= 5 }, time.Second, time.Millisecond)
	cancel()
	<-done

	got := status.snapshot()
	assert.Equal(t, []bool{false, false, true}, got[:3])
	for _, s := range got[3:] {
		assert.True(t, s)
	}

	out := logs.String()
	assert.Equal(t, 1, strings.Count(out, "document store is unavailable"))
	assert.Equal(t, 1, strings.Count(out, "document store is available"))
	assert.Contains(t, out, "store watcher stopped")
}

func TestStoreWatcher_ChecksImmediately(t *testing.T) {
	store := &scriptedStore{answers: []bool{true}}
	status := &recordingStatus{}
	watcher := NewStoreWatcher(store, status, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watcher.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(status.snapshot()) == 1 }, time.Second, time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []bool{true}, status.snapshot())
}
