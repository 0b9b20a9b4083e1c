package store

import (
	"context"
	"sync"
)

type memoryMedium struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryMedium returns a [KVMedium] kept in process memory.
func NewMemoryMedium() KVMedium {
	return &memoryMedium{entries: make(map[string][]byte)}
}

func (m *memoryMedium) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *memoryMedium) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryMedium) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *memoryMedium) Close() error {
	return nil
}
