package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/dia-companion/models"
)

// fileSessionStore keeps the session marker in a JSON file readable only by
// its owner.
type fileSessionStore struct {
	path string
	mu   sync.Mutex
}

// NewFileSessionStore returns a [SessionMarkerStore] persisted at path.
func NewFileSessionStore(path string) SessionMarkerStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) Read() (models.SessionMarker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.SessionMarker{}, ErrSessionMarkerNotFound
		}
		return models.SessionMarker{}, fmt.Errorf("read session marker: %w", err)
	}

	var marker models.SessionMarker
	if err = json.Unmarshal(data, &marker); err != nil {
		return models.SessionMarker{}, fmt.Errorf("%w: %w", ErrCorruptSessionMarker, err)
	}
	if marker.Email == "" {
		return models.SessionMarker{}, ErrCorruptSessionMarker
	}

	return marker, nil
}

func (s *fileSessionStore) Write(marker models.SessionMarker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session marker dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(marker, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session marker: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}

	return nil
}

// Clear removes the marker. Clearing a missing marker succeeds.
func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session marker: %w", err)
	}
	return nil
}
