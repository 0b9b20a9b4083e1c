package store

import (
	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
)

// ClientStorages groups the stores the command-line client keeps on the
// local machine.
type ClientStorages struct {
	// Sessions persists who is logged in between invocations.
	Sessions SessionMarkerStore
}

// NewClientStorages initialises the client storage layer.
func NewClientStorages(cfg config.ClientConfig, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("marker", cfg.Session.MarkerPath).Msg("creating client storages")

	return &ClientStorages{
		Sessions: NewFileSessionStore(cfg.Session.MarkerPath),
	}
}
