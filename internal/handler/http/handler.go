package http

import (
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/service"
)

// Handler serves the REST API on top of the service layer. It holds no
// per-user state; the authenticated email travels in the request context.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	log.Debug().Str("func", "NewHandler").Msg("rest api handler ready")
	return &Handler{services: services, logger: log}
}
