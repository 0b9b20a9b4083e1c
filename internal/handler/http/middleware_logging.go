package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
)

// withLogging writes one access log entry per request. The email is added
// when auth accepted the request further down the chain.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		entry := logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		if lw.request != nil {
			if email, ok := utils.GetEmailFromContext(lw.request.Context()); ok {
				entry = entry.Str("email", email)
			}
		}

		entry.Send()
	})
}
