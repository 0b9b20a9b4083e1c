package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/MKhiriev/dia-companion/internal/app"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/go-chi/chi/v5"
)

// body size limits
const (
	maxJSONBody = 1 << 20
	// a 5 MiB image grows by a third in base64
	maxImageBody = 8 << 20
	maxCSVBody   = 10 << 20
)

// decodeJSON reads a JSON body of at most limit bytes into v. On failure the
// response is already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, fn string, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, r, fn, err)
		return false
	}

	logger.FromRequest(r).Warn().Err(err).Str("func", fn).Msg(app.MsgInvalidJSON)
	writeMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
	return false
}

// pathParam returns the unescaped URL parameter.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}
	return raw
}
