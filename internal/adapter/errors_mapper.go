package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/dia-companion/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Otherwise the status selects
// the sentinel and the server's message, with per-field validation details,
// becomes the error text.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(resp.Body())
	if message == "" {
		message = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("http %d: %s", status, message)
}

// serverMessage reads an ErrorResponse body and falls back to the raw text.
func serverMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return strings.TrimSpace(string(body))
	}

	if len(errResp.Fields) == 0 {
		return errResp.Error
	}

	fields := make([]string, 0, len(errResp.Fields))
	for name, msg := range errResp.Fields {
		fields = append(fields, name+": "+msg)
	}
	sort.Strings(fields)

	return errResp.Error + " (" + strings.Join(fields, "; ") + ")"
}
