package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const jsonContentType = "application/json; charset=utf-8"

// WriteJSON encodes data and answers with statusCode. Responses carry diary
// data, so they are marked as not cacheable.
//
// When data cannot be encoded the client gets a 500 with a generic error
// body and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	header := w.Header()
	header.Set("Content-Type", jsonContentType)
	header.Set("Cache-Control", "no-store")

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return 0, fmt.Errorf("error encoding response: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}
