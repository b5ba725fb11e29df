package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json"

// WriteJSON marshals data and writes it with statusCode. When marshaling
// fails the client gets a plain 500 and the error is returned for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	return WriteJSONBody(w, body, statusCode)
}

// WriteJSONBody writes an already encoded JSON document, such as a sync
// response produced by the payload codec.
func WriteJSONBody(w http.ResponseWriter, body []byte, statusCode int) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}
	return nil
}
