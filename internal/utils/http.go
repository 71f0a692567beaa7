package utils

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-crud-api/models"
)

// ContentTypeJSON is the content type of every API response.
const ContentTypeJSON = "application/json"

// WriteBody writes an already serialized body to the HTTP response with the
// given content type and status code. An empty body writes headers only,
// which is what 204 responses need.
//
// Returns the number of body bytes written and the error of the underlying
// writer, if any.
func WriteBody(w http.ResponseWriter, body string, contentType string, statusCode int) (int, error) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if body == "" {
		return 0, nil
	}

	return w.Write([]byte(body))
}

// WriteError writes {"error": message} as JSON with the given status code.
// It is used by the transport layer for failures that happen before a request
// reaches the dispatcher (e.g. an oversized body).
//
// Example usage:
//
//	utils.WriteError(w, "Request body too large", http.StatusRequestEntityTooLarge)
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	payload, err := json.Marshal(models.ErrorResponse{Error: message})
	if err != nil {
		return 0, err
	}

	return WriteBody(w, string(payload), ContentTypeJSON, statusCode)
}
