// Package utils provides utility functions and helpers for the application:
// the failure taxonomy shared by the loader and uploader, logger setup with
// sample sanitization, the boundary validator, and small HTTP response
// helpers for the dashboard's system routes.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// JSON sends a JSON response with the given status code and data. It is used
// by the system routes (/health, /version); the dashboard routes respond with
// rendered HTML instead.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		if _, err := w.Write([]byte(`{"error":"Failed to generate response"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// HTML sends a rendered HTML document.
func HTML(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Error().Err(err).Msg("Failed to write HTML response")
	}
}
