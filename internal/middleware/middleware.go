// Package middleware provides HTTP middleware components for the dashboard
// server.
package middleware

import (
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/example/redactview/internal/utils"
)

// Recovery is a middleware that recovers from panics and returns a 500
// Internal Server Error. The dashboard's own failure taxonomy never escapes
// as a panic, so anything caught here is a genuine bug worth a stack trace.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					requestID := chimiddleware.GetReqID(r.Context())

					log.Error().
						Str("request_id", requestID).
						Interface("panic", err).
						Str("stack", string(stack)).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Str("remote_addr", r.RemoteAddr).
						Msg("Panic recovered in request handler")

					utils.JSON(w, http.StatusInternalServerError, map[string]string{
						"error": "An unexpected error occurred while processing your request",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders adds security-related HTTP headers to responses. The image
// proxy is the only cross-origin content the page embeds, served same-origin
// through the dashboard, so a restrictive policy holds.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Content-Security-Policy", "default-src 'self'; img-src 'self'; style-src 'unsafe-inline'")

			next.ServeHTTP(w, r)
		})
	}
}
