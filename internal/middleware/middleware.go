package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gift-kiosk/internal/auth"
	"gift-kiosk/internal/metrics"
	"gift-kiosk/internal/session"

	"github.com/rs/zerolog"
)

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects any request whose session cookie does not map to
// an authenticated admin session. It runs before the wrapped handler so
// no admin operation can produce a side effect for an anonymous caller.
func RequireAdmin(sessions *session.Store, gate *auth.Gate, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Msg("missing session cookie")
				unauthorised(w)
				return
			}

			sess, ok := sessions.Get(cookie.Value)
			if !ok {
				logger.Warn().Str("path", r.URL.Path).Msg("unknown or expired session")
				unauthorised(w)
				return
			}

			if err := gate.Authorize(sess.State); err != nil {
				logger.Warn().Str("path", r.URL.Path).Msg("session not authenticated as admin")
				unauthorised(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorised(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "UNAUTHORIZED", "message": "Admin authentication required"}`))
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Metrics records request duration by method, path and status.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			metrics.RequestDuration.
				WithLabelValues(r.Method, metricsPath(r.URL.Path), strconv.Itoa(rw.statusCode)).
				Observe(time.Since(start).Seconds())
		})
	}
}

// metricsPath collapses per-card admin paths to a route template so the
// path label stays bounded regardless of how many codes are submitted.
func metricsPath(path string) string {
	rest := strings.TrimPrefix(path, "/api/admin/cards/")
	if rest == path || rest == "" {
		return path
	}

	parts := strings.SplitN(strings.TrimSuffix(rest, "/"), "/", 2)
	if len(parts) == 2 {
		return "/api/admin/cards/{code}/" + parts[1]
	}
	return "/api/admin/cards/{code}"
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "INTERNAL_ERROR", "message": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
