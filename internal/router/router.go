package router

import (
	"net/http"

	"gift-kiosk/internal/auth"
	"gift-kiosk/internal/handler"
	"gift-kiosk/internal/middleware"
	"gift-kiosk/internal/session"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	cardHandler *handler.CardHandler,
	adminHandler *handler.AdminHandler,
	sessions *session.Store,
	gate *auth.Gate,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	// Customer-facing routes
	mux.HandleFunc("/api/price", cardHandler.GlobalPrice)
	mux.HandleFunc("/api/cards/validate", cardHandler.Validate)

	// Admin session lifecycle (not gated; the gate decides inside)
	mux.HandleFunc("/api/admin/login", adminHandler.Login)
	mux.HandleFunc("/api/admin/logout", adminHandler.Logout)
	mux.HandleFunc("/api/admin/session", adminHandler.Session)

	// Admin-only routes, guarded before the handlers run
	requireAdmin := middleware.RequireAdmin(sessions, gate, logger)
	mux.Handle("/api/admin/cards", requireAdmin(http.HandlerFunc(adminHandler.ListCards)))
	mux.Handle("/api/admin/cards/", requireAdmin(http.HandlerFunc(adminHandler.CardAction)))
	mux.Handle("/api/admin/price", requireAdmin(http.HandlerFunc(adminHandler.SetGlobalPrice)))

	// Apply middleware in order: Recovery -> Logging -> CORS -> Metrics
	var h http.Handler = mux
	h = middleware.Metrics()(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
