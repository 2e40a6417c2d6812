package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"gift-kiosk/internal/auth"
	"gift-kiosk/internal/metrics"
	"gift-kiosk/internal/model"
	"gift-kiosk/internal/service"
	"gift-kiosk/internal/session"

	"github.com/rs/zerolog"
)

// AdminHandler handles admin-facing HTTP requests. Session lifecycle
// (login, logout, status) lives here; the mutating card and price routes
// are additionally guarded by the RequireAdmin middleware before they
// ever reach this handler.
type AdminHandler struct {
	service  service.AdminService
	gate     *auth.Gate
	sessions *session.Store
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	service service.AdminService,
	gate *auth.Gate,
	sessions *session.Store,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		service:  service,
		gate:     gate,
		sessions: sessions,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.gate.Authenticate(req.Username, req.Password); err != nil {
		if err == model.ErrBadRequest {
			metrics.AdminLogins.WithLabelValues("bad_request").Inc()
		} else {
			metrics.AdminLogins.WithLabelValues("unauthorized").Inc()
		}
		writeDomainError(w, err, h.logger)
		return
	}

	// Drop any session the caller already holds so a login always
	// yields a fresh token.
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Revoke(cookie.Value)
	}

	sess := h.sessions.Create(session.Authenticated)
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.sessions.TTL().Seconds()),
	})

	metrics.AdminLogins.WithLabelValues("success").Inc()
	h.logger.Info().Str("username", req.Username).Msg("admin logged in")

	writeJSON(w, http.StatusOK, model.SessionResponse{IsAuthenticated: true})
}

// Logout handles POST /api/admin/logout requests.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Revoke(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, model.SessionResponse{IsAuthenticated: false})
}

// Session handles GET /api/admin/session requests.
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	authenticated := false
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if sess, ok := h.sessions.Get(cookie.Value); ok {
			authenticated = sess.State == session.Authenticated
		}
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{IsAuthenticated: authenticated})
}

// ListCards handles GET /api/admin/cards requests.
func (h *AdminHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	resp, err := h.service.ListCards(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CardAction routes requests under /api/admin/cards/{code}:
//
//	PUT    /api/admin/cards/{code}/status
//	PUT    /api/admin/cards/{code}/price
//	DELETE /api/admin/cards/{code}
func (h *AdminHandler) CardAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/cards/")
	if rest == "" || rest == r.URL.Path {
		writeError(w, http.StatusBadRequest, model.ErrCodeBadRequest, "card code is required", h.logger)
		return
	}

	parts := strings.Split(strings.TrimSuffix(rest, "/"), "/")
	code := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.deleteCard(w, r, code)
	case len(parts) == 2 && parts[1] == "status" && r.Method == http.MethodPut:
		h.setStatus(w, r, code)
	case len(parts) == 2 && parts[1] == "price" && r.Method == http.MethodPut:
		h.setPrice(w, r, code)
	default:
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "not found", h.logger)
	}
}

func (h *AdminHandler) setStatus(w http.ResponseWriter, r *http.Request, code string) {
	var req model.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.SetCardStatus(r.Context(), code, req.Status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) setPrice(w http.ResponseWriter, r *http.Request, code string) {
	var req model.SetPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.SetCardPrice(r.Context(), code, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) deleteCard(w http.ResponseWriter, r *http.Request, code string) {
	if err := h.service.DeleteCard(r.Context(), code); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteCardResponse{Deleted: true, Code: code})
}

// SetGlobalPrice handles PUT /api/admin/price requests.
func (h *AdminHandler) SetGlobalPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	var req model.SetGlobalPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.SetGlobalPrice(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
