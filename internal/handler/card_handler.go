package handler

import (
	"encoding/json"
	"net/http"

	"gift-kiosk/internal/model"
	"gift-kiosk/internal/service"

	"github.com/rs/zerolog"
)

// CardHandler handles customer-facing HTTP requests.
type CardHandler struct {
	service service.CardService
	logger  zerolog.Logger
}

// NewCardHandler creates a new card handler.
func NewCardHandler(service service.CardService, logger zerolog.Logger) *CardHandler {
	return &CardHandler{
		service: service,
		logger:  logger.With().Str("handler", "card").Logger(),
	}
}

// Validate handles POST /api/cards/validate requests.
func (h *CardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	var req model.ValidateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.SubmitCode(r.Context(), req.Code)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GlobalPrice handles GET /api/price requests.
func (h *CardHandler) GlobalPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeBadRequest, "method not allowed", h.logger)
		return
	}

	resp, err := h.service.GlobalPrice(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
