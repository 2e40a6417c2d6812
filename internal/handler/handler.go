package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gift-kiosk/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error to its HTTP response. Domain
// errors surface with their specific code and message; anything else
// becomes a generic 500 so internal detail never leaks.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var derr *model.DomainError
	if !errors.As(err, &derr) {
		logger.Error().Err(err).Msg("unexpected error")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch derr.Code {
	case model.ErrCodeNotFound:
		status = http.StatusNotFound
	case model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	case model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	writeError(w, status, derr.Code, derr.Message, logger)
}
