package auth

import (
	"gift-kiosk/internal/model"
	"gift-kiosk/internal/session"

	"github.com/rs/zerolog"
)

// Gate is the authorization check guarding all admin operations. It
// decides two things: whether supplied credentials may promote a session
// to Authenticated, and whether an existing session state satisfies the
// admin precondition. The check always runs before any side effect.
type Gate struct {
	username string
	password string
	logger   zerolog.Logger
}

// NewGate creates a new admin gate with the configured credentials.
func NewGate(username, password string, logger zerolog.Logger) *Gate {
	return &Gate{
		username: username,
		password: password,
		logger:   logger.With().Str("component", "admin-gate").Logger(),
	}
}

// Authenticate checks supplied credentials against the configured pair.
// Missing fields produce model.ErrBadRequest; a mismatch produces
// model.ErrUnauthorised. Comparison is exact and case-sensitive.
func (g *Gate) Authenticate(username, password string) error {
	if username == "" || password == "" {
		return model.ErrBadRequest
	}

	if username != g.username || password != g.password {
		g.logger.Warn().Str("username", username).Msg("admin login rejected")
		return model.ErrUnauthorised
	}

	return nil
}

// Authorize rejects any session state other than Authenticated.
func (g *Gate) Authorize(state session.State) error {
	if state != session.Authenticated {
		return model.ErrUnauthorised
	}
	return nil
}
