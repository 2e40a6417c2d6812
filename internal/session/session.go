package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CookieName is the HTTP cookie carrying the session token.
const CookieName = "kiosk_session"

// State is the authentication state of a session.
type State int

// Session states. A session is Anonymous until the admin gate promotes
// it after a successful credential check.
const (
	Anonymous State = iota
	Authenticated
)

// Session is one caller's authentication record.
type Session struct {
	ID        string
	State     State
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store keeps sessions in memory, keyed by opaque uuid tokens. Expiry
// is enforced lazily on lookup.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewStore creates a new session store with the given time-to-live.
func NewStore(ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger.With().Str("component", "session-store").Logger(),
	}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create mints a new session in the given state and returns it.
func (s *Store) Create(state State) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		State:     state,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug().Str("session_id", sess.ID).Msg("session created")

	out := *sess
	return &out
}

// Get returns the session for id, or false when it is unknown or has
// expired. Expired sessions are removed on the way out.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if sess.Expired(time.Now()) {
		s.Revoke(id)
		return nil, false
	}

	out := *sess
	return &out, true
}

// Revoke removes a session, returning whether it existed.
func (s *Store) Revoke(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}

	delete(s.sessions, id)
	s.logger.Debug().Str("session_id", id).Msg("session revoked")

	return true
}
