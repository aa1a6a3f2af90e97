package store

import (
	"context"

	"github.com/Perlera89/campus/core/session"
	"github.com/Perlera89/campus/storage"
)

const sessionPartition = "session"

// sessionPartial is the slice of the session that survives a reload: the token
// pair and the role. Identity fields are rebuilt from the token's claims.
type sessionPartial struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
}

// SessionStore holds the authenticated user's session.
type SessionStore struct {
	base
	persistence
	state session.Session
}

func NewSessionStore(st storage.Storage) *SessionStore {
	return &SessionStore{persistence: persistence{storage: st, partition: sessionPartition}}
}

// Load restores the persisted token pair and role; every other field resets to
// its zero default until the token is re-validated against the server.
func (s *SessionStore) Load(ctx context.Context) error {
	var partial sessionPartial
	if err := s.load(ctx, &partial); err != nil {
		return err
	}
	s.mu.Lock()
	s.state = session.Session{
		AccessToken:  partial.AccessToken,
		RefreshToken: partial.RefreshToken,
		Role:         partial.Role,
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *SessionStore) Session() session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetSession replaces the session after login, registration or token validation.
func (s *SessionStore) SetSession(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	s.state = sess
	s.mu.Unlock()
	s.notify()
	return s.save(ctx, sessionPartial{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		Role:         sess.Role,
	})
}

// Clear logs the user out and drops the persisted partition.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.state = session.Session{}
	s.mu.Unlock()
	s.notify()
	return s.clear(ctx)
}
