// Package auth holds the session-scoped token store used by the HTTP
// layer and the auth resource client.
package auth

import "sync"

// Session owns the bearer token for one client instance. The token lives
// only in memory: it is set on signin/signup/refresh and cleared on
// signout or when the server answers with an unauthorized status. Safe for
// concurrent use.
type Session struct {
	mutex sync.RWMutex
	token string
}

// NewSession creates a session, optionally seeded with an existing token
// (e.g. one the CLI persisted from an earlier signin).
func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the current token, or the empty string when anonymous.
func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// SetToken replaces the current token.
func (s *Session) SetToken(token string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear drops the current token, returning the session to anonymous.
func (s *Session) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = ""
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token != ""
}
