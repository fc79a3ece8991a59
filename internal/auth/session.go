// Package auth resolves opaque session tokens to user identities at the HTTP
// boundary. The negotiation core never reads an ambient current user: every
// service call takes the caller's identity explicitly, and this package is
// the only place a token is turned into one.
package auth

import (
	"fmt"
	"sync"

	"marketbids/internal/biderrors"
	"marketbids/utils"
)

// SessionStore resolves a bearer token to the user it belongs to.
type SessionStore interface {
	Resolve(token string) (userID string, err error)
}

// MemorySessionStore is a concurrency-safe in-memory SessionStore, used for
// local development and tests. Production deployments sit behind a hosted
// auth provider exposing the same contract.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string // key: token -> value: userID
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]string)}
}

// CreateSession issues a fresh token for userID.
func (s *MemorySessionStore) CreateSession(userID string) string {
	token := utils.NewID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID
	return token
}

// AddSession registers a fixed token for userID, used by seed data.
func (s *MemorySessionStore) AddSession(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userID
}

// Resolve returns the user a token belongs to, or ErrUnauthenticated when
// the token is unknown or empty.
func (s *MemorySessionStore) Resolve(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("auth: empty token: %w", biderrors.ErrUnauthenticated)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.sessions[token]
	if !ok {
		return "", fmt.Errorf("auth: unknown token: %w", biderrors.ErrUnauthenticated)
	}
	return userID, nil
}
