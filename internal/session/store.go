// Package session owns the single authenticated identity of the running
// client. The store is created once at the composition root and handed to
// every page; nothing else mutates it.
package session

import (
	"time"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/pkg/auth"
	"github.com/stayease/stayease/pkg/logger"

	"sync"
)

type State int

const (
	StateUninitialized State = iota
	StateAnonymous
	StateActive
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateActive:
		return "active"
	case StateCleared:
		return "cleared"
	default:
		return "uninitialized"
	}
}

type Store struct {
	mu         sync.Mutex
	state      State
	user       *domain.User
	jar        *Jar
	cookieName string
}

func NewStore(jar *Jar, cookieName string) *Store {
	return &Store{jar: jar, cookieName: cookieName}
}

// Restore initializes the store from the persisted session cookie. The token
// is decoded (not verified; the signing secret lives on the server) to recover
// the identity fields. An absent, expired or undecodable token leaves the
// store anonymous rather than half-authenticated.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.jar.Get(s.cookieName)
	if !ok {
		s.state = StateAnonymous
		s.user = nil
		return
	}

	claims, err := auth.DecodeUnverified(token)
	if err != nil {
		logger.Warn("session token undecodable, staying anonymous", "error", err)
		s.state = StateAnonymous
		s.user = nil
		return
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		s.state = StateAnonymous
		s.user = nil
		return
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		role = domain.RoleTenant
	}
	s.user = &domain.User{
		ID:       claims.Sub,
		FullName: claims.FullName,
		Email:    claims.Email,
		Role:     role,
	}
	s.state = StateActive
}

// Login replaces the held identity. The session cookie itself was already
// captured by the jar when the login response arrived.
func (s *Store) Login(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.user = &u
	s.state = StateActive
}

// Logout clears the identity and expires the cookie client side.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.state = StateCleared
	s.jar.Expire(s.cookieName)
}

// Current returns a copy of the held identity, or nil when anonymous.
func (s *Store) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is always derived from the identity, never stored.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
