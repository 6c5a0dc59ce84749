package auth

import (
	"sync"
	"time"

	"github.com/arunvm123/eventbooking-demo/clock"
	"github.com/google/uuid"
)

// Session carries the "is admin" flag for one client. It lives only in
// memory.
type Session struct {
	mu      sync.Mutex
	id      string
	checker CredentialChecker
	admin   bool
}

func NewSession(checker CredentialChecker) *Session {
	return &Session{id: uuid.NewString(), checker: checker}
}

func (s *Session) ID() string {
	return s.id
}

// Login sets the admin flag when the credentials match and leaves it
// untouched otherwise.
func (s *Session) Login(username, password string) bool {
	if !s.checker.Check(username, password) {
		return false
	}
	s.mu.Lock()
	s.admin = true
	s.mu.Unlock()
	return true
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.admin = false
	s.mu.Unlock()
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

type registeredSession struct {
	session   *Session
	expiresAt time.Time
}

// SessionRegistry tracks logged-in sessions by id. A restart forgets them
// all.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]registeredSession
	checker  CredentialChecker
	ttl      time.Duration
	clock    clock.Clock
}

func NewSessionRegistry(checker CredentialChecker, ttl time.Duration, clk clock.Clock) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]registeredSession),
		checker:  checker,
		ttl:      ttl,
		clock:    clk,
	}
}

// Login opens a session and registers it when the credentials match.
func (r *SessionRegistry) Login(username, password string) (*Session, bool) {
	session := NewSession(r.checker)
	if !session.Login(username, password) {
		return nil, false
	}

	r.mu.Lock()
	r.sessions[session.ID()] = registeredSession{
		session:   session,
		expiresAt: r.clock.Now().Add(r.ttl),
	}
	r.mu.Unlock()
	return session, true
}

// Get returns a live admin session. Expired or logged-out sessions are
// dropped.
func (r *SessionRegistry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !r.clock.Now().Before(entry.expiresAt) || !entry.session.IsAdmin() {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, false
	}
	return entry.session, true
}

func (r *SessionRegistry) Logout(id string) {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		entry.session.Logout()
	}
}

func (r *SessionRegistry) TTL() time.Duration {
	return r.ttl
}
