package memory

import (
	"context"
	"sync"
	"time"

	"votingsystem/contexts/identity-access/access-control/domain/entities"
)

// SessionStore keeps sessions in memory. Expired sessions are dropped on read.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]entities.Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetNow overrides the store clock in tests.
func (s *SessionStore) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *SessionStore) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

func (s *SessionStore) SaveSession(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *SessionStore) GetSession(_ context.Context, token string) (entities.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return entities.Session{}, false, nil
	}
	if session.Expired(s.now()) {
		delete(s.sessions, token)
		return entities.Session{}, false, nil
	}
	return session, true, nil
}

func (s *SessionStore) DeleteSession(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	return ok, nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
