package session

import (
	"context"
	"sync"

	"gatekeep/internal/identity"
	id "gatekeep/pkg/domain"
)

// MemoryStore keeps sessions in process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[id.SessionID]identity.Session
}

func NewMemory() *MemoryStore {
	return &MemoryStore{sessions: make(map[id.SessionID]identity.Session)}
}

func (s *MemoryStore) Save(_ context.Context, session *identity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, sessionID id.SessionID) (*identity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if session, ok := s.sessions[sessionID]; ok {
		clone := session
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Delete(_ context.Context, sessionID id.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
