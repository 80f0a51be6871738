package user

import (
	"context"
	"strings"
	"sync"

	"gatekeep/internal/identity"
	id "gatekeep/pkg/domain"
)

// MemoryStore keeps accounts in process. It intentionally favors clarity over
// performance; email uniqueness is enforced the same way the postgres store
// enforces it so behavior matches across environments.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[id.UserID]identity.Account
	byEmail map[string]id.UserID
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[id.UserID]identity.Account),
		byEmail: make(map[string]id.UserID),
	}
}

func (s *MemoryStore) Create(_ context.Context, account *identity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(account.Email)
	if _, exists := s.byEmail[key]; exists {
		return ErrDuplicateEmail
	}
	s.byID[account.ID] = *account
	s.byEmail[key] = account.ID
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, userID id.UserID) (*identity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if account, ok := s.byID[userID]; ok {
		clone := account
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*identity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if userID, ok := s.byEmail[normalizeEmail(email)]; ok {
		clone := s.byID[userID]
		return &clone, nil
	}
	return nil, ErrNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
