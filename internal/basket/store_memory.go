package basket

import (
	"context"
	"sync"
)

// MemoryStore keeps baskets in process and implements Merger. Used by unit
// tests and development wiring.
type MemoryStore struct {
	mu        sync.Mutex
	anonymous map[string]map[string]int // ref -> productID -> quantity
	named     map[string]map[string]int // identityKey -> productID -> quantity
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		anonymous: make(map[string]map[string]int),
		named:     make(map[string]map[string]int),
	}
}

// AddAnonymousItem records an item against an anonymous basket reference.
func (s *MemoryStore) AddAnonymousItem(_ context.Context, ref string, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.anonymous[ref] == nil {
		s.anonymous[ref] = make(map[string]int)
	}
	s.anonymous[ref][item.ProductID] += item.Quantity
}

// MergeBasket moves the anonymous basket's items into the named basket,
// summing quantities, then discards the anonymous basket. Merging a missing
// basket is a no-op success.
func (s *MemoryStore) MergeBasket(_ context.Context, anonymousRef, identityKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.anonymous[anonymousRef]
	if !ok {
		return nil
	}

	if s.named[identityKey] == nil {
		s.named[identityKey] = make(map[string]int)
	}
	for productID, quantity := range items {
		s.named[identityKey][productID] += quantity
	}
	delete(s.anonymous, anonymousRef)
	return nil
}

// NamedItems returns the contents of a named basket.
func (s *MemoryStore) NamedItems(_ context.Context, identityKey string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []Item
	for productID, quantity := range s.named[identityKey] {
		items = append(items, Item{ProductID: productID, Quantity: quantity})
	}
	return items
}

// HasAnonymous reports whether an anonymous basket still exists for ref.
func (s *MemoryStore) HasAnonymous(_ context.Context, ref string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.anonymous[ref]
	return ok
}
