package snapshot

import (
	"sync"

	"github.com/sittikornl/marketplace-backend/internal/cart"
)

// MemoryStore keeps snapshots in a map. It is used for tests and local
// scenarios without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]cart.Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]cart.Line)}
}

func (s *MemoryStore) Load(ownerKey string) ([]cart.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines, ok := s.slots[ownerKey]
	if !ok {
		return nil, cart.ErrNoSnapshot
	}
	out := make([]cart.Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *MemoryStore) Save(ownerKey string, lines []cart.Line) error {
	cp := make([]cart.Line, len(lines))
	copy(cp, lines)
	s.mu.Lock()
	s.slots[ownerKey] = cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ownerKey string) error {
	s.mu.Lock()
	delete(s.slots, ownerKey)
	s.mu.Unlock()
	return nil
}

// Has reports whether a snapshot slot exists for the owner, regardless of
// whether it is empty.
func (s *MemoryStore) Has(ownerKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[ownerKey]
	return ok
}
