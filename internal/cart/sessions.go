package cart

import (
	"sync"

	"go.uber.org/zap"
)

// Sessions hands out one engine per owner key. Engines are created lazily
// and hydrated on first use. Each owner gets its own in-memory instance;
// owners that share a snapshot slot (e.g. the same user in two tabs)
// reconcile through last-writer-wins on that slot.
type Sessions struct {
	store  Store
	logger *zap.Logger

	mu      sync.Mutex
	engines map[string]*Engine
}

func NewSessions(store Store, logger *zap.Logger) *Sessions {
	return &Sessions{
		store:   store,
		logger:  logger,
		engines: make(map[string]*Engine),
	}
}

// Engine returns the engine for the owner, creating and hydrating it on
// first use. Hydration runs outside the sessions lock; the engine's own
// empty-state guard keeps a concurrent early command safe.
func (s *Sessions) Engine(owner string) *Engine {
	s.mu.Lock()
	e, ok := s.engines[owner]
	if !ok {
		e = NewEngine(owner, s.store, s.logger)
		s.engines[owner] = e
	}
	s.mu.Unlock()

	if !ok {
		e.Hydrate()
	}
	return e
}

// Drop forgets the in-memory engine for an owner. The persisted snapshot is
// left untouched.
func (s *Sessions) Drop(owner string) {
	s.mu.Lock()
	delete(s.engines, owner)
	s.mu.Unlock()
}
