package cart

import (
	"sync"

	"go.uber.org/zap"
)

// Engine owns the cart state for a single owner key and applies commands
// one at a time. Persistence is best effort: the in-memory transition
// always completes, and storage failures are logged and swallowed, so from
// the caller's point of view commands never fail.
type Engine struct {
	owner  string
	store  Store
	logger *zap.Logger

	mu          sync.Mutex
	state       State
	hasSnapshot bool
}

func NewEngine(owner string, store Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{owner: owner, store: store, logger: logger}
}

// Hydrate restores the state from the snapshot store. The result is applied
// only while the in-memory state is still empty, so commands issued before
// a slow read finish ahead of it and cannot be clobbered. A missing or
// unreadable snapshot leaves the cart empty; this is a cache, not a source
// of truth.
func (e *Engine) Hydrate() {
	if e.store == nil {
		return
	}
	lines, err := e.store.Load(e.owner)
	if err != nil {
		if err != ErrNoSnapshot {
			e.logger.Warn("cart snapshot load failed",
				zap.String("owner", e.owner), zap.Error(err))
		}
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.hasSnapshot = true
	if len(e.state.Lines) > 0 || len(lines) == 0 {
		return
	}
	e.state = Reduce(e.state, Load{Lines: lines})
}

// Apply runs one command and returns the resulting state. The new state is
// available before the snapshot write is confirmed.
func (e *Engine) Apply(cmd Command) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Reduce(e.state, cmd)
	e.persist(cmd)
	return e.state
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// persist synchronizes the snapshot slot with the state just produced.
// Clear deletes the key outright rather than writing an empty list, so a
// stale snapshot can never resurrect a cleared cart. A pristine empty cart
// skips the write entirely. Called with e.mu held.
func (e *Engine) persist(cmd Command) {
	if e.store == nil {
		return
	}
	if _, ok := cmd.(Clear); ok {
		if err := e.store.Delete(e.owner); err != nil {
			e.logger.Warn("cart snapshot delete failed",
				zap.String("owner", e.owner), zap.Error(err))
			return
		}
		e.hasSnapshot = false
		return
	}
	if len(e.state.Lines) == 0 && !e.hasSnapshot {
		return
	}
	if err := e.store.Save(e.owner, e.state.Lines); err != nil {
		e.logger.Warn("cart snapshot save failed",
			zap.String("owner", e.owner), zap.Error(err))
		return
	}
	e.hasSnapshot = true
}
