package compare

import (
	"errors"
	"sync"
)

// MaxEntries bounds a comparison list; comparing more products than fit on
// one screen is not useful.
const MaxEntries = 4

var (
	ErrAlreadyCompared = errors.New("product already in comparison")
	ErrNotCompared     = errors.New("product not in comparison")
	ErrCompareFull     = errors.New("comparison list is full")
)

// Repository stores the per-owner comparison list. Comparison state is
// ephemeral per-session UI state, so only an in-memory implementation
// exists; it is keyed by the same owner key as the cart.
type Repository interface {
	Add(ownerKey string, productID int) ([]int, error)
	Remove(ownerKey string, productID int) ([]int, error)
	List(ownerKey string) ([]int, error)
	Clear(ownerKey string) error
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[string][]int)}
}

func (r *InMemoryRepository) Add(ownerKey string, productID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.lists[ownerKey]
	for _, pid := range current {
		if pid == productID {
			return nil, ErrAlreadyCompared
		}
	}
	if len(current) >= MaxEntries {
		return nil, ErrCompareFull
	}
	r.lists[ownerKey] = append(current, productID)
	return copyIDs(r.lists[ownerKey]), nil
}

func (r *InMemoryRepository) Remove(ownerKey string, productID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.lists[ownerKey]
	next := make([]int, 0, len(current))
	found := false
	for _, pid := range current {
		if pid == productID {
			found = true
			continue
		}
		next = append(next, pid)
	}
	if !found {
		return nil, ErrNotCompared
	}
	r.lists[ownerKey] = next
	return copyIDs(next), nil
}

func (r *InMemoryRepository) List(ownerKey string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyIDs(r.lists[ownerKey]), nil
}

func (r *InMemoryRepository) Clear(ownerKey string) error {
	r.mu.Lock()
	delete(r.lists, ownerKey)
	r.mu.Unlock()
	return nil
}

func copyIDs(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
