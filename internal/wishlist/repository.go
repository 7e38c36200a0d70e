package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrNotInWishlist     = errors.New("product not in wishlist")
)

// Repository stores the per-user wishlist as an ordered list of product ids.
type Repository interface {
	Add(userID int, productID int, updatedAt string) ([]int, error)
	Remove(userID int, productID int, updatedAt string) ([]int, error)
	List(userID int) ([]int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[int][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[int][]int)}
}

func (r *InMemoryRepository) Add(userID int, productID int, updatedAt string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pid := range r.lists[userID] {
		if pid == productID {
			return nil, ErrAlreadyInWishlist
		}
	}
	r.lists[userID] = append(r.lists[userID], productID)
	return copyIDs(r.lists[userID]), nil
}

func (r *InMemoryRepository) Remove(userID int, productID int, updatedAt string) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current := r.lists[userID]
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
		return nil, ErrNotInWishlist
	}
	r.lists[userID] = next
	return copyIDs(next), nil
}

func (r *InMemoryRepository) List(userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyIDs(r.lists[userID]), nil
}

func copyIDs(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}
