package checkout

import "sync"

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	// ListByOwner returns the owner's orders, newest first.
	ListByOwner(ownerKey string) ([]Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.OrderID = r.nextID
	r.nextID++
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByOwner(ownerKey string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].OwnerKey == ownerKey {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}
