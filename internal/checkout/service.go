package checkout

import (
	"errors"
	"time"

	"github.com/sittikornl/marketplace-backend/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service turns a cart into an order. It is the one caller of the cart's
// Clear command: clearing happens only after the order row is safely
// persisted, so a failed checkout leaves the cart intact.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) PlaceOrder(engine *cart.Engine, ownerKey string) (Order, error) {
	// the owner drives one session at a time; no command lands between
	// this read and the clear below
	state := engine.State()
	if state.Empty() {
		return Order{}, ErrEmptyCart
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := s.repo.Create(Order{
		OwnerKey:  ownerKey,
		Lines:     state.Lines,
		Subtotal:  state.Subtotal,
		ItemCount: state.ItemCount,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Order{}, err
	}

	engine.Apply(cart.Clear{})
	return created, nil
}

func (s *Service) History(ownerKey string) ([]Order, error) {
	return s.repo.ListByOwner(ownerKey)
}
