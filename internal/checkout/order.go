package checkout

import "github.com/sittikornl/marketplace-backend/internal/cart"

// Order captures the cart snapshot at the moment of checkout. Line prices
// are frozen here; later catalog changes do not affect placed orders.
type Order struct {
	OrderID   int         `json:"orderID"`
	OwnerKey  string      `json:"ownerKey"`
	Lines     []cart.Line `json:"lines"`
	Subtotal  float64     `json:"subtotal"`
	ItemCount int         `json:"itemCount"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}
