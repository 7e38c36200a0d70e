package cart

// Line is one product entry in the cart together with its quantity and the
// price snapshot taken when the product was first added.
type Line struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Vendor      string  `json:"vendor"`
	Delivery    string  `json:"delivery,omitempty"`
	MaxQuantity int     `json:"maxQuantity,omitempty"`
}

// LineInput carries the product fields for AddItem. Quantity is not part of
// the input; a newly inserted line always starts at 1.
type LineInput struct {
	ID          string
	Name        string
	UnitPrice   float64
	Image       string
	Vendor      string
	Delivery    string
	MaxQuantity int
}

// State is the cart aggregate. Subtotal and ItemCount are derived from Lines
// after every transition and are never mutated on their own.
type State struct {
	Lines     []Line  `json:"lines"`
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"itemCount"`
}

func (s State) Empty() bool { return len(s.Lines) == 0 }

// recompute derives both aggregates from the line list in one pass.
func recompute(lines []Line) (subtotal float64, count int) {
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
		count += l.Quantity
	}
	return subtotal, count
}
