package cart

// Command is the closed set of cart transitions. Commands are total: each
// one always yields a valid next state and never fails.
type Command interface{ isCommand() }

// AddItem inserts a new line with quantity 1, or increments the quantity of
// an existing line with the same id. Descriptive fields supplied on a merge
// are ignored; the first write wins.
type AddItem struct {
	Line LineInput
}

// RemoveItem deletes the line with the given id. An absent id is a no-op.
type RemoveItem struct {
	ID string
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line;
// a value above the line's maxQuantity is clamped down to it.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// Clear empties the cart. It is the one command with a side effect beyond
// memory: the engine erases the persisted snapshot so a later hydration
// cannot resurrect the cleared cart.
type Clear struct{}

// Load replaces the lines wholesale. It is issued once, during hydration,
// and only takes effect while the in-memory state is still empty.
type Load struct {
	Lines []Line
}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}
func (Load) isCommand()           {}
