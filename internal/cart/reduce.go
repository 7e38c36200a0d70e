package cart

// Reduce applies one command to a state and returns the next state. The
// input state is never mutated; lines are copied before modification so
// callers may hold on to old states.
func Reduce(s State, cmd Command) State {
	var lines []Line
	switch c := cmd.(type) {
	case AddItem:
		lines = addItem(s.Lines, c.Line)
	case RemoveItem:
		lines = removeItem(s.Lines, c.ID)
	case UpdateQuantity:
		lines = updateQuantity(s.Lines, c.ID, c.Quantity)
	case Clear:
		lines = nil
	case Load:
		if len(s.Lines) > 0 {
			// a late hydration must not clobber commands already applied
			lines = copyLines(s.Lines)
		} else {
			lines = sanitize(c.Lines)
		}
	default:
		lines = copyLines(s.Lines)
	}

	next := State{Lines: lines}
	next.Subtotal, next.ItemCount = recompute(lines)
	return next
}

func addItem(lines []Line, in LineInput) []Line {
	out := copyLines(lines)
	for i := range out {
		if out[i].ID == in.ID {
			out[i].Quantity = clampQuantity(out[i].Quantity+1, out[i].MaxQuantity)
			return out
		}
	}
	return append(out, Line{
		ID:          in.ID,
		Name:        in.Name,
		UnitPrice:   in.UnitPrice,
		Quantity:    1,
		Image:       in.Image,
		Vendor:      in.Vendor,
		Delivery:    in.Delivery,
		MaxQuantity: in.MaxQuantity,
	})
}

func removeItem(lines []Line, id string) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ID == id {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func updateQuantity(lines []Line, id string, qty int) []Line {
	if qty <= 0 {
		// a line must never exist with a non-positive quantity
		return removeItem(lines, id)
	}
	out := copyLines(lines)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = clampQuantity(qty, out[i].MaxQuantity)
			break
		}
	}
	return out
}

// sanitize drops malformed entries from a hydrated snapshot so the cart
// invariants hold even when storage contains stale or hand-edited data.
// Duplicate ids keep the first occurrence.
func sanitize(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if l.ID == "" || l.Quantity < 1 || l.UnitPrice < 0 || seen[l.ID] {
			continue
		}
		l.Quantity = clampQuantity(l.Quantity, l.MaxQuantity)
		seen[l.ID] = true
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// clampQuantity enforces the stock ceiling. A max of zero means no ceiling.
func clampQuantity(qty, max int) int {
	if max > 0 && qty > max {
		return max
	}
	return qty
}

func copyLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
