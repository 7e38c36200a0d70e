package cart

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func soapInput() LineInput {
	return LineInput{ID: "p1", Name: "Soap", UnitPrice: 100, Vendor: "V1", Delivery: "1-2 days"}
}

// checkInvariants verifies the aggregate invariants that must hold after
// every transition: unique ids, positive quantities, and aggregates equal
// to a fresh recomputation.
func checkInvariants(t *testing.T, s State) {
	t.Helper()
	seen := map[string]bool{}
	for _, l := range s.Lines {
		if seen[l.ID] {
			t.Fatalf("duplicate line id %q", l.ID)
		}
		seen[l.ID] = true
		if l.Quantity < 1 {
			t.Fatalf("line %q has quantity %d", l.ID, l.Quantity)
		}
	}
	subtotal, count := recompute(s.Lines)
	if s.Subtotal != subtotal || s.ItemCount != count {
		t.Fatalf("aggregates drifted: have subtotal=%v itemCount=%d, recomputed %v/%d",
			s.Subtotal, s.ItemCount, subtotal, count)
	}
	if s.Subtotal < 0 || s.ItemCount < 0 {
		t.Fatalf("negative aggregates: %v / %d", s.Subtotal, s.ItemCount)
	}
}

func TestAddItemMergesSameID(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	s = Reduce(s, AddItem{Line: soapInput()})

	if len(s.Lines) != 1 {
		t.Fatalf("expected 1 line after adding same product twice, got %d", len(s.Lines))
	}
	if s.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", s.Lines[0].Quantity)
	}
	if s.Subtotal != 200 || s.ItemCount != 2 {
		t.Fatalf("expected subtotal=200 itemCount=2, got %v/%d", s.Subtotal, s.ItemCount)
	}
	checkInvariants(t, s)
}

func TestAddItemMergeKeepsFirstDescription(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	// second add carries different display fields; they must be ignored
	s = Reduce(s, AddItem{Line: LineInput{ID: "p1", Name: "Renamed", UnitPrice: 999, Vendor: "V2"}})

	if s.Lines[0].Name != "Soap" || s.Lines[0].UnitPrice != 100 || s.Lines[0].Vendor != "V1" {
		t.Fatalf("merge overwrote descriptive fields: %+v", s.Lines[0])
	}
	checkInvariants(t, s)
}

func TestAddItemAppendsNewIDsLast(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	s = Reduce(s, AddItem{Line: LineInput{ID: "p2", Name: "Brush", UnitPrice: 50, Vendor: "V1"}})
	s = Reduce(s, AddItem{Line: soapInput()})
	s = Reduce(s, AddItem{Line: LineInput{ID: "p3", Name: "Towel", UnitPrice: 30, Vendor: "V2"}})

	ids := []string{s.Lines[0].ID, s.Lines[1].ID, s.Lines[2].ID}
	if diff := cmp.Diff([]string{"p1", "p2", "p3"}, ids); diff != "" {
		t.Fatalf("insertion order not preserved (-want +got):\n%s", diff)
	}
	checkInvariants(t, s)
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	s = Reduce(s, UpdateQuantity{ID: "p1", Quantity: 3})
	if s.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", s.Lines[0].Quantity)
	}

	s = Reduce(s, UpdateQuantity{ID: "p1", Quantity: 0})
	if len(s.Lines) != 0 || s.Subtotal != 0 || s.ItemCount != 0 {
		t.Fatalf("expected empty state after update to zero, got %+v", s)
	}
	checkInvariants(t, s)
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	s = Reduce(s, UpdateQuantity{ID: "p1", Quantity: -4})
	if len(s.Lines) != 0 {
		t.Fatalf("expected line removed on negative quantity, got %+v", s.Lines)
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	next := Reduce(s, UpdateQuantity{ID: "ghost", Quantity: 7})
	if diff := cmp.Diff(s, next); diff != "" {
		t.Fatalf("state changed on unknown id (-want +got):\n%s", diff)
	}
}

func TestUpdateQuantityClampsToMax(t *testing.T) {
	in := soapInput()
	in.MaxQuantity = 5
	s := Reduce(State{}, AddItem{Line: in})

	s = Reduce(s, UpdateQuantity{ID: "p1", Quantity: 10})
	if s.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity clamped to 5, got %d", s.Lines[0].Quantity)
	}

	// repeated adds clamp too, same policy
	for i := 0; i < 10; i++ {
		s = Reduce(s, AddItem{Line: in})
	}
	if s.Lines[0].Quantity != 5 {
		t.Fatalf("expected AddItem increments clamped to 5, got %d", s.Lines[0].Quantity)
	}
	checkInvariants(t, s)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	next := Reduce(s, RemoveItem{ID: "nonexistent"})
	if diff := cmp.Diff(s, next); diff != "" {
		t.Fatalf("state changed on removing absent id (-want +got):\n%s", diff)
	}

	empty := Reduce(State{}, RemoveItem{ID: "nonexistent"})
	if len(empty.Lines) != 0 || empty.Subtotal != 0 || empty.ItemCount != 0 {
		t.Fatalf("expected empty state unchanged, got %+v", empty)
	}
}

func TestClearEmptiesState(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	s = Reduce(s, Clear{})
	if len(s.Lines) != 0 || s.Subtotal != 0 || s.ItemCount != 0 {
		t.Fatalf("expected empty state after clear, got %+v", s)
	}
}

func TestLoadIgnoredWhenStateNotEmpty(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	loaded := Reduce(s, Load{Lines: []Line{{ID: "stale", Name: "Old", UnitPrice: 1, Quantity: 9, Vendor: "V9"}}})
	if diff := cmp.Diff(s, loaded); diff != "" {
		t.Fatalf("late load clobbered state (-want +got):\n%s", diff)
	}
}

func TestLoadSanitizesSnapshot(t *testing.T) {
	s := Reduce(State{}, Load{Lines: []Line{
		{ID: "p1", Name: "Soap", UnitPrice: 100, Quantity: 2, Vendor: "V1"},
		{ID: "p1", Name: "Soap dup", UnitPrice: 100, Quantity: 1, Vendor: "V1"},
		{ID: "", Name: "No id", UnitPrice: 10, Quantity: 1, Vendor: "V1"},
		{ID: "p2", Name: "Broken qty", UnitPrice: 10, Quantity: 0, Vendor: "V1"},
		{ID: "p3", Name: "Over max", UnitPrice: 20, Quantity: 9, MaxQuantity: 4, Vendor: "V2"},
	}})

	if len(s.Lines) != 2 {
		t.Fatalf("expected 2 surviving lines, got %d: %+v", len(s.Lines), s.Lines)
	}
	if s.Lines[0].ID != "p1" || s.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line %+v", s.Lines[0])
	}
	if s.Lines[1].ID != "p3" || s.Lines[1].Quantity != 4 {
		t.Fatalf("expected hydrated quantity clamped to 4, got %+v", s.Lines[1])
	}
	checkInvariants(t, s)
}

func TestAggregatesOrderIndependent(t *testing.T) {
	inputs := []LineInput{
		{ID: "a", Name: "A", UnitPrice: 10, Vendor: "V1"},
		{ID: "b", Name: "B", UnitPrice: 25.5, Vendor: "V1"},
		{ID: "c", Name: "C", UnitPrice: 3, Vendor: "V2"},
	}

	forward := State{}
	for _, in := range inputs {
		forward = Reduce(forward, AddItem{Line: in})
	}
	backward := State{}
	for i := len(inputs) - 1; i >= 0; i-- {
		backward = Reduce(backward, AddItem{Line: inputs[i]})
	}

	if forward.Subtotal != backward.Subtotal || forward.ItemCount != backward.ItemCount {
		t.Fatalf("aggregates depend on insertion order: %v/%d vs %v/%d",
			forward.Subtotal, forward.ItemCount, backward.Subtotal, backward.ItemCount)
	}
}

func TestInvariantsHoldAcrossCommandSequence(t *testing.T) {
	cmds := []Command{
		AddItem{Line: soapInput()},
		AddItem{Line: LineInput{ID: "p2", Name: "Brush", UnitPrice: 49.5, Vendor: "V2", MaxQuantity: 3}},
		AddItem{Line: soapInput()},
		UpdateQuantity{ID: "p2", Quantity: 8},
		RemoveItem{ID: "ghost"},
		UpdateQuantity{ID: "p1", Quantity: 4},
		AddItem{Line: LineInput{ID: "p3", Name: "Towel", UnitPrice: 12, Vendor: "V1"}},
		UpdateQuantity{ID: "p3", Quantity: -1},
		RemoveItem{ID: "p2"},
		Clear{},
		AddItem{Line: soapInput()},
	}

	s := State{}
	for i, cmd := range cmds {
		s = Reduce(s, cmd)
		t.Run(fmt.Sprintf("step_%d", i), func(t *testing.T) {
			checkInvariants(t, s)
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Reduce(State{}, AddItem{Line: soapInput()})
	before := cmp.Diff(State{}, s)

	_ = Reduce(s, UpdateQuantity{ID: "p1", Quantity: 9})
	_ = Reduce(s, RemoveItem{ID: "p1"})

	if after := cmp.Diff(State{}, s); before != after {
		t.Fatalf("input state mutated by Reduce")
	}
	if s.Lines[0].Quantity != 1 {
		t.Fatalf("input line mutated, quantity=%d", s.Lines[0].Quantity)
	}
}
