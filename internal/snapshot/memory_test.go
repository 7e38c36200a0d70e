package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sittikornl/marketplace-backend/internal/cart"
)

func TestMemoryStoreRoundTripThroughEngine(t *testing.T) {
	store := NewMemoryStore()

	e := cart.NewEngine("user:7", store, nil)
	e.Hydrate()
	e.Apply(cart.AddItem{Line: cart.LineInput{ID: "p1", Name: "Soap", UnitPrice: 100, Vendor: "V1", Delivery: "1-2 days"}})
	e.Apply(cart.AddItem{Line: cart.LineInput{ID: "p2", Name: "Brush", UnitPrice: 49.5, Vendor: "V2", MaxQuantity: 3}})
	want := e.Apply(cart.UpdateQuantity{ID: "p2", Quantity: 2})

	// a reload builds a new engine over the same store
	e2 := cart.NewEngine("user:7", store, nil)
	e2.Hydrate()
	if diff := cmp.Diff(want, e2.State()); diff != "" {
		t.Fatalf("round trip lost state (-want +got):\n%s", diff)
	}
	if e2.State().Subtotal != want.Subtotal || e2.State().ItemCount != want.ItemCount {
		t.Fatalf("recomputed aggregates differ from originals")
	}
}

func TestMemoryStoreClearRemovesSlot(t *testing.T) {
	store := NewMemoryStore()

	e := cart.NewEngine("user:7", store, nil)
	e.Apply(cart.AddItem{Line: cart.LineInput{ID: "p1", Name: "Soap", UnitPrice: 100, Vendor: "V1"}})
	if !store.Has("user:7") {
		t.Fatalf("expected snapshot after add")
	}

	e.Apply(cart.Clear{})
	if store.Has("user:7") {
		t.Fatalf("expected slot gone after clear, not empty-but-present")
	}
}

func TestMemoryStoreScopesByOwner(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Save("user:1", []cart.Line{{ID: "a", Name: "A", UnitPrice: 1, Quantity: 1, Vendor: "V"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Load("user:2"); err != cart.ErrNoSnapshot {
		t.Fatalf("expected ErrNoSnapshot for a different owner, got %v", err)
	}
}

func TestMemoryStoreCopiesLines(t *testing.T) {
	store := NewMemoryStore()
	lines := []cart.Line{{ID: "a", Name: "A", UnitPrice: 1, Quantity: 1, Vendor: "V"}}
	if err := store.Save("user:1", lines); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	lines[0].Quantity = 99

	got, err := store.Load("user:1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got[0].Quantity != 1 {
		t.Fatalf("stored snapshot aliased caller slice, quantity=%d", got[0].Quantity)
	}
}
