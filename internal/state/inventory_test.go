package state

import "testing"

func TestNewInventoryHasFixedSize(t *testing.T) {
	inv := NewInventory()
	if len(inv.Slots) != InventorySize {
		t.Fatalf("expected %d slots, got %d", InventorySize, len(inv.Slots))
	}
	if inv.Count() != 0 {
		t.Fatalf("expected a fresh bag to be empty")
	}
}

func TestInventorySetAndRemove(t *testing.T) {
	inv := NewInventory()
	item := &Item{ID: NewItemID(), Kind: ItemKindWeapon}

	if !inv.Set(3, item) {
		t.Fatalf("expected set into slot 3 to succeed")
	}
	if inv.At(3) != item {
		t.Fatalf("expected slot 3 to hold the item")
	}

	index, found := inv.FindByID(item.ID)
	if index != 3 || found != item {
		t.Fatalf("expected FindByID to locate slot 3, got %d", index)
	}

	if removed := inv.Remove(3); removed != item {
		t.Fatalf("expected remove to return the item")
	}
	if inv.Count() != 0 {
		t.Fatalf("expected bag to be empty after remove")
	}
}

func TestInventoryRejectsBadIndex(t *testing.T) {
	inv := NewInventory()
	if inv.Set(-1, &Item{ID: "a"}) {
		t.Fatalf("expected negative index to be rejected")
	}
	if inv.Set(InventorySize, &Item{ID: "b"}) {
		t.Fatalf("expected out-of-range index to be rejected")
	}
}

func TestInventoryFirstEmptySkipsOccupiedSlots(t *testing.T) {
	inv := NewInventory()
	inv.Set(0, &Item{ID: "a"})
	inv.Set(1, &Item{ID: "b"})

	if got := inv.FirstEmpty(); got != 2 {
		t.Fatalf("expected first empty slot 2, got %d", got)
	}

	for i := 0; i < InventorySize; i++ {
		inv.Set(i, &Item{ID: NewItemID()})
	}
	if got := inv.FirstEmpty(); got != -1 {
		t.Fatalf("expected -1 for a full bag, got %d", got)
	}
}

func TestInventoryCloneIsDeep(t *testing.T) {
	inv := NewInventory()
	inv.Set(0, &Item{ID: "a", Stats: map[string]int{"armor": 1}})

	cloned := inv.Clone()
	cloned.Slots[0].Stats["armor"] = 50

	if inv.Slots[0].Stats["armor"] != 1 {
		t.Fatalf("expected original bag untouched after clone mutation")
	}
}
