package state

// InventorySize is the fixed number of bag slots every player has.
const InventorySize = 12

// Inventory is a fixed-size ordered bag. Empty slots are nil.
type Inventory struct {
	Slots []*Item `json:"slots"`
}

// NewInventory returns an empty bag with every slot allocated.
func NewInventory() Inventory {
	return Inventory{Slots: make([]*Item, InventorySize)}
}

func (inv *Inventory) ensure() {
	if len(inv.Slots) < InventorySize {
		slots := make([]*Item, InventorySize)
		copy(slots, inv.Slots)
		inv.Slots = slots
	}
}

// At returns the item in a slot, or nil when the index is empty or out
// of range.
func (inv *Inventory) At(index int) *Item {
	if inv == nil || index < 0 || index >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[index]
}

// Set places an item into a slot, reporting false for bad indexes.
func (inv *Inventory) Set(index int, item *Item) bool {
	if inv == nil {
		return false
	}
	inv.ensure()
	if index < 0 || index >= len(inv.Slots) {
		return false
	}
	inv.Slots[index] = item
	return true
}

// Remove clears a slot and returns whatever occupied it.
func (inv *Inventory) Remove(index int) *Item {
	if inv == nil || index < 0 || index >= len(inv.Slots) {
		return nil
	}
	removed := inv.Slots[index]
	inv.Slots[index] = nil
	return removed
}

// FirstEmpty returns the lowest free slot index, or -1 when full.
func (inv *Inventory) FirstEmpty() int {
	if inv == nil {
		return -1
	}
	inv.ensure()
	for i, item := range inv.Slots {
		if item == nil {
			return i
		}
	}
	return -1
}

// FindByID locates an item by id and reports its slot index.
func (inv *Inventory) FindByID(id string) (int, *Item) {
	if inv == nil || id == "" {
		return -1, nil
	}
	for i, item := range inv.Slots {
		if item != nil && item.ID == id {
			return i, item
		}
	}
	return -1, nil
}

// Count reports how many slots are occupied.
func (inv *Inventory) Count() int {
	if inv == nil {
		return 0
	}
	count := 0
	for _, item := range inv.Slots {
		if item != nil {
			count++
		}
	}
	return count
}

// Clone makes a deep copy of the bag.
func (inv *Inventory) Clone() Inventory {
	cloned := NewInventory()
	if inv == nil {
		return cloned
	}
	for i, item := range inv.Slots {
		if i >= InventorySize {
			break
		}
		cloned.Slots[i] = item.Clone()
	}
	return cloned
}
