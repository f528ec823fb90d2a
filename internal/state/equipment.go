package state

// EquipSlot names one of the twelve fixed equipment slots.
type EquipSlot string

const (
	SlotHead      EquipSlot = "head"
	SlotNeck      EquipSlot = "neck"
	SlotShoulders EquipSlot = "shoulders"
	SlotChest     EquipSlot = "chest"
	SlotWaist     EquipSlot = "waist"
	SlotLegs      EquipSlot = "legs"
	SlotFeet      EquipSlot = "feet"
	SlotWrists    EquipSlot = "wrists"
	SlotHands     EquipSlot = "hands"
	SlotMainhand  EquipSlot = "mainhand"
	SlotOffhand   EquipSlot = "offhand"
	SlotTrinket   EquipSlot = "trinket"
)

// EquipSlots lists every slot in display order.
var EquipSlots = []EquipSlot{
	SlotHead, SlotNeck, SlotShoulders, SlotChest, SlotWaist, SlotLegs,
	SlotFeet, SlotWrists, SlotHands, SlotMainhand, SlotOffhand, SlotTrinket,
}

// ValidEquipSlot reports whether the string names a known slot.
func ValidEquipSlot(slot EquipSlot) bool {
	for _, s := range EquipSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Equipment holds one item per fixed slot. A two-handed weapon is
// stored once in the mainhand slot; the offhand slot stays nil while
// OffhandBlocked reports true. Snapshot mirrors the weapon into the
// offhand field so clients keep seeing the historical wire shape.
type Equipment struct {
	Head      *Item `json:"head"`
	Neck      *Item `json:"neck"`
	Shoulders *Item `json:"shoulders"`
	Chest     *Item `json:"chest"`
	Waist     *Item `json:"waist"`
	Legs      *Item `json:"legs"`
	Feet      *Item `json:"feet"`
	Wrists    *Item `json:"wrists"`
	Hands     *Item `json:"hands"`
	Mainhand  *Item `json:"mainhand"`
	Offhand   *Item `json:"offhand"`
	Trinket   *Item `json:"trinket"`
}

func (e *Equipment) slotRef(slot EquipSlot) **Item {
	switch slot {
	case SlotHead:
		return &e.Head
	case SlotNeck:
		return &e.Neck
	case SlotShoulders:
		return &e.Shoulders
	case SlotChest:
		return &e.Chest
	case SlotWaist:
		return &e.Waist
	case SlotLegs:
		return &e.Legs
	case SlotFeet:
		return &e.Feet
	case SlotWrists:
		return &e.Wrists
	case SlotHands:
		return &e.Hands
	case SlotMainhand:
		return &e.Mainhand
	case SlotOffhand:
		return &e.Offhand
	case SlotTrinket:
		return &e.Trinket
	default:
		return nil
	}
}

// Get returns the item in a slot, or nil.
func (e *Equipment) Get(slot EquipSlot) *Item {
	if e == nil {
		return nil
	}
	ref := e.slotRef(slot)
	if ref == nil {
		return nil
	}
	return *ref
}

// Set stores an item in a slot, returning false for unknown slots.
func (e *Equipment) Set(slot EquipSlot, item *Item) bool {
	if e == nil {
		return false
	}
	ref := e.slotRef(slot)
	if ref == nil {
		return false
	}
	*ref = item
	return true
}

// Remove clears a slot and returns whatever occupied it.
func (e *Equipment) Remove(slot EquipSlot) *Item {
	if e == nil {
		return nil
	}
	ref := e.slotRef(slot)
	if ref == nil {
		return nil
	}
	removed := *ref
	*ref = nil
	return removed
}

// OffhandBlocked reports whether a two-handed mainhand weapon occupies
// both hands.
func (e *Equipment) OffhandBlocked() bool {
	return e != nil && e.Mainhand != nil && e.Mainhand.TwoHanded
}

// FindByID locates an item by id and reports its slot.
func (e *Equipment) FindByID(id string) (EquipSlot, *Item) {
	if e == nil || id == "" {
		return "", nil
	}
	for _, slot := range EquipSlots {
		if item := e.Get(slot); item != nil && item.ID == id {
			return slot, item
		}
	}
	return "", nil
}

// Items returns every equipped item exactly once.
func (e *Equipment) Items() []*Item {
	if e == nil {
		return nil
	}
	items := make([]*Item, 0, len(EquipSlots))
	for _, slot := range EquipSlots {
		if item := e.Get(slot); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Clone makes a deep copy of the equipment set.
func (e *Equipment) Clone() Equipment {
	var cloned Equipment
	if e == nil {
		return cloned
	}
	for _, slot := range EquipSlots {
		cloned.Set(slot, e.Get(slot).Clone())
	}
	return cloned
}

// Snapshot copies the equipment for serialization, mirroring a
// two-handed mainhand weapon into the offhand field.
func (e *Equipment) Snapshot() Equipment {
	snap := e.Clone()
	if e.OffhandBlocked() {
		snap.Offhand = snap.Mainhand
	}
	return snap
}

// Normalize undoes the wire-level two-handed mirror after decoding a
// persisted or transmitted snapshot, so the weapon is stored once.
func (e *Equipment) Normalize() {
	if e == nil {
		return
	}
	if e.Mainhand != nil && e.Mainhand.TwoHanded && e.Offhand != nil && e.Offhand.ID == e.Mainhand.ID {
		e.Offhand = nil
	}
}
