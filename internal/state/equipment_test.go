package state

import "testing"

func newTestWeapon(twoHanded bool) *Item {
	return &Item{
		ID:        NewItemID(),
		Name:      "Training Sword",
		Kind:      ItemKindWeapon,
		Rarity:    RarityCommon,
		Level:     1,
		DmgMin:    2,
		DmgMax:    6,
		Subtype:   "sword",
		TwoHanded: twoHanded,
	}
}

func TestEquipmentSetAndRemove(t *testing.T) {
	var equip Equipment

	weapon := newTestWeapon(false)
	if !equip.Set(SlotMainhand, weapon) {
		t.Fatalf("expected mainhand set to succeed")
	}
	if got := equip.Get(SlotMainhand); got != weapon {
		t.Fatalf("expected mainhand to hold the weapon, got %+v", got)
	}

	removed := equip.Remove(SlotMainhand)
	if removed != weapon {
		t.Fatalf("expected remove to return the weapon")
	}
	if equip.Get(SlotMainhand) != nil {
		t.Fatalf("expected mainhand to be empty after remove")
	}
}

func TestEquipmentRejectsUnknownSlot(t *testing.T) {
	var equip Equipment
	if equip.Set(EquipSlot("tail"), newTestWeapon(false)) {
		t.Fatalf("expected unknown slot to be rejected")
	}
}

func TestTwoHandedWeaponStoredOnce(t *testing.T) {
	var equip Equipment
	weapon := newTestWeapon(true)
	equip.Set(SlotMainhand, weapon)

	if !equip.OffhandBlocked() {
		t.Fatalf("expected offhand to be blocked by two-handed weapon")
	}
	if equip.Offhand != nil {
		t.Fatalf("expected internal offhand slot to stay empty, got %+v", equip.Offhand)
	}

	items := equip.Items()
	if len(items) != 1 {
		t.Fatalf("expected the weapon to appear exactly once, got %d items", len(items))
	}
}

func TestSnapshotMirrorsTwoHandedIntoOffhand(t *testing.T) {
	var equip Equipment
	weapon := newTestWeapon(true)
	equip.Set(SlotMainhand, weapon)

	snap := equip.Snapshot()
	if snap.Mainhand == nil || snap.Offhand == nil {
		t.Fatalf("expected both hands populated in snapshot")
	}
	if snap.Offhand.ID != weapon.ID {
		t.Fatalf("expected offhand mirror to share the weapon id, got %q", snap.Offhand.ID)
	}

	// Round-trip through Normalize restores single storage.
	snap.Normalize()
	if snap.Offhand != nil {
		t.Fatalf("expected Normalize to clear the mirrored offhand")
	}
	if snap.Mainhand == nil || snap.Mainhand.ID != weapon.ID {
		t.Fatalf("expected Normalize to keep the mainhand weapon")
	}
}

func TestSnapshotDoesNotMirrorOneHandedWeapon(t *testing.T) {
	var equip Equipment
	equip.Set(SlotMainhand, newTestWeapon(false))

	snap := equip.Snapshot()
	if snap.Offhand != nil {
		t.Fatalf("expected offhand to stay empty for a one-handed weapon")
	}
}

func TestNormalizeKeepsDistinctOffhandItem(t *testing.T) {
	var equip Equipment
	equip.Set(SlotMainhand, newTestWeapon(false))
	shield := &Item{ID: NewItemID(), Name: "Buckler", Kind: ItemKindWeapon, Subtype: "shield"}
	equip.Set(SlotOffhand, shield)

	equip.Normalize()
	if equip.Offhand == nil || equip.Offhand.ID != shield.ID {
		t.Fatalf("expected distinct offhand item to survive Normalize")
	}
}

func TestEquipmentFindByID(t *testing.T) {
	var equip Equipment
	weapon := newTestWeapon(false)
	equip.Set(SlotMainhand, weapon)

	slot, found := equip.FindByID(weapon.ID)
	if found == nil || slot != SlotMainhand {
		t.Fatalf("expected to find weapon in mainhand, got slot %q", slot)
	}

	if _, missing := equip.FindByID("nope"); missing != nil {
		t.Fatalf("expected unknown id to return nil")
	}
}
