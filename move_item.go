package main

import (
	"time"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// moveItem is the single authoritative path for all inventory and
// equipment rearrangement. Every branch either completes a consistent
// relocation or rejects with no state change.

func (h *Hub) rejectMove(playerID, reason string) {
	h.send(playerID, moveItemRejectedMessage{Type: "moveItemRejected", Reason: reason})
}

// resolvedSource identifies where an item currently sits.
type resolvedSource struct {
	item  *state.Item
	index int             // bag slot, -1 otherwise
	slot  state.EquipSlot // equip slot, "" otherwise
	drop  *state.WorldDrop
}

// resolveSource locates the owner-asserted item, refusing when the id
// is not where the client claims it is. Caller holds the hub lock.
func (w *World) resolveSource(player *playerState, itemID, fromWhere string, fromIndex *int, fromSlot state.EquipSlot) (resolvedSource, string) {
	src := resolvedSource{index: -1}
	if itemID == "" {
		return src, "no item specified"
	}

	switch fromWhere {
	case fromBag:
		if fromIndex != nil {
			src.index = *fromIndex
			src.item = player.Inventory.At(src.index)
		} else {
			src.index, src.item = player.Inventory.FindByID(itemID)
		}
		if src.item == nil || src.item.ID != itemID {
			return src, "that item is not in your pack"
		}
	case fromEquip:
		if fromSlot != "" {
			src.slot = fromSlot
			src.item = player.Equipment.Get(src.slot)
		} else {
			src.slot, src.item = player.Equipment.FindByID(itemID)
		}
		if src.item == nil || src.item.ID != itemID {
			return src, "that item is not equipped"
		}
	case fromWorld:
		for _, drop := range w.drops {
			if drop.Item != nil && drop.Item.ID == itemID {
				src.drop = drop
				src.item = drop.Item
				break
			}
		}
		if src.drop == nil {
			return src, "that item is no longer there"
		}
		if time.Now().UnixMilli() < src.drop.NoPickupUntil {
			return src, "that item cannot be picked up yet"
		}
		if !withinRadius(player.X, player.Y, src.drop.X, src.drop.Y, src.drop.PickRadius+32) {
			return src, "too far away"
		}
	default:
		return src, "unknown source container"
	}
	return src, ""
}

// equipCompatibility enforces what may sit in which slot.
func equipCompatibility(item *state.Item, slot state.EquipSlot, equip *state.Equipment) string {
	switch item.Kind {
	case state.ItemKindWeapon:
		if slot != state.SlotMainhand && slot != state.SlotOffhand {
			return "weapons go in a hand slot"
		}
		if item.TwoHanded && slot != state.SlotMainhand {
			return "a two-handed weapon must be wielded in the main hand"
		}
		if slot == state.SlotOffhand && equip.OffhandBlocked() {
			return "both hands are already occupied"
		}
	case state.ItemKindArmor:
		if item.Slot != slot {
			return "that does not fit there"
		}
	default:
		return "that cannot be equipped"
	}
	return ""
}

func (h *Hub) handleMoveItem(playerID string, cmd *moveItemCommand) {
	h.mu.Lock()
	w := h.world
	player := w.players[playerID]
	if player == nil {
		h.mu.Unlock()
		return
	}

	src, failure := w.resolveSource(player, cmd.ItemID, cmd.FromWhere, cmd.FromIndex, cmd.FromSlot)
	if failure != "" {
		h.mu.Unlock()
		h.rejectMove(playerID, failure)
		return
	}
	item := src.item

	// Currency coming out of the world folds into pyreals, same as the
	// pickup path; it never occupies a bag slot.
	if cmd.FromWhere == fromWorld && item.Kind == state.ItemKindCurrency {
		delete(w.drops, src.drop.ID)
		player.Pyreals += item.Amount
		w.queue(pickupItemMessage{Type: "pickupItem", DropID: src.drop.ID, PlayerID: playerID})
		w.queue(playerUpdateMessage{Type: "playerUpdate", Player: player.snapshot()})
		w.persistPlayer(player)
		inv := player.Inventory.Clone()
		pyreals := player.Pyreals
		pending := w.drainPending()
		h.mu.Unlock()
		h.flushPending(pending)
		h.send(playerID, inventoryUpdatedMessage{Type: "inventoryUpdated", Inventory: inv, Pyreals: pyreals})
		return
	}

	// Destination checks, all before any mutation.
	var displaced *state.Item
	switch cmd.ToWhere {
	case fromBag:
		if cmd.ToIndex == nil || *cmd.ToIndex < 0 || *cmd.ToIndex >= state.InventorySize {
			h.mu.Unlock()
			h.rejectMove(playerID, "invalid pack slot")
			return
		}
		displaced = player.Inventory.At(*cmd.ToIndex)
	case fromEquip:
		if !state.ValidEquipSlot(cmd.ToSlot) {
			h.mu.Unlock()
			h.rejectMove(playerID, "unknown equipment slot")
			return
		}
		if reason := equipCompatibility(item, cmd.ToSlot, &player.Equipment); reason != "" {
			h.mu.Unlock()
			h.rejectMove(playerID, reason)
			return
		}
		displaced = player.Equipment.Get(cmd.ToSlot)
	default:
		h.mu.Unlock()
		h.rejectMove(playerID, "unknown destination container")
		return
	}

	if displaced != nil && displaced.ID == item.ID {
		// Moving an item onto itself is a no-op.
		h.mu.Unlock()
		return
	}

	// A displaced item swaps back into the source location; when the
	// source is an equipment slot it has to fit there.
	if displaced != nil && cmd.FromWhere == fromEquip {
		if reason := equipCompatibility(displaced, src.slot, &player.Equipment); reason != "" {
			h.mu.Unlock()
			h.rejectMove(playerID, reason)
			return
		}
	}

	// Equipping a two-handed weapon evicts the offhand item into the
	// pack; make sure there will be room before touching anything.
	evictsOffhand := cmd.ToWhere == fromEquip && cmd.ToSlot == state.SlotMainhand &&
		item.TwoHanded && player.Equipment.Get(state.SlotOffhand) != nil
	if evictsOffhand {
		roomFrees := cmd.FromWhere == fromBag && displaced == nil
		if player.Inventory.FirstEmpty() < 0 && !roomFrees {
			h.mu.Unlock()
			h.rejectMove(playerID, "no room in your pack for the offhand item")
			return
		}
	}

	// Execute: detach source, detach destination, evict, place, return.
	switch cmd.FromWhere {
	case fromBag:
		player.Inventory.Remove(src.index)
	case fromEquip:
		player.Equipment.Remove(src.slot)
	case fromWorld:
		delete(w.drops, src.drop.ID)
		w.queue(pickupItemMessage{Type: "pickupItem", DropID: src.drop.ID, PlayerID: playerID})
	}

	switch cmd.ToWhere {
	case fromBag:
		player.Inventory.Remove(*cmd.ToIndex)
	case fromEquip:
		player.Equipment.Remove(cmd.ToSlot)
	}

	// The displaced item goes home before the offhand eviction so the
	// eviction cannot steal the freed source slot out from under it.
	if displaced != nil {
		switch cmd.FromWhere {
		case fromBag:
			player.Inventory.Set(src.index, displaced)
		case fromEquip:
			player.Equipment.Set(src.slot, displaced)
		case fromWorld:
			w.addWorldDrop(displaced, src.drop.X, src.drop.Y, 0, -80, dropNoPickupDelay)
		}
	}

	if evictsOffhand {
		if off := player.Equipment.Remove(state.SlotOffhand); off != nil {
			player.Inventory.Set(player.Inventory.FirstEmpty(), off)
		}
	}

	switch cmd.ToWhere {
	case fromBag:
		player.Inventory.Set(*cmd.ToIndex, item)
	case fromEquip:
		player.Equipment.Set(cmd.ToSlot, item)
	}

	equipTouched := cmd.FromWhere == fromEquip || cmd.ToWhere == fromEquip
	player.Reach = state.ReachForWeapon(player.Equipment.Mainhand)
	w.persistPlayer(player)

	inv := player.Inventory.Clone()
	equipSnap := player.Equipment.Snapshot()
	reach := player.Reach
	pyreals := player.Pyreals
	pending := w.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
	h.send(playerID, inventoryUpdatedMessage{Type: "inventoryUpdated", Inventory: inv, Pyreals: pyreals})
	if equipTouched {
		h.send(playerID, equipmentUpdatedMessage{Type: "equipmentUpdated", Equipment: equipSnap, Reach: reach})
		h.broadcastExcept(playerID, equipUpdateMessage{Type: "equipUpdate", ID: playerID, Equipment: equipSnap, Reach: reach})
	}
}

func (h *Hub) handleDropItem(playerID string, cmd *dropItemCommand) {
	if cmd.FromWhere != fromBag && cmd.FromWhere != fromEquip {
		h.rejectMove(playerID, "unknown source container")
		return
	}

	h.mu.Lock()
	w := h.world
	player := w.players[playerID]
	if player == nil {
		h.mu.Unlock()
		return
	}

	src, failure := w.resolveSource(player, cmd.ItemID, cmd.FromWhere, cmd.FromIndex, cmd.FromSlot)
	if failure != "" {
		h.mu.Unlock()
		h.rejectMove(playerID, failure)
		return
	}

	switch cmd.FromWhere {
	case fromBag:
		player.Inventory.Remove(src.index)
	case fromEquip:
		player.Equipment.Remove(src.slot)
		player.Reach = state.ReachForWeapon(player.Equipment.Mainhand)
	}

	w.addWorldDrop(src.item, cmd.X, cmd.Y, 0, -120, dropNoPickupDelay)
	w.persistPlayer(player)

	inv := player.Inventory.Clone()
	equipSnap := player.Equipment.Snapshot()
	reach := player.Reach
	pyreals := player.Pyreals
	equipTouched := cmd.FromWhere == fromEquip
	pending := w.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
	h.send(playerID, inventoryUpdatedMessage{Type: "inventoryUpdated", Inventory: inv, Pyreals: pyreals})
	if equipTouched {
		h.send(playerID, equipmentUpdatedMessage{Type: "equipmentUpdated", Equipment: equipSnap, Reach: reach})
		h.broadcastExcept(playerID, equipUpdateMessage{Type: "equipUpdate", ID: playerID, Equipment: equipSnap, Reach: reach})
	}
}

func (h *Hub) handlePickupItem(playerID string, cmd *pickupItemCommand) {
	h.mu.Lock()
	w := h.world
	player := w.players[playerID]
	drop := w.drops[cmd.DropID]
	if player == nil || player.IsDead || drop == nil {
		h.mu.Unlock()
		return
	}
	if time.Now().UnixMilli() < drop.NoPickupUntil {
		h.mu.Unlock()
		return
	}
	if !withinRadius(player.X, player.Y, drop.X, drop.Y, drop.PickRadius+32) {
		h.mu.Unlock()
		h.rejectMove(playerID, "too far away")
		return
	}

	item := drop.Item

	// Currency never takes a pack slot; it folds into pyreals.
	if item.Kind == state.ItemKindCurrency {
		delete(w.drops, cmd.DropID)
		player.Pyreals += item.Amount
		w.queue(pickupItemMessage{Type: "pickupItem", DropID: cmd.DropID, PlayerID: playerID})
		w.queue(playerUpdateMessage{Type: "playerUpdate", Player: player.snapshot()})
		w.persistPlayer(player)
		pending := w.drainPending()
		h.mu.Unlock()
		h.flushPending(pending)
		return
	}

	slot := -1
	if cmd.SlotIndex != nil && player.Inventory.At(*cmd.SlotIndex) == nil &&
		*cmd.SlotIndex >= 0 && *cmd.SlotIndex < state.InventorySize {
		slot = *cmd.SlotIndex
	}
	if slot < 0 {
		slot = player.Inventory.FirstEmpty()
	}
	if slot < 0 {
		h.mu.Unlock()
		h.rejectMove(playerID, "your pack is full")
		return
	}

	delete(w.drops, cmd.DropID)
	player.Inventory.Set(slot, item)
	w.queue(pickupItemMessage{Type: "pickupItem", DropID: cmd.DropID, PlayerID: playerID})
	w.persistPlayer(player)

	inv := player.Inventory.Clone()
	pyreals := player.Pyreals
	pending := w.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
	h.send(playerID, inventoryUpdatedMessage{Type: "inventoryUpdated", Inventory: inv, Pyreals: pyreals})
}

func (h *Hub) handleSellItem(playerID string, cmd *sellItemCommand) {
	if cmd.FromWhere != fromBag && cmd.FromWhere != fromEquip {
		h.rejectMove(playerID, "unknown source container")
		return
	}

	h.mu.Lock()
	w := h.world
	player := w.players[playerID]
	if player == nil {
		h.mu.Unlock()
		return
	}

	src, failure := w.resolveSource(player, cmd.ItemID, cmd.FromWhere, cmd.FromIndex, cmd.FromSlot)
	if failure != "" {
		h.mu.Unlock()
		h.rejectMove(playerID, failure)
		return
	}

	switch cmd.FromWhere {
	case fromBag:
		player.Inventory.Remove(src.index)
	case fromEquip:
		player.Equipment.Remove(src.slot)
		player.Reach = state.ReachForWeapon(player.Equipment.Mainhand)
	}
	player.Pyreals += src.item.Value()
	w.persistPlayer(player)

	inv := player.Inventory.Clone()
	equipSnap := player.Equipment.Snapshot()
	reach := player.Reach
	pyreals := player.Pyreals
	snap := player.snapshot()
	equipTouched := cmd.FromWhere == fromEquip
	h.mu.Unlock()

	h.send(playerID, inventoryUpdatedMessage{Type: "inventoryUpdated", Inventory: inv, Pyreals: pyreals})
	if equipTouched {
		h.send(playerID, equipmentUpdatedMessage{Type: "equipmentUpdated", Equipment: equipSnap, Reach: reach})
		h.broadcastExcept(playerID, equipUpdateMessage{Type: "equipUpdate", ID: playerID, Equipment: equipSnap, Reach: reach})
	}
	h.broadcastExcept(playerID, playerUpdateMessage{Type: "playerUpdate", Player: snap})
}

func (h *Hub) handleSellAllInventory(playerID string) {
	h.mu.Lock()
	w := h.world
	player := w.players[playerID]
	if player == nil {
		h.mu.Unlock()
		return
	}

	total := 0
	for i, item := range player.Inventory.Slots {
		if item == nil {
			continue
		}
		total += item.Value()
		player.Inventory.Remove(i)
	}
	player.Pyreals += total
	w.persistPlayer(player)

	inv := player.Inventory.Clone()
	pyreals := player.Pyreals
	snap := player.snapshot()
	h.mu.Unlock()

	h.send(playerID, inventoryUpdatedMessage{Type: "inventoryUpdated", Inventory: inv, Pyreals: pyreals})
	h.broadcastExcept(playerID, playerUpdateMessage{Type: "playerUpdate", Player: snap})
}
