package main

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// deathFlavors are the system chat lines rolled when a player dies.
var deathFlavors = []string{
	"%s has been reduced to a cloud of pyreal dust.",
	"%s's death is mourned by absolutely no one.",
	"%s has perished. The vendor shrugs and restocks.",
	"%s met something with more hit points than sense.",
}

// handleAttackEnemy applies client-declared melee damage to a live
// enemy. The damage value is trusted as-is; recomputing it server-side
// from equipment is a known open question documented in DESIGN.md.
func (h *Hub) handleAttackEnemy(playerID string, cmd *attackEnemyCommand) {
	if cmd.Damage <= 0 {
		return
	}

	h.mu.Lock()
	player := h.world.players[playerID]
	enemy := h.world.enemies[cmd.ID]
	if player == nil || player.IsDead || enemy == nil {
		h.mu.Unlock()
		return
	}
	h.world.applyDamageToEnemy(enemy, cmd.Damage, playerID)
	pending := h.world.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
}

func (h *Hub) handleShootProjectile(playerID string, cmd *shootProjectileCommand) {
	if cmd.Damage <= 0 {
		return
	}

	h.mu.Lock()
	player := h.world.players[playerID]
	if player == nil || player.IsDead {
		h.mu.Unlock()
		return
	}

	projType := state.ProjectileArrow
	speed := arrowSpeed
	if cmd.WeaponType == "wand" || cmd.WeaponType == "staff" {
		projType = state.ProjectileFireball
		speed = fireballSpeed
	}

	h.world.spawnProjectile(state.Projectile{
		Type:    projType,
		X:       player.X,
		Y:       player.Y - 20,
		VX:      math.Cos(cmd.Direction) * speed,
		VY:      math.Sin(cmd.Direction) * speed,
		Damage:  cmd.Damage,
		OwnerID: playerID,
	})
	pending := h.world.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
}

// handleSpawnEnemy is the debug/manual creation path mirroring the
// spawner-driven one; the enemy belongs to no spawner.
func (h *Hub) handleSpawnEnemy(playerID string, cmd *spawnEnemyCommand) {
	level := cmd.Level
	if level < 1 {
		level = 1
	}

	h.mu.Lock()
	groundY := h.world.groundY(cmd.X, 0)
	h.world.spawnEnemy(cmd.X, groundY, level, state.EnemyTypeBasic, 0)
	pending := h.world.drainPending()
	h.mu.Unlock()

	logrus.WithFields(logrus.Fields{"player": playerID, "x": cmd.X, "level": level}).
		Info("manual enemy spawn")
	h.flushPending(pending)
}

// applyDamageToEnemy subtracts damage and resolves death. Caller holds
// the hub lock.
func (w *World) applyDamageToEnemy(enemy *enemyState, damage int, attackerID string) {
	enemy.Health -= damage
	if enemy.Health > 0 {
		w.queue(enemyUpdateMessage{Type: "enemyUpdate", Enemy: enemy.snapshot()})
		return
	}
	enemy.Health = 0
	w.killEnemy(enemy, attackerID)
}

// killEnemy removes the enemy, rolls loot into world drops, and rearms
// the owning spawner.
func (w *World) killEnemy(enemy *enemyState, killerID string) {
	delete(w.enemies, enemy.ID)

	if enemy.SpawnerID > 0 {
		for _, spawner := range w.spawners {
			if spawner.ID == enemy.SpawnerID && spawner.CurrentEnemyID == enemy.ID {
				spawner.CurrentEnemyID = 0
				spawner.RespawnAt = time.Now().UnixMilli() + spawner.RespawnDelayMs
			}
		}
	}

	w.queue(enemyDeathMessage{Type: "enemyDeath", ID: enemy.ID, KillerID: killerID})

	for _, item := range w.gen.GenerateLoot(enemy.Type, enemy.Level) {
		vx := (w.rng.Float64()*2 - 1) * dropScatterSpeed
		w.addWorldDrop(item, enemy.X, enemy.Y-10, vx, -160, dropNoPickupDelay)
	}
}

// applyDamageToPlayer subtracts damage and resolves death. Caller
// holds the hub lock.
func (w *World) applyDamageToPlayer(player *playerState, damage int) {
	if player.IsDead {
		return
	}
	player.Health -= damage
	if player.Health > 0 {
		w.queue(playerUpdateMessage{Type: "playerUpdate", Player: player.snapshot()})
		return
	}
	player.Health = 0
	w.killPlayer(player)
}

// killPlayer marks the player dead, sheds their most valuable item
// into the world, and announces it.
func (w *World) killPlayer(player *playerState) {
	player.IsDead = true
	player.Health = 0
	player.respawnTimer = time.Now().Add(5 * time.Second)

	if item, location, key := w.mostValuableItem(player); item != nil {
		switch location {
		case fromBag:
			player.Inventory.Remove(key.(int))
		case fromEquip:
			player.Equipment.Remove(key.(state.EquipSlot))
			player.Reach = state.ReachForWeapon(player.Equipment.Mainhand)
		}
		vx := (w.rng.Float64()*2 - 1) * dropScatterSpeed
		w.addWorldDrop(item, player.X, player.Y-10, vx, -200, deathDropNoPickup)
		w.persistPlayer(player)
	}

	flavor := deathFlavors[w.rng.Intn(len(deathFlavors))]
	w.queue(chatMessage{Type: "chatMessage", Msg: fmt.Sprintf(flavor, player.ID)})
	w.queue(playerDeathMessage{Type: "playerDeath", ID: player.ID})
	w.queue(playerUpdateMessage{Type: "playerUpdate", Player: player.snapshot()})
}

// mostValuableItem scans the bag and equipment for the single item
// worth the most pyreals.
func (w *World) mostValuableItem(player *playerState) (*state.Item, string, any) {
	var best *state.Item
	bestLocation := ""
	var bestKey any

	for i, item := range player.Inventory.Slots {
		if item != nil && (best == nil || item.Value() > best.Value()) {
			best = item
			bestLocation = fromBag
			bestKey = i
		}
	}
	for _, slot := range state.EquipSlots {
		if item := player.Equipment.Get(slot); item != nil && (best == nil || item.Value() > best.Value()) {
			best = item
			bestLocation = fromEquip
			bestKey = slot
		}
	}
	return best, bestLocation, bestKey
}
