package main

import (
	"testing"
	"time"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

func TestAttackEnemyNonLethalQueuesUpdate(t *testing.T) {
	h, _ := newTestHub()
	addTestPlayer(h.world, "asheron")
	enemy := h.world.spawnEnemy(500, 600, 3, state.EnemyTypeBasic, 0)
	h.world.drainPending()
	start := enemy.Health

	h.handleAttackEnemy("asheron", &attackEnemyCommand{ID: enemy.ID, Damage: 5})

	if enemy.Health != start-5 {
		t.Fatalf("expected health %d, got %d", start-5, enemy.Health)
	}
	if h.world.enemies[enemy.ID] == nil {
		t.Fatalf("expected the enemy alive after a non-lethal hit")
	}
}

func TestAttackEnemyIgnoresNonPositiveDamage(t *testing.T) {
	h, _ := newTestHub()
	addTestPlayer(h.world, "asheron")
	enemy := h.world.spawnEnemy(500, 600, 3, state.EnemyTypeBasic, 0)
	h.world.drainPending()
	start := enemy.Health

	h.handleAttackEnemy("asheron", &attackEnemyCommand{ID: enemy.ID, Damage: 0})
	h.handleAttackEnemy("asheron", &attackEnemyCommand{ID: enemy.ID, Damage: -20})

	if enemy.Health != start {
		t.Fatalf("expected the enemy untouched, got health %d", enemy.Health)
	}
}

func TestLethalAttackDropsLootAndRearmsSpawner(t *testing.T) {
	w, _ := newTestWorld()
	addTestPlayer(w, "asheron")

	w.advanceSpawners(time.Now(), 1)
	spawner := w.spawners[0]
	enemy := w.enemies[spawner.CurrentEnemyID]
	if enemy == nil {
		t.Fatalf("expected the spawner to own a live enemy")
	}
	w.drainPending()

	before := time.Now().UnixMilli()
	w.applyDamageToEnemy(enemy, enemy.Health, "asheron")
	msgs := w.drainPending()

	deaths := messagesOfType[enemyDeathMessage](msgs)
	if len(deaths) != 1 {
		t.Fatalf("expected exactly one enemyDeath, got %d", len(deaths))
	}
	if deaths[0].ID != enemy.ID || deaths[0].KillerID != "asheron" {
		t.Fatalf("unexpected death payload %+v", deaths[0])
	}

	drops := messagesOfType[dropItemMessage](msgs)
	if len(drops) < 1 || len(drops) > 2 {
		t.Fatalf("expected 1 or 2 loot drops, got %d", len(drops))
	}
	if len(drops) != len(w.drops) {
		t.Fatalf("expected every broadcast drop registered in the world")
	}

	if w.enemies[enemy.ID] != nil {
		t.Fatalf("expected the enemy removed")
	}
	if spawner.CurrentEnemyID != 0 {
		t.Fatalf("expected the spawner released")
	}
	wantLow := before + spawner.RespawnDelayMs
	if spawner.RespawnAt < wantLow || spawner.RespawnAt > wantLow+1000 {
		t.Fatalf("expected respawn about %dms out, got %d", spawner.RespawnDelayMs, spawner.RespawnAt-before)
	}
}

func TestKillPlayerShedsMostValuableItem(t *testing.T) {
	w, _ := newTestWorld()
	player := addTestPlayer(w, "asheron")
	prize := &state.Item{
		ID:     state.NewItemID(),
		Name:   "Sparring Blade of Strength",
		Kind:   state.ItemKindWeapon,
		Rarity: state.RarityEpic,
		Level:  10,
		Stats:  map[string]int{"strength": 6},
	}
	player.Equipment.Set(state.SlotMainhand, prize)

	w.applyDamageToPlayer(player, player.Health)
	msgs := w.drainPending()

	if !player.IsDead || player.Health != 0 {
		t.Fatalf("expected the player dead at zero health")
	}
	if player.Equipment.Get(state.SlotMainhand) != nil {
		t.Fatalf("expected the prize blade shed on death")
	}

	drops := messagesOfType[dropItemMessage](msgs)
	if len(drops) != 1 || drops[0].Item.ID != prize.ID {
		t.Fatalf("expected the most valuable item dropped, got %+v", drops)
	}
	if deaths := messagesOfType[playerDeathMessage](msgs); len(deaths) != 1 || deaths[0].ID != "asheron" {
		t.Fatalf("expected one playerDeath broadcast")
	}

	// Death drops carry the longer pickup delay so the victim has a
	// window to run back.
	for _, drop := range w.drops {
		if drop.NoPickupUntil < time.Now().UnixMilli()+deathDropNoPickup.Milliseconds()-1000 {
			t.Fatalf("expected the death drop locked for about %v", deathDropNoPickup)
		}
	}
}

func TestDamageToDeadPlayerIsIgnored(t *testing.T) {
	w, _ := newTestWorld()
	player := addTestPlayer(w, "asheron")
	w.applyDamageToPlayer(player, player.Health)
	w.drainPending()

	w.applyDamageToPlayer(player, 50)

	if msgs := w.drainPending(); len(msgs) != 0 {
		t.Fatalf("expected no broadcasts for damage to a corpse, got %d", len(msgs))
	}
	if player.Health != 0 {
		t.Fatalf("expected health pinned at zero")
	}
}

func TestShootProjectileWeaponTypeSelectsKind(t *testing.T) {
	h, _ := newTestHub()
	addTestPlayer(h.world, "asheron")

	h.handleShootProjectile("asheron", &shootProjectileCommand{Damage: 10, WeaponType: "bow"})
	h.handleShootProjectile("asheron", &shootProjectileCommand{Damage: 10, WeaponType: "wand"})

	arrows, fireballs := 0, 0
	for _, p := range h.world.projectiles {
		switch p.Type {
		case state.ProjectileArrow:
			arrows++
		case state.ProjectileFireball:
			fireballs++
		}
		if p.IsEnemyProjectile {
			t.Fatalf("expected player projectiles not flagged as enemy fire")
		}
		if p.OwnerID != "asheron" {
			t.Fatalf("expected owner asheron, got %q", p.OwnerID)
		}
	}
	if arrows != 1 || fireballs != 1 {
		t.Fatalf("expected one arrow and one fireball, got %d/%d", arrows, fireballs)
	}
}
