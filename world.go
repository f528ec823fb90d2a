package main

import (
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/level"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/loot"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/persistence"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// enemyAIState is the melee state machine phase.
type enemyAIState string

const (
	aiChase   enemyAIState = "chase"
	aiWindup  enemyAIState = "windup"
	aiAttack  enemyAIState = "attack"
	aiRecover enemyAIState = "recover"
)

// playerState wraps the wire player with server-side bookkeeping.
type playerState struct {
	state.Player
	respawnTimer time.Time
}

func (p *playerState) snapshot() state.Player {
	snap := p.Player
	snap.Inventory = p.Inventory.Clone()
	snap.Equipment = p.Equipment.Snapshot()
	return snap
}

// enemyState wraps the wire enemy with its AI bookkeeping.
type enemyState struct {
	state.Enemy
	aiState         enemyAIState
	targetPlayerID  string
	phaseUntil      time.Time
	attackReadyAt   time.Time
	castReadyAt     time.Time
	homeX           float64
	homeY           float64
	visibilityRange float64
	baseSpeed       float64
}

func (e *enemyState) snapshot() state.Enemy {
	return e.Enemy
}

// spawnerState wraps the wire spawner; all fields live on the wire
// struct since clients receive the full spawner list on join.
type spawnerState struct {
	state.Spawner
}

// World owns the authoritative simulation state. It is not
// goroutine-safe on its own; the Hub's mutex serializes every access,
// whether from a session handler or the tick loop.
type World struct {
	level       *level.Level
	players     map[string]*playerState
	enemies     map[int64]*enemyState
	drops       map[string]*state.WorldDrop
	projectiles map[string]*state.Projectile
	spawners    []*spawnerState
	vendor      *state.Vendor
	nextEnemyID int64
	rng         *rand.Rand
	gen         *loot.Generator
	store       persistence.Store

	// pending accumulates broadcasts produced while the lock is held;
	// the hub drains and sends them after unlocking.
	pending []any
}

// newWorld builds the authoritative state for one level.
func newWorld(lvl *level.Level, store persistence.Store, seed int64) *World {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w := &World{
		level:       lvl,
		players:     make(map[string]*playerState),
		enemies:     make(map[int64]*enemyState),
		drops:       make(map[string]*state.WorldDrop),
		projectiles: make(map[string]*state.Projectile),
		rng:         rng,
		gen:         loot.NewGenerator(rng),
		store:       store,
	}

	for i, spot := range lvl.Spawners {
		w.spawners = append(w.spawners, &spawnerState{Spawner: state.Spawner{
			ID:             i + 1,
			X:              spot.X,
			Y:              spot.Y,
			EnemyType:      spot.EnemyType,
			MinLevel:       spot.MinLevel,
			MaxLevel:       spot.MaxLevel,
			RespawnDelayMs: spot.RespawnDelayMs,
		}})
	}

	if len(lvl.Vendors) > 0 {
		w.vendor = &state.Vendor{
			X:      lvl.Vendors[0].X,
			Y:      lvl.Vendors[0].Y - 200, // dropped in from above at level load
			Colors: w.gen.VendorColors(),
		}
	}

	return w
}

func (w *World) queue(msg any) {
	w.pending = append(w.pending, msg)
}

func (w *World) drainPending() []any {
	msgs := w.pending
	w.pending = nil
	return msgs
}

// groundY returns the ground line under a position: the highest floor
// segment at or below y, defaulting to the level ground.
func (w *World) groundY(x, y float64) float64 {
	best := w.level.GroundY
	for _, floor := range w.level.Floors {
		if x < floor.X || x > floor.X+floor.Width {
			continue
		}
		if floor.Y >= y && floor.Y < best {
			best = floor.Y
		}
	}
	return best
}

func (w *World) playersSnapshot() []state.Player {
	players := make([]state.Player, 0, len(w.players))
	for _, p := range w.players {
		players = append(players, p.snapshot())
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}

func (w *World) enemiesSnapshot() []state.Enemy {
	enemies := make([]state.Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		enemies = append(enemies, e.snapshot())
	}
	sort.Slice(enemies, func(i, j int) bool { return enemies[i].ID < enemies[j].ID })
	return enemies
}

func (w *World) dropsSnapshot() []state.WorldDrop {
	drops := make([]state.WorldDrop, 0, len(w.drops))
	for _, d := range w.drops {
		drop := *d
		drop.Item = d.Item.Clone()
		drops = append(drops, drop)
	}
	sort.Slice(drops, func(i, j int) bool { return drops[i].ID < drops[j].ID })
	return drops
}

func (w *World) spawnersSnapshot() []state.Spawner {
	spawners := make([]state.Spawner, 0, len(w.spawners))
	for _, s := range w.spawners {
		spawners = append(spawners, s.Spawner)
	}
	return spawners
}

// persistPlayer writes the player's snapshot through the store.
// Persistence failures degrade to in-memory play: logged, never fatal.
func (w *World) persistPlayer(p *playerState) {
	if w.store == nil || p == nil {
		return
	}
	snapshot := &state.PlayerSnapshot{
		X:               p.X,
		Y:               p.Y,
		Health:          p.Health,
		MaxHealth:       p.MaxHealth,
		Mana:            p.Mana,
		MaxMana:         p.MaxMana,
		Pyreals:         p.Pyreals,
		ShirtColor:      p.ShirtColor,
		PantColor:       p.PantColor,
		EquipmentColors: p.EquipmentColors,
		Inventory:       p.Inventory.Clone(),
		Equipment:       p.Equipment.Snapshot(),
	}
	if err := w.store.SavePlayer(p.ID, snapshot); err != nil {
		logrus.WithError(err).WithField("player", p.ID).Warn("failed to persist player")
	}
}

// persistAll saves every connected player, used by the autosave timer
// and shutdown.
func (w *World) persistAll() {
	for _, p := range w.players {
		w.persistPlayer(p)
	}
}
