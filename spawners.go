package main

import (
	"time"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// spawnEnemy synthesizes and registers a new enemy, queuing the spawn
// broadcast. A spawnerID of 0 means unowned (manual spawn). Caller
// holds the hub lock.
func (w *World) spawnEnemy(x, y float64, level int, enemyType state.EnemyType, spawnerID int) *enemyState {
	enemy := w.gen.CreateEnemy(x, y, level, enemyType)
	w.nextEnemyID++
	enemy.ID = w.nextEnemyID
	enemy.SpawnerID = spawnerID

	es := &enemyState{
		Enemy:           enemy,
		aiState:         aiChase,
		homeX:           x,
		homeY:           y,
		visibilityRange: enemyVisibilityRange,
		baseSpeed:       enemyBaseSpeed(string(enemy.Type)),
	}
	w.enemies[enemy.ID] = es

	w.queue(enemySpawnedMessage{Type: "enemySpawned", Enemy: es.snapshot()})
	return es
}

// advanceSpawners runs the respawn state machine. Nothing spawns into
// an empty world: at least one client must be connected.
func (w *World) advanceSpawners(now time.Time, clientCount int) {
	if clientCount < 1 {
		return
	}
	nowMs := now.UnixMilli()
	for _, spawner := range w.spawners {
		if spawner.CurrentEnemyID != 0 {
			// A spawner owns at most one live enemy.
			continue
		}
		if nowMs < spawner.RespawnAt {
			continue
		}

		level := spawner.MinLevel
		if spread := spawner.MaxLevel - spawner.MinLevel; spread > 0 {
			level += w.rng.Intn(spread + 1)
		}
		enemy := w.spawnEnemy(spawner.X, spawner.Y, level, spawner.EnemyType, spawner.ID)
		spawner.CurrentEnemyID = enemy.ID
		spawner.RespawnAt = 0
	}
}
