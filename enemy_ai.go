package main

import (
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// advanceEnemies runs one AI step for every live enemy. A panic in one
// enemy's processing is contained so the rest of the tick proceeds.
func (w *World) advanceEnemies(now time.Time, dt float64) {
	if len(w.enemies) == 0 || len(w.players) == 0 {
		return
	}
	for _, enemy := range w.enemies {
		w.advanceEnemySafely(enemy, now, dt)
	}
}

func (w *World) advanceEnemySafely(enemy *enemyState, now time.Time, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{"enemy": enemy.ID, "panic": r}).
				Error("recovered from enemy AI panic")
		}
	}()
	w.advanceEnemy(enemy, now, dt)
}

func (w *World) advanceEnemy(enemy *enemyState, now time.Time, dt float64) {
	target, dist := w.nearestLivingPlayer(enemy.X, enemy.Y)

	// Pick the x to walk toward: the nearest visible player, or home.
	targetX := enemy.homeX
	if target != nil && dist <= enemy.visibilityRange {
		targetX = target.X
	} else {
		target = nil
	}

	speed := enemy.baseSpeed + float64(enemy.Level)*6
	dx := targetX - enemy.X
	switch {
	case math.Abs(dx) < 4:
		enemy.VX = 0
	case dx > 0:
		enemy.VX = speed
	default:
		enemy.VX = -speed
	}

	// Attacking enemies stand their ground through windup/recover.
	if enemy.aiState == aiWindup || enemy.aiState == aiAttack || enemy.aiState == aiRecover {
		enemy.VX = 0
	}

	enemy.X += enemy.VX * dt
	enemy.VY += gravity * dt
	enemy.Y += enemy.VY * dt
	if enemy.Y >= enemy.homeY {
		enemy.Y = enemy.homeY
		enemy.VY = 0
	}

	if enemy.Type == state.EnemyTypeSpellcaster {
		w.advanceCaster(enemy, target, dist, now)
		return
	}
	w.advanceMelee(enemy, target, now)
}

// advanceMelee drives the chase -> windup -> attack -> recover state
// machine shared by every melee type.
func (w *World) advanceMelee(enemy *enemyState, target *playerState, now time.Time) {
	switch enemy.aiState {
	case aiChase:
		if target == nil || now.Before(enemy.attackReadyAt) {
			return
		}
		if math.Hypot(target.X-enemy.X, target.Y-enemy.Y) > enemyMeleeRange {
			return
		}
		enemy.aiState = aiWindup
		enemy.targetPlayerID = target.ID
		enemy.phaseUntil = now.Add(meleeWindup)

	case aiWindup:
		if now.Before(enemy.phaseUntil) {
			return
		}
		enemy.aiState = aiAttack
		victim := w.players[enemy.targetPlayerID]
		// The swing lands only if the victim stayed in reach.
		if victim != nil && !victim.IsDead &&
			math.Hypot(victim.X-enemy.X, victim.Y-enemy.Y) <= enemyMeleeRange {
			w.applyDamageToPlayer(victim, 12+enemy.Level*2)
		}
		enemy.attackReadyAt = now.Add(meleeCooldown)
		enemy.phaseUntil = now.Add(meleeRecover)
		enemy.aiState = aiRecover

	case aiRecover:
		if now.Before(enemy.phaseUntil) {
			return
		}
		enemy.aiState = aiChase
		enemy.targetPlayerID = ""
	}
}

// advanceCaster fires a fireball when the target sits inside the cast
// band. Spellcasters have no melee fallback.
func (w *World) advanceCaster(enemy *enemyState, target *playerState, dist float64, now time.Time) {
	if target == nil || now.Before(enemy.castReadyAt) {
		return
	}
	if dist < casterMinRange || dist > casterMaxRange {
		return
	}

	angle := math.Atan2((target.Y-20)-(enemy.Y-24), target.X-enemy.X)
	w.spawnProjectile(state.Projectile{
		Type:              state.ProjectileFireball,
		X:                 enemy.X,
		Y:                 enemy.Y - 24,
		VX:                math.Cos(angle) * fireballSpeed,
		VY:                math.Sin(angle) * fireballSpeed,
		Damage:            8 + enemy.Level*2,
		OwnerID:           enemyOwnerID(enemy.ID),
		IsEnemyProjectile: true,
	})
	enemy.castReadyAt = now.Add(casterCooldown)
}

func enemyOwnerID(id int64) string {
	return "enemy-" + strconv.FormatInt(id, 10)
}

// nearestLivingPlayer returns the closest non-dead player by Euclidean
// distance.
func (w *World) nearestLivingPlayer(x, y float64) (*playerState, float64) {
	var best *playerState
	bestDist := math.MaxFloat64
	for _, player := range w.players {
		if player.IsDead {
			continue
		}
		d := math.Hypot(player.X-x, player.Y-y)
		if d < bestDist {
			best = player
			bestDist = d
		}
	}
	return best, bestDist
}
