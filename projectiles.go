package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// spawnProjectile registers a projectile and queues its creation
// broadcast. Caller holds the hub lock; id, timestamps and the enemy
// flag are filled in here.
func (w *World) spawnProjectile(p state.Projectile) *state.Projectile {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UnixMilli()
	if p.LifetimeMs <= 0 {
		p.LifetimeMs = projectileLifetime.Milliseconds()
	}
	proj := &p
	w.projectiles[proj.ID] = proj
	w.queue(projectileCreatedMessage{Type: "projectileCreated", Projectile: *proj})
	return proj
}

// integrateProjectiles advances positions only. It runs on the fast
// motion timer and never resolves hits or expiry; that is the main
// tick's job.
func (w *World) integrateProjectiles(dt float64) {
	for _, p := range w.projectiles {
		if p.Type == state.ProjectileArrow {
			p.VY += gravity * 0.25 * dt // arrows arc, fireballs fly flat
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		w.queue(projectileUpdateMessage{Type: "projectileUpdate", ID: p.ID, X: p.X, Y: p.Y, VX: p.VX, VY: p.VY})
	}
}

// resolveProjectiles expires, grounds, and collides every live
// projectile. Caller holds the hub lock.
func (w *World) resolveProjectiles(now time.Time) {
	nowMs := now.UnixMilli()
	for id, p := range w.projectiles {
		if nowMs-p.CreatedAt >= p.LifetimeMs {
			w.destroyProjectile(id)
			continue
		}
		if p.Y >= w.groundY(p.X, p.Y) {
			w.destroyProjectile(id)
			continue
		}

		if p.IsEnemyProjectile {
			if player := w.firstPlayerHit(p); player != nil {
				w.destroyProjectile(id)
				w.applyDamageToPlayer(player, p.Damage)
			}
			continue
		}
		if enemy := w.firstEnemyHit(p); enemy != nil {
			w.destroyProjectile(id)
			w.applyDamageToEnemy(enemy, p.Damage, p.OwnerID)
		}
	}
}

func (w *World) destroyProjectile(id string) {
	if _, ok := w.projectiles[id]; !ok {
		return
	}
	delete(w.projectiles, id)
	w.queue(projectileDestroyedMessage{Type: "projectileDestroyed", ID: id})
}

func (w *World) firstEnemyHit(p *state.Projectile) *enemyState {
	for _, enemy := range w.enemies {
		if withinRadius(p.X, p.Y, enemy.X, enemy.Y-16, projectileHitRadius) {
			return enemy
		}
	}
	return nil
}

func (w *World) firstPlayerHit(p *state.Projectile) *playerState {
	for _, player := range w.players {
		if player.IsDead {
			continue
		}
		if withinRadius(p.X, p.Y, player.X, player.Y-20, projectileHitRadius) {
			return player
		}
	}
	return nil
}

func withinRadius(x1, y1, x2, y2, radius float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx+dy*dy <= radius*radius
}
