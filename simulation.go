package main

import (
	"time"
)

// RunSimulation drives the authoritative tick until stop closes. Every
// tick runs the declared step order: spawns, vendor physics, enemy AI,
// projectile resolution, broadcast. The loop never exits on its own.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt <= 0 {
				dt = tickInterval.Seconds()
			}
			last = now
			h.tick(now, dt)
		}
	}
}

func (h *Hub) tick(now time.Time, dt float64) {
	h.mu.Lock()
	w := h.world

	w.advanceSpawners(now, h.connectedCountLocked())
	w.advanceVendor(dt)
	w.advanceEnemies(now, dt)
	w.resolveProjectiles(now)
	w.advanceDrops(dt)
	w.cleanupDrops(now)

	// Broadcast step: a fresh snapshot per live enemy, plus the vendor.
	for _, enemy := range w.enemies {
		w.queue(enemyUpdateMessage{Type: "enemyUpdate", Enemy: enemy.snapshot()})
	}
	if w.vendor != nil {
		w.queue(vendorUpdateMessage{Type: "vendorUpdate", Vendor: w.vendor})
	}

	pending := w.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
}

// RunProjectileMotion integrates projectile positions on a faster
// timer than the main tick so flight looks smooth regardless of
// AI-tick cost. Motion only; hits and expiry stay on the main tick.
func (h *Hub) RunProjectileMotion(stop <-chan struct{}) {
	ticker := time.NewTicker(projectileMotionInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt <= 0 {
				dt = projectileMotionInterval.Seconds()
			}
			last = now

			h.mu.Lock()
			h.world.integrateProjectiles(dt)
			pending := h.world.drainPending()
			h.mu.Unlock()

			h.flushPending(pending)
		}
	}
}

// RunAutosave persists every connected player on a fixed interval.
func (h *Hub) RunAutosave(stop <-chan struct{}) {
	ticker := time.NewTicker(autosaveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.mu.Lock()
			h.world.persistAll()
			h.mu.Unlock()
		}
	}
}

// advanceVendor drops the merchant onto the ground line.
func (w *World) advanceVendor(dt float64) {
	if w.vendor == nil {
		return
	}
	ground := w.groundY(w.vendor.X, w.vendor.Y)
	if w.vendor.Y >= ground {
		w.vendor.Y = ground
		w.vendor.VY = 0
		return
	}
	w.vendor.VY += gravity * dt
	w.vendor.Y += w.vendor.VY * dt
	if w.vendor.Y > ground {
		w.vendor.Y = ground
		w.vendor.VY = 0
	}
}
