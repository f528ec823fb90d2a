package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// addWorldDrop places an item into the level as a physics-enabled
// drop and queues the broadcast. Caller holds the hub lock.
func (w *World) addWorldDrop(item *state.Item, x, y, vx, vy float64, noPickupDelay time.Duration) *state.WorldDrop {
	if item == nil {
		return nil
	}
	now := time.Now()
	drop := &state.WorldDrop{
		ID:            uuid.NewString(),
		Item:          item,
		X:             x,
		Y:             y,
		VX:            vx,
		VY:            vy,
		PickRadius:    dropPickRadius,
		NoPickupUntil: now.Add(noPickupDelay).UnixMilli(),
		CreatedAt:     now.UnixMilli(),
	}
	w.drops[drop.ID] = drop

	snap := *drop
	snap.Item = item.Clone()
	w.queue(dropItemMessage{Type: "dropItem", WorldDrop: snap})
	return drop
}

// advanceDrops integrates falling drops onto the ground line. Clients
// run the same integration locally between ticks; the server state is
// what pickup range checks use.
func (w *World) advanceDrops(dt float64) {
	for _, drop := range w.drops {
		if drop.Grounded {
			continue
		}
		drop.VY += gravity * dt
		drop.X += drop.VX * dt
		drop.Y += drop.VY * dt

		ground := w.groundY(drop.X, drop.Y)
		if drop.Y >= ground {
			drop.Y = ground
			drop.VX = 0
			drop.VY = 0
			drop.Grounded = true
		}
	}
}

// cleanupDrops removes drops that have sat unclaimed past the TTL.
func (w *World) cleanupDrops(now time.Time) {
	cutoff := now.Add(-dropCleanupTTL).UnixMilli()
	for id, drop := range w.drops {
		if drop.CreatedAt <= cutoff {
			delete(w.drops, id)
			w.queue(dropExpiredMessage{Type: "dropExpired", DropID: id})
		}
	}
}
