package main

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestTickSpawnsOnlyWithSubscribers(t *testing.T) {
	h, _ := newTestHub()
	addTestPlayer(h.world, "asheron")

	// A player entity without a live connection does not count.
	h.tick(time.Now(), tickInterval.Seconds())
	if len(h.world.enemies) != 0 {
		t.Fatalf("expected no spawns without subscribers, got %d", len(h.world.enemies))
	}

	srv := httptest.NewServer(newMux(h, &Config{LevelDir: t.TempDir(), ClientDir: t.TempDir()}))
	defer srv.Close()
	conn := dialTestClient(t, srv.URL)
	defer conn.Close()
	writeTestFrame(t, conn, map[string]any{"type": "join", "name": "elysa"})
	var playerData playerDataMessage
	readTestFrame(t, conn, &playerData, "playerData")

	h.tick(time.Now(), tickInterval.Seconds())
	if len(h.world.enemies) != len(h.world.spawners) {
		t.Fatalf("expected %d enemies after the first live tick, got %d",
			len(h.world.spawners), len(h.world.enemies))
	}

	var spawned enemySpawnedMessage
	readTestFrame(t, conn, &spawned, "enemySpawned")
	if spawned.Enemy.ID == 0 {
		t.Fatalf("expected a spawn broadcast with an assigned id")
	}
}

func TestVendorSettlesOnGround(t *testing.T) {
	w, _ := newTestWorld()
	if w.vendor == nil {
		t.Fatalf("expected the default level to place a vendor")
	}
	start := w.vendor.Y

	for i := 0; i < 300; i++ {
		w.advanceVendor(tickInterval.Seconds())
	}

	ground := w.groundY(w.vendor.X, start)
	if w.vendor.Y != ground {
		t.Fatalf("expected the vendor resting at %v, got %v", ground, w.vendor.Y)
	}
	if w.vendor.VY != 0 {
		t.Fatalf("expected the vendor's fall finished")
	}
}
