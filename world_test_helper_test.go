package main

import (
	"github.com/Thwargle/BrowseronsCall-sub000/internal/level"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/loot"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/persistence"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// memStore keeps snapshots in a map so tests can assert on what was
// persisted without touching the filesystem.
type memStore struct {
	saved map[string]*state.PlayerSnapshot
}

func newMemStore() *memStore {
	return &memStore{saved: make(map[string]*state.PlayerSnapshot)}
}

func (m *memStore) SavePlayer(name string, snapshot *state.PlayerSnapshot) error {
	m.saved[name] = snapshot
	return nil
}

func (m *memStore) LoadPlayer(name string) (*state.PlayerSnapshot, error) {
	snapshot, ok := m.saved[name]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return snapshot, nil
}

func (m *memStore) Close() error { return nil }

// newTestWorld builds a world on the built-in level with a fixed RNG
// seed and an in-memory store.
func newTestWorld() (*World, *memStore) {
	lvl := level.Default()
	lvl.Normalize(lvl.Name)
	store := newMemStore()
	return newWorld(lvl, store, 1), store
}

func newTestHub() (*Hub, *memStore) {
	w, store := newTestWorld()
	return newHub(w), store
}

// addTestPlayer registers a fresh player the way a join would, starter
// sword included, without a websocket attached.
func addTestPlayer(w *World, name string) *playerState {
	player := w.restorePlayer(name, &joinCommand{Name: name})
	w.players[name] = player
	return player
}

func testSwordAt(w *World, player *playerState, index int) *state.Item {
	sword := loot.CreateTestSword()
	player.Inventory.Set(index, sword)
	return sword
}

func intPtr(v int) *int { return &v }

// messagesOfType filters a drained pending queue down to one message
// type.
func messagesOfType[T any](msgs []any) []T {
	var out []T
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
