package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/level"
)

func TestLevelAPI(t *testing.T) {
	dir := t.TempDir()
	doc := `{"name":"direlands","width":2000,"groundY":500,"spawnX":100,"spawnY":460}`
	if err := os.WriteFile(filepath.Join(dir, "direlands.json"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}

	h, _ := newTestHub()
	mux := newMux(h, &Config{LevelDir: dir, ClientDir: t.TempDir()})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/levels", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing levels, got %d", rec.Code)
	}
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(names) != 1 || names[0] != "direlands" {
		t.Fatalf("expected [direlands], got %v", names)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/level/direlands", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching a level, got %d", rec.Code)
	}
	var lvl level.Level
	if err := json.Unmarshal(rec.Body.Bytes(), &lvl); err != nil {
		t.Fatalf("decode level: %v", err)
	}
	if lvl.Name != "direlands" || lvl.GroundY != 500 {
		t.Fatalf("unexpected level %+v", lvl)
	}

	// Unknown names fall back to the built-in default level.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/level/nowhere", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected the default level for an unknown name, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &lvl); err != nil {
		t.Fatalf("decode fallback level: %v", err)
	}
	if lvl.Name != level.Default().Name {
		t.Fatalf("expected the default level, got %q", lvl.Name)
	}
}

func TestWebsocketJoinFlow(t *testing.T) {
	h, _ := newTestHub()
	srv := httptest.NewServer(newMux(h, &Config{LevelDir: t.TempDir(), ClientDir: t.TempDir()}))
	defer srv.Close()

	conn := dialTestClient(t, srv.URL)
	defer conn.Close()

	writeTestFrame(t, conn, map[string]any{"type": "join", "name": "asheron"})

	var playerData playerDataMessage
	readTestFrame(t, conn, &playerData, "playerData")
	if playerData.Inventory.At(0) == nil {
		t.Fatalf("expected the starter sword in the join payload")
	}

	var gameState gameStateMessage
	readTestFrame(t, conn, &gameState, "gameState")
	if len(gameState.Players) != 1 || gameState.Players[0].ID != "asheron" {
		t.Fatalf("expected one player in the initial state, got %+v", gameState.Players)
	}
	if len(gameState.Spawners) != len(h.world.spawners) {
		t.Fatalf("expected the spawner list in the initial state")
	}

	// The join announcement reaches everyone, the joiner included.
	var joined playerJoinedMessage
	readTestFrame(t, conn, &joined, "playerJoined")
	if joined.Player.ID != "asheron" {
		t.Fatalf("expected the joiner's own playerJoined, got %q", joined.Player.ID)
	}
}

func TestWebsocketDuplicateNameRejected(t *testing.T) {
	h, _ := newTestHub()
	srv := httptest.NewServer(newMux(h, &Config{LevelDir: t.TempDir(), ClientDir: t.TempDir()}))
	defer srv.Close()

	first := dialTestClient(t, srv.URL)
	defer first.Close()
	writeTestFrame(t, first, map[string]any{"type": "join", "name": "asheron"})
	var playerData playerDataMessage
	readTestFrame(t, first, &playerData, "playerData")

	second := dialTestClient(t, srv.URL)
	defer second.Close()
	writeTestFrame(t, second, map[string]any{"type": "join", "name": "asheron"})

	var rejected joinRejectedMessage
	readTestFrame(t, second, &rejected, "joinRejected")
	if rejected.Reason == "" {
		t.Fatalf("expected a rejection reason")
	}
}
