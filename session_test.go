package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestClient(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	return conn
}

func writeTestFrame(t *testing.T, conn *websocket.Conn, payload any) {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal frame: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("write frame: %v", err)
	}
}

// readTestFrame reads frames until one carries the wanted type tag,
// then unmarshals it into out. Broadcasts for other players may
// interleave; they are skipped.
func readTestFrame(t *testing.T, conn *websocket.Conn, out any, wantType string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read frame waiting for %q: %v", wantType, err)
		}
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			t.Fatalf("decode frame head: %v", err)
		}
		if head.Type != wantType {
			continue
		}
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("decode %q frame: %v", wantType, err)
		}
		return
	}
	t.Fatalf("no %q frame arrived in time", wantType)
}

func TestSessionPersistsOnDisconnect(t *testing.T) {
	h, store := newTestHub()
	srv := httptest.NewServer(newMux(h, &Config{LevelDir: t.TempDir(), ClientDir: t.TempDir()}))
	defer srv.Close()

	conn := dialTestClient(t, srv.URL)
	writeTestFrame(t, conn, map[string]any{"type": "join", "name": "asheron"})
	var playerData playerDataMessage
	readTestFrame(t, conn, &playerData, "playerData")

	conn.Close()

	// The read loop notices the close and drops the session.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) && h.hasSession("asheron") {
		time.Sleep(10 * time.Millisecond)
	}
	if h.hasSession("asheron") {
		t.Fatalf("expected the session dropped after the close")
	}

	h.mu.Lock()
	_, stillThere := h.world.players["asheron"]
	h.mu.Unlock()
	if stillThere {
		t.Fatalf("expected the live player removed")
	}
	if store.saved["asheron"] == nil {
		t.Fatalf("expected the player persisted on disconnect")
	}
	if store.saved["asheron"].Inventory.At(0) == nil {
		t.Fatalf("expected the starter sword in the saved record")
	}
}

func TestFirstFrameMustBeJoin(t *testing.T) {
	h, _ := newTestHub()
	srv := httptest.NewServer(newMux(h, &Config{LevelDir: t.TempDir(), ClientDir: t.TempDir()}))
	defer srv.Close()

	conn := dialTestClient(t, srv.URL)
	defer conn.Close()

	writeTestFrame(t, conn, map[string]any{"type": "chat", "msg": "hello?"})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return // server closed the connection, as it should
		}
	}
}
