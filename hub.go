package main

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// subscriber is one live websocket connection. The mutex serializes
// writes, which can come from the owning session goroutine, the tick
// loop, and other sessions' broadcasts.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub owns the world and every live connection. Hub.mu is the single
// authority boundary around World: session handlers and the simulation
// loop both take it, so no two mutations interleave.
type Hub struct {
	mu          sync.Mutex
	world       *World
	subscribers map[string]*subscriber
}

func newHub(world *World) *Hub {
	return &Hub{
		world:       world,
		subscribers: make(map[string]*subscriber),
	}
}

func marshalMessage(msg any) ([]byte, bool) {
	data, err := json.Marshal(msg)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal outbound message")
		return nil, false
	}
	return data, true
}

// broadcast sends a message to every subscriber. Marshals once.
func (h *Hub) broadcast(msg any) {
	h.broadcastExcept("", msg)
}

// broadcastExcept sends to everyone but one player.
func (h *Hub) broadcastExcept(excludeID string, msg any) {
	data, ok := marshalMessage(msg)
	if !ok {
		return
	}

	h.mu.Lock()
	subs := make(map[string]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		if id != excludeID {
			subs[id] = sub
		}
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.write(data); err != nil {
			logrus.WithError(err).WithField("player", id).Debug("broadcast write failed")
		}
	}
}

// send delivers a message to a single player.
func (h *Hub) send(playerID string, msg any) {
	h.mu.Lock()
	sub := h.subscribers[playerID]
	h.mu.Unlock()
	if sub == nil {
		return
	}
	data, ok := marshalMessage(msg)
	if !ok {
		return
	}
	if err := sub.write(data); err != nil {
		logrus.WithError(err).WithField("player", playerID).Debug("send failed")
	}
}

// sendRaw writes a pre-marshaled frame to one subscriber.
func sendRaw(sub *subscriber, msg any) error {
	data, ok := marshalMessage(msg)
	if !ok {
		return nil
	}
	return sub.write(data)
}

// flushPending drains broadcasts queued on the world while the lock
// was held. Must be called after h.mu is released.
func (h *Hub) flushPending(msgs []any) {
	for _, msg := range msgs {
		h.broadcast(msg)
	}
}

// hasSession reports whether a player name currently owns a live
// connection.
func (h *Hub) hasSession(playerID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.subscribers[playerID]
	return ok
}

// connectedCountLocked reports how many clients are attached; the
// spawner state machine only runs with at least one. Callers must hold
// h.mu.
func (h *Hub) connectedCountLocked() int {
	return len(h.subscribers)
}
