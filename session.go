package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/loot"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/persistence"
	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// placeholder names the client ships with; joining under one is a
// protocol violation, same as an empty name.
var defaultNames = map[string]bool{
	"player":     true,
	"adventurer": true,
}

func validateJoinName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "a name is required"
	}
	if len(trimmed) < 2 {
		return "name is too short"
	}
	if len(trimmed) > 24 {
		return "name is too long"
	}
	if defaultNames[strings.ToLower(trimmed)] {
		return "pick a name of your own first"
	}
	return ""
}

// serveWS runs one client session: handshake, join, then the command
// loop until the connection drops.
func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	sub := &subscriber{conn: conn}

	// The first frame must be a join.
	_, payload, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return
	}
	cmd, err := decodeClientCommand(payload)
	if err != nil || cmd.Type != msgJoin {
		sendRaw(sub, joinRejectedMessage{Type: "joinRejected", Reason: "expected a join message"})
		conn.Close()
		return
	}

	playerID, ok := h.acceptJoin(sub, cmd.Join)
	if !ok {
		conn.Close()
		return
	}

	log := logrus.WithField("player", playerID)
	log.Info("client joined")

	stopPing := make(chan struct{})
	go pingLoop(sub, stopPing)

	defer func() {
		close(stopPing)
		h.dropSession(playerID)
		conn.Close()
		log.Info("client disconnected")
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("read failed")
			}
			return
		}

		cmd, err := decodeClientCommand(payload)
		if err != nil {
			// Protocol violation: log, drop the frame, keep the
			// connection open.
			log.WithError(err).Warn("discarding malformed message")
			continue
		}

		h.dispatch(playerID, cmd)
	}
}

func pingLoop(sub *subscriber, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			sub.mu.Lock()
			sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := sub.conn.WriteMessage(websocket.PingMessage, nil)
			sub.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// acceptJoin validates the join, constructs or restores the player,
// and registers the subscriber. Returns false after sending a
// rejection.
func (h *Hub) acceptJoin(sub *subscriber, cmd *joinCommand) (string, bool) {
	name := strings.TrimSpace(cmd.Name)
	if reason := validateJoinName(name); reason != "" {
		sendRaw(sub, joinRejectedMessage{Type: "joinRejected", Reason: reason})
		return "", false
	}

	h.mu.Lock()

	// Reconnection under a still-connected name would give two sockets
	// authority over one identity.
	if _, taken := h.subscribers[name]; taken {
		h.mu.Unlock()
		sendRaw(sub, joinRejectedMessage{Type: "joinRejected", Reason: "that name is already playing"})
		return "", false
	}

	player := h.world.restorePlayer(name, cmd)
	h.world.players[name] = player
	h.subscribers[name] = sub

	joined := player.snapshot()
	gameState := gameStateMessage{
		Type:       "gameState",
		LevelName:  h.world.level.Name,
		Players:    h.world.playersSnapshot(),
		Enemies:    h.world.enemiesSnapshot(),
		WorldDrops: h.world.dropsSnapshot(),
		Vendor:     h.world.vendor,
		Spawners:   h.world.spawnersSnapshot(),
	}
	h.mu.Unlock()

	sendRaw(sub, playerDataMessage{Type: "playerData", Equip: joined.Equipment, Inventory: joined.Inventory})
	sendRaw(sub, gameState)
	// Everyone hears the join, the new player included.
	h.broadcast(playerJoinedMessage{Type: "playerJoined", Player: joined})
	return name, true
}

// restorePlayer loads the saved snapshot for a name, or builds the
// default loadout for a brand-new character. Caller holds h.mu.
func (w *World) restorePlayer(name string, cmd *joinCommand) *playerState {
	player := &playerState{Player: state.Player{
		ID:              name,
		X:               w.level.SpawnX,
		Y:               w.level.SpawnY,
		Health:          state.DefaultMaxHealth,
		MaxHealth:       state.DefaultMaxHealth,
		Mana:            state.DefaultMaxMana,
		MaxMana:         state.DefaultMaxMana,
		Reach:           state.DefaultReach,
		ShirtColor:      cmd.ShirtColor,
		PantColor:       cmd.PantColor,
		EquipmentColors: cmd.EquipmentColors,
		Inventory:       state.NewInventory(),
	}}

	var snapshot *state.PlayerSnapshot
	if w.store != nil {
		var err error
		snapshot, err = w.store.LoadPlayer(name)
		if err != nil && !errors.Is(err, persistence.ErrNotFound) {
			logrus.WithError(err).WithField("player", name).Warn("failed to load save, using defaults")
			snapshot = nil
		}
	}

	if snapshot == nil {
		// Brand-new character: grant the starter weapon.
		player.Inventory.Set(0, loot.CreateTestSword())
		return player
	}

	player.X = snapshot.X
	player.Y = snapshot.Y
	player.Health = snapshot.Health
	player.MaxHealth = snapshot.MaxHealth
	player.Mana = snapshot.Mana
	player.MaxMana = snapshot.MaxMana
	player.Pyreals = snapshot.Pyreals
	player.Inventory = snapshot.Inventory.Clone()
	player.Equipment = snapshot.Equipment.Clone()
	player.Equipment.Normalize()
	player.Reach = state.ReachForWeapon(player.Equipment.Mainhand)
	if snapshot.ShirtColor != "" && cmd.ShirtColor == "" {
		player.ShirtColor = snapshot.ShirtColor
	}
	if snapshot.PantColor != "" && cmd.PantColor == "" {
		player.PantColor = snapshot.PantColor
	}
	if len(cmd.EquipmentColors) == 0 && len(snapshot.EquipmentColors) > 0 {
		player.EquipmentColors = snapshot.EquipmentColors
	}
	if player.Health <= 0 {
		player.Health = player.MaxHealth
	}
	return player
}

// dropSession persists and removes a player after their connection
// ends. The saved record survives; only the live entity goes away.
func (h *Hub) dropSession(playerID string) {
	h.mu.Lock()
	delete(h.subscribers, playerID)
	player := h.world.players[playerID]
	if player != nil {
		h.world.persistPlayer(player)
		delete(h.world.players, playerID)
	}
	h.mu.Unlock()

	if player != nil {
		h.broadcast(playerLeftMessage{Type: "playerLeft", ID: playerID})
	}
}

// dispatch routes one decoded command to its handler. A panic in a
// handler is contained to that message.
func (h *Hub) dispatch(playerID string, cmd clientCommand) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{"player": playerID, "command": cmd.Type, "panic": r}).
				Error("recovered from message handler panic")
		}
	}()

	switch cmd.Type {
	case msgChat:
		h.handleChat(playerID, cmd.Chat)
	case msgPlayerUpdate:
		h.handlePlayerUpdate(playerID, cmd.PlayerUpdate)
	case msgMoveItem:
		h.handleMoveItem(playerID, cmd.MoveItem)
	case msgDropItem:
		h.handleDropItem(playerID, cmd.DropItem)
	case msgPickupItem:
		h.handlePickupItem(playerID, cmd.PickupItem)
	case msgSellItem:
		h.handleSellItem(playerID, cmd.SellItem)
	case msgSellAllInventory:
		h.handleSellAllInventory(playerID)
	case msgAttackEnemy:
		h.handleAttackEnemy(playerID, cmd.AttackEnemy)
	case msgShootProjectile:
		h.handleShootProjectile(playerID, cmd.ShootProjectile)
	case msgSpawnEnemy:
		h.handleSpawnEnemy(playerID, cmd.SpawnEnemy)
	case msgPlayerDeath:
		h.handlePlayerDeath(playerID)
	case msgPlayerRespawn:
		h.handlePlayerRespawn(playerID, cmd.PlayerRespawn)
	case msgJoin:
		// A second join on a live session is a no-op.
		logrus.WithField("player", playerID).Warn("ignoring join on established session")
	}
}
