package main

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxChatLength = 240

// clampChat trims and bounds one chat line. The cut never lands inside
// a multi-byte rune, so the relayed line stays valid UTF-8.
func clampChat(msg string) string {
	msg = strings.TrimSpace(msg)
	if len(msg) <= maxChatLength {
		return msg
	}
	cut := maxChatLength
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}

func (h *Hub) handleChat(playerID string, cmd *chatCommand) {
	msg := clampChat(cmd.Msg)
	if msg == "" {
		return
	}
	// Relayed to everyone; the sender hears their own echo.
	h.broadcast(chatMessage{Type: "chatMessage", From: playerID, Msg: msg})
}

// handlePlayerUpdate merges client-provided fields onto the
// authoritative player. It never creates a player; an update for an
// unknown id is dropped.
func (h *Hub) handlePlayerUpdate(playerID string, cmd *playerUpdateCommand) {
	h.mu.Lock()
	player := h.world.players[playerID]
	if player == nil {
		h.mu.Unlock()
		return
	}

	if cmd.X != nil {
		player.X = *cmd.X
	}
	if cmd.Y != nil {
		player.Y = *cmd.Y
	}
	if cmd.Health != nil {
		player.Health = *cmd.Health
	}
	if cmd.MaxHealth != nil {
		player.MaxHealth = *cmd.MaxHealth
	}
	if cmd.Pyreals != nil {
		player.Pyreals = *cmd.Pyreals
	}
	if cmd.Reach != nil {
		player.Reach = *cmd.Reach
	}
	if cmd.ShirtColor != nil {
		player.ShirtColor = *cmd.ShirtColor
	}
	if cmd.PantColor != nil {
		player.PantColor = *cmd.PantColor
	}
	if cmd.EquipmentColors != nil {
		player.EquipmentColors = cmd.EquipmentColors
	}
	snap := player.snapshot()
	h.mu.Unlock()

	h.broadcastExcept(playerID, playerUpdateMessage{Type: "playerUpdate", Player: snap})
}

// handlePlayerDeath is the client-initiated death path (falling,
// environmental). The server applies the same consequences as a combat
// death.
func (h *Hub) handlePlayerDeath(playerID string) {
	h.mu.Lock()
	player := h.world.players[playerID]
	if player == nil || player.IsDead {
		h.mu.Unlock()
		return
	}
	h.world.killPlayer(player)
	pending := h.world.drainPending()
	h.mu.Unlock()

	h.flushPending(pending)
}

func (h *Hub) handlePlayerRespawn(playerID string, cmd *playerRespawnCommand) {
	h.mu.Lock()
	player := h.world.players[playerID]
	if player == nil || !player.IsDead {
		h.mu.Unlock()
		return
	}
	player.IsDead = false
	player.respawnTimer = time.Time{}
	player.X = cmd.X
	player.Y = cmd.Y
	player.Health = cmd.Health
	if cmd.MaxHealth > 0 {
		player.MaxHealth = cmd.MaxHealth
	}
	if player.Health <= 0 || player.Health > player.MaxHealth {
		player.Health = player.MaxHealth
	}
	snap := player.snapshot()
	h.mu.Unlock()

	h.broadcast(playerUpdateMessage{Type: "playerUpdate", Player: snap})
}
