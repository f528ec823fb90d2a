package main

import (
	"encoding/json"
	"fmt"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// Client message types. Every inbound frame is `{"type": ..., fields}`
// and is decoded exactly once, at the boundary, into clientCommand.
const (
	msgJoin             = "join"
	msgChat             = "chat"
	msgPlayerUpdate     = "playerUpdate"
	msgMoveItem         = "moveItem"
	msgDropItem         = "dropItem"
	msgPickupItem       = "pickupItem"
	msgSellItem         = "sellItem"
	msgSellAllInventory = "sellAllInventory"
	msgAttackEnemy      = "attackEnemy"
	msgShootProjectile  = "shootProjectile"
	msgSpawnEnemy       = "spawnEnemy"
	msgPlayerDeath      = "playerDeath"
	msgPlayerRespawn    = "playerRespawn"
)

// Container identifiers used by item relocation messages.
const (
	fromBag   = "bag"
	fromEquip = "equip"
	fromWorld = "world"
)

type joinCommand struct {
	Name            string            `json:"name"`
	ShirtColor      string            `json:"shirtColor,omitempty"`
	PantColor       string            `json:"pantColor,omitempty"`
	EquipmentColors map[string]string `json:"equipmentColors,omitempty"`
}

type chatCommand struct {
	Msg string `json:"msg"`
}

// playerUpdateCommand merges provided fields onto the authoritative
// player; absent fields stay untouched, hence the pointers.
type playerUpdateCommand struct {
	X               *float64          `json:"x,omitempty"`
	Y               *float64          `json:"y,omitempty"`
	Health          *int              `json:"health,omitempty"`
	MaxHealth       *int              `json:"maxHealth,omitempty"`
	Pyreals         *int              `json:"pyreals,omitempty"`
	Reach           *float64          `json:"reach,omitempty"`
	ShirtColor      *string           `json:"shirtColor,omitempty"`
	PantColor       *string           `json:"pantColor,omitempty"`
	EquipmentColors map[string]string `json:"equipmentColors,omitempty"`
}

type moveItemCommand struct {
	ItemID    string          `json:"itemId"`
	FromWhere string          `json:"fromWhere"`
	FromIndex *int            `json:"fromIndex,omitempty"`
	FromSlot  state.EquipSlot `json:"fromSlot,omitempty"`
	ToWhere   string          `json:"toWhere"`
	ToIndex   *int            `json:"toIndex,omitempty"`
	ToSlot    state.EquipSlot `json:"toSlot,omitempty"`
}

type dropItemCommand struct {
	ItemID    string          `json:"itemId"`
	FromWhere string          `json:"fromWhere"`
	FromIndex *int            `json:"fromIndex,omitempty"`
	FromSlot  state.EquipSlot `json:"fromSlot,omitempty"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
}

type pickupItemCommand struct {
	DropID    string `json:"dropId"`
	SlotIndex *int   `json:"slotIndex,omitempty"`
}

type sellItemCommand struct {
	ItemID    string          `json:"itemId"`
	FromWhere string          `json:"fromWhere"`
	FromIndex *int            `json:"fromIndex,omitempty"`
	FromSlot  state.EquipSlot `json:"fromSlot,omitempty"`
}

type attackEnemyCommand struct {
	ID int64 `json:"id"`
	// Damage is client-declared and applied as-is. Known integrity
	// gap in the wire protocol; see DESIGN.md.
	Damage int `json:"damage"`
}

type shootProjectileCommand struct {
	WeaponType string  `json:"weaponType"`
	Direction  float64 `json:"direction"` // radians
	Damage     int     `json:"damage"`
}

type spawnEnemyCommand struct {
	X     float64 `json:"x"`
	Level int     `json:"level"`
}

type playerRespawnCommand struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
}

// clientCommand is the closed union of every message a client can
// send. Exactly one payload pointer is non-nil after a successful
// decode.
type clientCommand struct {
	Type            string
	Join            *joinCommand
	Chat            *chatCommand
	PlayerUpdate    *playerUpdateCommand
	MoveItem        *moveItemCommand
	DropItem        *dropItemCommand
	PickupItem      *pickupItemCommand
	SellItem        *sellItemCommand
	AttackEnemy     *attackEnemyCommand
	ShootProjectile *shootProjectileCommand
	SpawnEnemy      *spawnEnemyCommand
	PlayerRespawn   *playerRespawnCommand
}

// decodeClientCommand parses one inbound frame into the command union.
func decodeClientCommand(data []byte) (clientCommand, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return clientCommand{}, fmt.Errorf("malformed message: %w", err)
	}

	cmd := clientCommand{Type: head.Type}
	var err error
	switch head.Type {
	case msgJoin:
		cmd.Join = &joinCommand{}
		err = json.Unmarshal(data, cmd.Join)
	case msgChat:
		cmd.Chat = &chatCommand{}
		err = json.Unmarshal(data, cmd.Chat)
	case msgPlayerUpdate:
		cmd.PlayerUpdate = &playerUpdateCommand{}
		err = json.Unmarshal(data, cmd.PlayerUpdate)
	case msgMoveItem:
		cmd.MoveItem = &moveItemCommand{}
		err = json.Unmarshal(data, cmd.MoveItem)
	case msgDropItem:
		cmd.DropItem = &dropItemCommand{}
		err = json.Unmarshal(data, cmd.DropItem)
	case msgPickupItem:
		cmd.PickupItem = &pickupItemCommand{}
		err = json.Unmarshal(data, cmd.PickupItem)
	case msgSellItem:
		cmd.SellItem = &sellItemCommand{}
		err = json.Unmarshal(data, cmd.SellItem)
	case msgSellAllInventory, msgPlayerDeath:
		// No payload beyond the type tag.
	case msgAttackEnemy:
		cmd.AttackEnemy = &attackEnemyCommand{}
		err = json.Unmarshal(data, cmd.AttackEnemy)
	case msgShootProjectile:
		cmd.ShootProjectile = &shootProjectileCommand{}
		err = json.Unmarshal(data, cmd.ShootProjectile)
	case msgSpawnEnemy:
		cmd.SpawnEnemy = &spawnEnemyCommand{}
		err = json.Unmarshal(data, cmd.SpawnEnemy)
	case msgPlayerRespawn:
		cmd.PlayerRespawn = &playerRespawnCommand{}
		err = json.Unmarshal(data, cmd.PlayerRespawn)
	default:
		return clientCommand{}, fmt.Errorf("unknown message type %q", head.Type)
	}
	if err != nil {
		return clientCommand{}, fmt.Errorf("malformed %s message: %w", head.Type, err)
	}
	return cmd, nil
}

// Server-initiated messages. Each struct carries its own type tag so a
// marshaled value is a complete frame.

type joinRejectedMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type playerJoinedMessage struct {
	Type   string       `json:"type"`
	Player state.Player `json:"player"`
}

type playerLeftMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type playerDataMessage struct {
	Type      string          `json:"type"`
	Equip     state.Equipment `json:"equip"`
	Inventory state.Inventory `json:"inventory"`
}

type gameStateMessage struct {
	Type       string            `json:"type"`
	LevelName  string            `json:"levelName"`
	Players    []state.Player    `json:"players"`
	Enemies    []state.Enemy     `json:"enemies"`
	WorldDrops []state.WorldDrop `json:"worldDrops"`
	Vendor     *state.Vendor     `json:"vendor"`
	Spawners   []state.Spawner   `json:"spawners"`
}

type chatMessage struct {
	Type string `json:"type"`
	From string `json:"from,omitempty"`
	Msg  string `json:"msg"`
}

type playerUpdateMessage struct {
	Type   string       `json:"type"`
	Player state.Player `json:"player"`
}

type inventoryUpdatedMessage struct {
	Type      string          `json:"type"`
	Inventory state.Inventory `json:"inventory"`
	Pyreals   int             `json:"pyreals"`
}

type equipmentUpdatedMessage struct {
	Type      string          `json:"type"`
	Equipment state.Equipment `json:"equipment"`
	Reach     float64         `json:"reach"`
}

type equipUpdateMessage struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	Equipment state.Equipment `json:"equipment"`
	Reach     float64         `json:"reach"`
}

type moveItemRejectedMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// dropItemMessage is flat on the wire: the drop's fields sit alongside
// the type tag, not under a nested object.
type dropItemMessage struct {
	Type string `json:"type"`
	state.WorldDrop
}

type pickupItemMessage struct {
	Type     string `json:"type"`
	DropID   string `json:"dropId"`
	PlayerID string `json:"playerId"`
}

type dropExpiredMessage struct {
	Type   string `json:"type"`
	DropID string `json:"dropId"`
}

type enemyUpdateMessage struct {
	Type  string      `json:"type"`
	Enemy state.Enemy `json:"enemy"`
}

type enemySpawnedMessage struct {
	Type  string      `json:"type"`
	Enemy state.Enemy `json:"enemy"`
}

type enemyDeathMessage struct {
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	KillerID string `json:"killerId,omitempty"`
}

type projectileCreatedMessage struct {
	Type       string           `json:"type"`
	Projectile state.Projectile `json:"projectile"`
}

type projectileUpdateMessage struct {
	Type string  `json:"type"`
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
}

type projectileDestroyedMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type vendorUpdateMessage struct {
	Type   string        `json:"type"`
	Vendor *state.Vendor `json:"vendor"`
}

type playerDeathMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
