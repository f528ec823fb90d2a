package state

// Default vitals for a brand-new character.
const (
	DefaultMaxHealth = 100
	DefaultMaxMana   = 50
	DefaultReach     = 60
)

// Player is the wire shape of a connected character. The display name
// doubles as the session key, so ID is the name.
type Player struct {
	ID              string            `json:"id"`
	X               float64           `json:"x"`
	Y               float64           `json:"y"`
	Health          int               `json:"health"`
	MaxHealth       int               `json:"maxHealth"`
	Mana            int               `json:"mana"`
	MaxMana         int               `json:"maxMana"`
	Pyreals         int               `json:"pyreals"`
	Reach           float64           `json:"reach"`
	ShirtColor      string            `json:"shirtColor,omitempty"`
	PantColor       string            `json:"pantColor,omitempty"`
	EquipmentColors map[string]string `json:"equipmentColors,omitempty"`
	IsDead          bool              `json:"isDead"`
	Inventory       Inventory         `json:"inventory"`
	Equipment       Equipment         `json:"equipment"`
}

// ReachForWeapon derives melee range from the equipped mainhand weapon
// subtype. Used for both hit-testing and visual weapon length.
func ReachForWeapon(weapon *Item) float64 {
	if weapon == nil || weapon.Kind != ItemKindWeapon {
		return DefaultReach
	}
	switch weapon.Subtype {
	case "dagger":
		return 45
	case "sword", "mace":
		return 70
	case "axe":
		return 75
	case "spear", "staff":
		return 95
	case "bow", "wand":
		return 40
	default:
		return DefaultReach
	}
}

// PlayerSnapshot is the persisted per-player record. Equipment is
// stored in snapshot (mirrored) form and normalized on load.
type PlayerSnapshot struct {
	X               float64           `json:"x"`
	Y               float64           `json:"y"`
	Health          int               `json:"health"`
	MaxHealth       int               `json:"maxHealth"`
	Mana            int               `json:"mana"`
	MaxMana         int               `json:"maxMana"`
	Pyreals         int               `json:"pyreals"`
	ShirtColor      string            `json:"shirtColor,omitempty"`
	PantColor       string            `json:"pantColor,omitempty"`
	EquipmentColors map[string]string `json:"equipmentColors,omitempty"`
	Inventory       Inventory         `json:"inventory"`
	Equipment       Equipment         `json:"equipment"`
}
