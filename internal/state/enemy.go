package state

// EnemyType selects an AI profile and loot table.
type EnemyType string

const (
	EnemyTypeBasic       EnemyType = "basic"
	EnemyTypeElite       EnemyType = "elite"
	EnemyTypeBoss        EnemyType = "boss"
	EnemyTypeSpellcaster EnemyType = "spellcaster"
	EnemyTypeWisp        EnemyType = "wisp"
	EnemyTypeShadowWisp  EnemyType = "shadowwisp"
)

// ValidEnemyType reports whether the string names a known enemy type.
func ValidEnemyType(t EnemyType) bool {
	switch t {
	case EnemyTypeBasic, EnemyTypeElite, EnemyTypeBoss, EnemyTypeSpellcaster, EnemyTypeWisp, EnemyTypeShadowWisp:
		return true
	default:
		return false
	}
}

// EnemyColors are fixed at spawn time so every client renders the same
// creature.
type EnemyColors struct {
	Body string `json:"body"`
	Trim string `json:"trim"`
	Eye  string `json:"eye"`
}

// Enemy is the wire shape broadcast on every tick and on spawn.
type Enemy struct {
	ID         int64       `json:"id"`
	Type       EnemyType   `json:"type"`
	Name       string      `json:"name"`
	Level      int         `json:"level"`
	Health     int         `json:"health"`
	MaxHealth  int         `json:"maxHealth"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	VX         float64     `json:"vx"`
	VY         float64     `json:"vy"`
	SpawnerID  int         `json:"spawnerId,omitempty"`
	Colors     EnemyColors `json:"colors"`
	WeaponType string      `json:"weaponType,omitempty"`
}
