package state

// ProjectileType selects a projectile sprite and flight profile.
type ProjectileType string

const (
	ProjectileArrow    ProjectileType = "arrow"
	ProjectileFireball ProjectileType = "fireball"
)

// Projectile is the wire shape of a live projectile.
type Projectile struct {
	ID                string         `json:"id"`
	Type              ProjectileType `json:"type"`
	X                 float64        `json:"x"`
	Y                 float64        `json:"y"`
	VX                float64        `json:"vx"`
	VY                float64        `json:"vy"`
	Damage            int            `json:"damage"`
	OwnerID           string         `json:"ownerId"`
	IsEnemyProjectile bool           `json:"isEnemyProjectile"`
	CreatedAt         int64          `json:"createdAt"`
	LifetimeMs        int64          `json:"lifetimeMs"`
}

// WorldDrop is an item instance sitting in the level, owned by no
// inventory.
type WorldDrop struct {
	ID            string  `json:"id"`
	Item          *Item   `json:"item"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	VX            float64 `json:"vx"`
	VY            float64 `json:"vy"`
	PickRadius    float64 `json:"pickRadius"`
	Grounded      bool    `json:"grounded"`
	NoPickupUntil int64   `json:"noPickupUntil"`
	CreatedAt     int64   `json:"createdAt"`
}

// Vendor is the level's singleton merchant. It falls under gravity
// like everything else so it rests on the ground line.
type Vendor struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	VY     float64      `json:"vy"`
	Colors VendorColors `json:"colors"`
}

// VendorColors are assigned once at level load for all clients to
// render identically.
type VendorColors struct {
	Robe string `json:"robe"`
	Hat  string `json:"hat"`
	Skin string `json:"skin"`
}

// Spawner owns the lifecycle of at most one enemy at a time.
type Spawner struct {
	ID             int       `json:"id"`
	X              float64   `json:"x"`
	Y              float64   `json:"y"`
	EnemyType      EnemyType `json:"enemyType"`
	MinLevel       int       `json:"minLevel"`
	MaxLevel       int       `json:"maxLevel"`
	RespawnDelayMs int64     `json:"respawnDelayMs"`
	CurrentEnemyID int64     `json:"currentEnemyId,omitempty"`
	RespawnAt      int64     `json:"respawnAt,omitempty"`
}
