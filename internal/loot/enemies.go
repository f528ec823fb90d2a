package loot

import (
	"fmt"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

type enemyProfile struct {
	baseName   string
	epithets   []string
	weaponType string
	healthBase int
	healthPer  int
	bodyColors []string
	trimColors []string
	eyeColors  []string
}

var enemyProfiles = map[state.EnemyType]enemyProfile{
	state.EnemyTypeBasic: {
		baseName:   "Drudge",
		epithets:   []string{"Skulker", "Prowler", "Lurker", "Sneak"},
		weaponType: "dagger",
		healthBase: 30,
		healthPer:  12,
		bodyColors: []string{"#6b4f3a", "#7a5c44", "#5c4430"},
		trimColors: []string{"#3c2f22", "#4a3a2a"},
		eyeColors:  []string{"#e8d44d", "#f0e68c"},
	},
	state.EnemyTypeElite: {
		baseName:   "Tumerok",
		epithets:   []string{"Warrior", "Vanguard", "Ravager", "Champion"},
		weaponType: "axe",
		healthBase: 60,
		healthPer:  18,
		bodyColors: []string{"#8a2f2f", "#963b3b", "#7d2626"},
		trimColors: []string{"#d4af37", "#b8962e"},
		eyeColors:  []string{"#ff6b35", "#ff8c42"},
	},
	state.EnemyTypeBoss: {
		baseName:   "Olthoi",
		epithets:   []string{"Matriarch", "Soldier", "Eviscerator", "Queen"},
		weaponType: "claw",
		healthBase: 150,
		healthPer:  35,
		bodyColors: []string{"#2d4a2d", "#3a5a3a", "#1f3a1f"},
		trimColors: []string{"#8fbc8f", "#6b8e23"},
		eyeColors:  []string{"#ff0040", "#e0115f"},
	},
	state.EnemyTypeSpellcaster: {
		baseName:   "Lich",
		epithets:   []string{"Acolyte", "Binder", "Hexer", "Summoner"},
		weaponType: "wand",
		healthBase: 25,
		healthPer:  10,
		bodyColors: []string{"#3b3b5c", "#44446b", "#2e2e4a"},
		trimColors: []string{"#9370db", "#7b68ee"},
		eyeColors:  []string{"#00ffff", "#40e0d0"},
	},
	state.EnemyTypeWisp: {
		baseName:   "Wisp",
		epithets:   []string{"Mote", "Glimmer", "Spark", "Flicker"},
		weaponType: "",
		healthBase: 15,
		healthPer:  8,
		bodyColors: []string{"#e0ffff", "#f0f8ff", "#dcebf5"},
		trimColors: []string{"#87cefa", "#add8e6"},
		eyeColors:  []string{"#ffffff", "#f5f5ff"},
	},
	state.EnemyTypeShadowWisp: {
		baseName:   "Shadow Wisp",
		epithets:   []string{"Umbra", "Gloom", "Dusk", "Shade"},
		weaponType: "",
		healthBase: 20,
		healthPer:  10,
		bodyColors: []string{"#1a1a2e", "#16213e", "#0f0f23"},
		trimColors: []string{"#533483", "#6a359c"},
		eyeColors:  []string{"#e94560", "#c71585"},
	},
}

// CreateEnemy synthesizes a fresh enemy of the requested type and
// level at a position. Colors are rolled once here so every client
// renders the creature identically for its whole life.
func (g *Generator) CreateEnemy(x, y float64, level int, enemyType state.EnemyType) state.Enemy {
	if level < 1 {
		level = 1
	}
	profile, ok := enemyProfiles[enemyType]
	if !ok {
		enemyType = state.EnemyTypeBasic
		profile = enemyProfiles[enemyType]
	}

	maxHealth := profile.healthBase + level*profile.healthPer

	return state.Enemy{
		Type:       enemyType,
		Name:       fmt.Sprintf("%s %s", profile.baseName, profile.epithets[g.rng.Intn(len(profile.epithets))]),
		Level:      level,
		Health:     maxHealth,
		MaxHealth:  maxHealth,
		X:          x,
		Y:          y,
		WeaponType: profile.weaponType,
		Colors: state.EnemyColors{
			Body: profile.bodyColors[g.rng.Intn(len(profile.bodyColors))],
			Trim: profile.trimColors[g.rng.Intn(len(profile.trimColors))],
			Eye:  profile.eyeColors[g.rng.Intn(len(profile.eyeColors))],
		},
	}
}

// VendorColors rolls the merchant's fixed palette at level load.
func (g *Generator) VendorColors() state.VendorColors {
	robes := []string{"#4b0082", "#2e0854", "#3d1a6e"}
	hats := []string{"#daa520", "#c9a227", "#e6b422"}
	skins := []string{"#e8c39e", "#d9a877", "#c68e5e"}
	return state.VendorColors{
		Robe: robes[g.rng.Intn(len(robes))],
		Hat:  hats[g.rng.Intn(len(hats))],
		Skin: skins[g.rng.Intn(len(skins))],
	}
}
