// Package loot holds the content generators consumed by the
// simulation: loot rolls, rarity gating, and enemy synthesis. The
// generators are stateless aside from their RNG, which is injectable
// so tests can pin outcomes.
package loot

import (
	"math/rand"
	"time"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

// Rarity tiers unlock at fixed level thresholds regardless of enemy
// type; weights only shift within the unlocked set.
const (
	rareMinLevel      = 5
	epicMinLevel      = 10
	legendaryMinLevel = 15
)

// Generator produces items and enemies from level plus RNG.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a generator around the supplied RNG. Passing nil
// seeds one from the wall clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

type rarityWeights struct {
	common, uncommon, rare, epic, legendary int
}

func weightsForEnemy(enemyType state.EnemyType) rarityWeights {
	switch enemyType {
	case state.EnemyTypeElite:
		return rarityWeights{common: 35, uncommon: 35, rare: 18, epic: 9, legendary: 3}
	case state.EnemyTypeBoss:
		return rarityWeights{common: 15, uncommon: 35, rare: 28, epic: 15, legendary: 7}
	default:
		return rarityWeights{common: 55, uncommon: 25, rare: 12, epic: 6, legendary: 2}
	}
}

// DetermineRarity rolls a rarity tier for a drop. Tiers above the
// level threshold never appear, however generous the enemy type.
func (g *Generator) DetermineRarity(level int, enemyType state.EnemyType) state.Rarity {
	w := weightsForEnemy(enemyType)
	if level < rareMinLevel {
		w.rare = 0
	}
	if level < epicMinLevel {
		w.epic = 0
	}
	if level < legendaryMinLevel {
		w.legendary = 0
	}

	total := w.common + w.uncommon + w.rare + w.epic + w.legendary
	roll := g.rng.Intn(total)

	switch {
	case roll < w.common:
		return state.RarityCommon
	case roll < w.common+w.uncommon:
		return state.RarityUncommon
	case roll < w.common+w.uncommon+w.rare:
		return state.RarityRare
	case roll < w.common+w.uncommon+w.rare+w.epic:
		return state.RarityEpic
	default:
		return state.RarityLegendary
	}
}

type kindWeights struct {
	currency, weapon, armor int
}

func lootTableForEnemy(enemyType state.EnemyType) kindWeights {
	switch enemyType {
	case state.EnemyTypeWisp, state.EnemyTypeShadowWisp:
		return kindWeights{currency: 70, weapon: 15, armor: 15}
	case state.EnemyTypeSpellcaster:
		return kindWeights{currency: 30, weapon: 40, armor: 30}
	case state.EnemyTypeElite, state.EnemyTypeBoss:
		return kindWeights{currency: 25, weapon: 40, armor: 35}
	default:
		return kindWeights{currency: 45, weapon: 30, armor: 25}
	}
}

// GenerateLoot rolls 1-2 items for a kill, weighted per the enemy
// type's loot table.
func (g *Generator) GenerateLoot(enemyType state.EnemyType, enemyLevel int) []*state.Item {
	if enemyLevel < 1 {
		enemyLevel = 1
	}

	count := 1 + g.rng.Intn(2)
	items := make([]*state.Item, 0, count)
	table := lootTableForEnemy(enemyType)
	total := table.currency + table.weapon + table.armor

	for i := 0; i < count; i++ {
		roll := g.rng.Intn(total)
		switch {
		case roll < table.currency:
			items = append(items, g.rollCurrency(enemyLevel))
		case roll < table.currency+table.weapon:
			items = append(items, g.rollWeapon(enemyLevel, g.DetermineRarity(enemyLevel, enemyType)))
		default:
			items = append(items, g.rollArmor(enemyLevel, g.DetermineRarity(enemyLevel, enemyType)))
		}
	}
	return items
}

// CreateTestSword returns the starter weapon granted to brand-new
// characters.
func CreateTestSword() *state.Item {
	return &state.Item{
		ID:                 state.NewItemID(),
		Name:               "Training Sword",
		Kind:               state.ItemKindWeapon,
		Rarity:             state.RarityCommon,
		Level:              1,
		DmgMin:             2,
		DmgMax:             6,
		Subtype:            "sword",
		PhysicalDamageType: "slashing",
	}
}
