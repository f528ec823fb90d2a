package state

import (
	"sort"

	"github.com/google/uuid"
)

// ItemKind classifies what a stat bag is attached to.
type ItemKind string

const (
	ItemKindWeapon   ItemKind = "weapon"
	ItemKindArmor    ItemKind = "armor"
	ItemKindCurrency ItemKind = "currency"
)

// Rarity gates stat-bonus ranges and value multipliers.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// RarityMultiplier returns the value multiplier for a rarity tier.
func RarityMultiplier(r Rarity) int {
	switch r {
	case RarityUncommon:
		return 2
	case RarityRare:
		return 4
	case RarityEpic:
		return 8
	case RarityLegendary:
		return 16
	default:
		return 1
	}
}

// Item is an immutable game item. Once created it never changes except
// for relocation between containers; exactly one container owns it at
// a time.
type Item struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Kind   ItemKind       `json:"kind"`
	Rarity Rarity         `json:"rarity"`
	Level  int            `json:"level"`
	Stats  map[string]int `json:"stats,omitempty"`

	// Weapon fields.
	DmgMin             int    `json:"dmgMin,omitempty"`
	DmgMax             int    `json:"dmgMax,omitempty"`
	Subtype            string `json:"subtype,omitempty"`
	TwoHanded          bool   `json:"twoHanded,omitempty"`
	PhysicalDamageType string `json:"physicalDamageType,omitempty"`

	// Armor fields.
	Slot EquipSlot `json:"slot,omitempty"`

	// Currency fields.
	Amount int `json:"amount,omitempty"`
}

// NewItemID returns a globally unique item identifier.
func NewItemID() string {
	return uuid.NewString()
}

// StatSum adds up every stat bonus on the bag in a stable order.
func StatSum(stats map[string]int) int {
	if len(stats) == 0 {
		return 0
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	total := 0
	for _, k := range keys {
		total += stats[k]
	}
	return total
}

// ItemValue derives an item's pyreal value from its level, rarity and
// stat sum. Equal inputs always yield equal outputs.
func ItemValue(level int, rarity Rarity, stats map[string]int) int {
	if level < 1 {
		level = 1
	}
	base := 5 + level*3 + StatSum(stats)*2
	return base * RarityMultiplier(rarity)
}

// Value reports the item's sale value. Currency is worth its face
// amount.
func (i *Item) Value() int {
	if i == nil {
		return 0
	}
	if i.Kind == ItemKindCurrency {
		return i.Amount
	}
	return ItemValue(i.Level, i.Rarity, i.Stats)
}

// Clone returns a deep copy, including the stat bag.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	cloned := *i
	if len(i.Stats) > 0 {
		cloned.Stats = make(map[string]int, len(i.Stats))
		for k, v := range i.Stats {
			cloned.Stats[k] = v
		}
	}
	return &cloned
}
