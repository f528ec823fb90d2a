package loot

import (
	"fmt"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

type weaponProfile struct {
	subtype    string
	damageType string
	twoHanded  bool
	baseMin    int
	baseMax    int
}

var weaponProfiles = []weaponProfile{
	{subtype: "dagger", damageType: "piercing", baseMin: 1, baseMax: 4},
	{subtype: "sword", damageType: "slashing", baseMin: 2, baseMax: 6},
	{subtype: "axe", damageType: "slashing", baseMin: 3, baseMax: 7},
	{subtype: "mace", damageType: "bludgeoning", baseMin: 3, baseMax: 6},
	{subtype: "spear", damageType: "piercing", twoHanded: true, baseMin: 3, baseMax: 8},
	{subtype: "staff", damageType: "bludgeoning", twoHanded: true, baseMin: 2, baseMax: 7},
	{subtype: "bow", damageType: "piercing", twoHanded: true, baseMin: 2, baseMax: 8},
	{subtype: "wand", damageType: "fire", baseMin: 3, baseMax: 9},
}

// armorSlots lists every slot armor can roll for; only the weapon
// hands are excluded.
var armorSlots = []state.EquipSlot{
	state.SlotHead, state.SlotNeck, state.SlotShoulders, state.SlotChest,
	state.SlotWaist, state.SlotLegs, state.SlotFeet, state.SlotWrists,
	state.SlotHands, state.SlotTrinket,
}

var armorBaseNames = map[state.EquipSlot]string{
	state.SlotHead:      "Helm",
	state.SlotNeck:      "Amulet",
	state.SlotShoulders: "Pauldrons",
	state.SlotChest:     "Cuirass",
	state.SlotWaist:     "Girdle",
	state.SlotLegs:      "Greaves",
	state.SlotFeet:      "Boots",
	state.SlotWrists:    "Bracers",
	state.SlotHands:     "Gauntlets",
	state.SlotTrinket:   "Talisman",
}

var rarityAdjectives = map[state.Rarity][]string{
	state.RarityCommon:    {"Worn", "Plain", "Sturdy"},
	state.RarityUncommon:  {"Fine", "Keen", "Polished"},
	state.RarityRare:      {"Ornate", "Runed", "Gleaming"},
	state.RarityEpic:      {"Shimmering", "Soulbound", "Stormforged"},
	state.RarityLegendary: {"Mythic", "Celestial", "Worldrender"},
}

var statNames = []string{"strength", "endurance", "coordination", "quickness", "focus", "self"}

func (g *Generator) rollStats(rarity state.Rarity, level int) map[string]int {
	statCount := 0
	switch rarity {
	case state.RarityUncommon:
		statCount = 1
	case state.RarityRare:
		statCount = 2
	case state.RarityEpic:
		statCount = 3
	case state.RarityLegendary:
		statCount = 4
	}
	if statCount == 0 {
		return nil
	}

	stats := make(map[string]int, statCount)
	for len(stats) < statCount {
		name := statNames[g.rng.Intn(len(statNames))]
		if _, taken := stats[name]; taken {
			continue
		}
		stats[name] = 1 + g.rng.Intn(2+level/2)
	}
	return stats
}

func (g *Generator) itemName(rarity state.Rarity, base string, stats map[string]int) string {
	adjectives := rarityAdjectives[rarity]
	name := fmt.Sprintf("%s %s", adjectives[g.rng.Intn(len(adjectives))], base)
	// Suffix from one of the rolled bonuses, in the classic style.
	for stat := range stats {
		return fmt.Sprintf("%s of %s", name, statTitle(stat))
	}
	return name
}

func statTitle(stat string) string {
	switch stat {
	case "strength":
		return "Strength"
	case "endurance":
		return "Endurance"
	case "coordination":
		return "Coordination"
	case "quickness":
		return "Quickness"
	case "focus":
		return "Focus"
	case "self":
		return "Willpower"
	default:
		return stat
	}
}

func (g *Generator) rollWeapon(level int, rarity state.Rarity) *state.Item {
	profile := weaponProfiles[g.rng.Intn(len(weaponProfiles))]
	scale := 1 + level/3
	stats := g.rollStats(rarity, level)

	return &state.Item{
		ID:                 state.NewItemID(),
		Name:               g.itemName(rarity, weaponTitle(profile.subtype), stats),
		Kind:               state.ItemKindWeapon,
		Rarity:             rarity,
		Level:              level,
		Stats:              stats,
		DmgMin:             profile.baseMin * scale,
		DmgMax:             profile.baseMax*scale + state.RarityMultiplier(rarity),
		Subtype:            profile.subtype,
		TwoHanded:          profile.twoHanded,
		PhysicalDamageType: profile.damageType,
	}
}

func weaponTitle(subtype string) string {
	switch subtype {
	case "dagger":
		return "Dagger"
	case "sword":
		return "Sword"
	case "axe":
		return "Axe"
	case "mace":
		return "Mace"
	case "spear":
		return "Spear"
	case "staff":
		return "Staff"
	case "bow":
		return "Bow"
	case "wand":
		return "Wand"
	default:
		return subtype
	}
}

func (g *Generator) rollArmor(level int, rarity state.Rarity) *state.Item {
	slot := armorSlots[g.rng.Intn(len(armorSlots))]
	stats := g.rollStats(rarity, level)
	if stats == nil {
		stats = map[string]int{}
	}
	stats["armor"] = 2 + level + state.RarityMultiplier(rarity)

	return &state.Item{
		ID:     state.NewItemID(),
		Name:   g.itemName(rarity, armorBaseNames[slot], nil),
		Kind:   state.ItemKindArmor,
		Rarity: rarity,
		Level:  level,
		Stats:  stats,
		Slot:   slot,
	}
}

func (g *Generator) rollCurrency(level int) *state.Item {
	amount := 3 + level*2 + g.rng.Intn(4+level*3)
	return &state.Item{
		ID:     state.NewItemID(),
		Name:   "Pyreals",
		Kind:   state.ItemKindCurrency,
		Rarity: state.RarityCommon,
		Level:  level,
		Amount: amount,
	}
}
