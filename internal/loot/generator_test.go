package loot

import (
	"math/rand"
	"testing"

	"github.com/Thwargle/BrowseronsCall-sub000/internal/state"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestDetermineRarityGatesTiersAtLevelOne(t *testing.T) {
	g := newTestGenerator(1)

	for _, enemyType := range []state.EnemyType{state.EnemyTypeBasic, state.EnemyTypeElite, state.EnemyTypeBoss} {
		for i := 0; i < 2000; i++ {
			rarity := g.DetermineRarity(1, enemyType)
			switch rarity {
			case state.RarityRare, state.RarityEpic, state.RarityLegendary:
				t.Fatalf("level 1 %s drop rolled forbidden rarity %s", enemyType, rarity)
			}
		}
	}
}

func TestDetermineRarityUnlocksTiersByThreshold(t *testing.T) {
	g := newTestGenerator(2)

	sawRare := false
	for i := 0; i < 2000; i++ {
		switch g.DetermineRarity(5, state.EnemyTypeBoss) {
		case state.RarityEpic, state.RarityLegendary:
			t.Fatalf("level 5 drop rolled a tier above Rare")
		case state.RarityRare:
			sawRare = true
		}
	}
	if !sawRare {
		t.Fatalf("expected at least one Rare in 2000 level-5 boss draws")
	}

	sawLegendary := false
	for i := 0; i < 5000; i++ {
		if g.DetermineRarity(20, state.EnemyTypeBoss) == state.RarityLegendary {
			sawLegendary = true
			break
		}
	}
	if !sawLegendary {
		t.Fatalf("expected at least one Legendary in 5000 level-20 boss draws")
	}
}

func TestGenerateLootCountAndShape(t *testing.T) {
	g := newTestGenerator(3)

	for i := 0; i < 500; i++ {
		items := g.GenerateLoot(state.EnemyTypeBasic, 1)
		if len(items) < 1 || len(items) > 2 {
			t.Fatalf("expected 1-2 items per kill, got %d", len(items))
		}
		for _, item := range items {
			if item.ID == "" {
				t.Fatalf("expected generated item to carry an id")
			}
			switch item.Kind {
			case state.ItemKindWeapon:
				if item.DmgMax < item.DmgMin || item.DmgMin < 1 {
					t.Fatalf("weapon damage range invalid: %d-%d", item.DmgMin, item.DmgMax)
				}
			case state.ItemKindArmor:
				if !state.ValidEquipSlot(item.Slot) || item.Slot == state.SlotMainhand || item.Slot == state.SlotOffhand {
					t.Fatalf("armor rolled invalid slot %q", item.Slot)
				}
			case state.ItemKindCurrency:
				if item.Amount <= 0 {
					t.Fatalf("currency rolled non-positive amount %d", item.Amount)
				}
			default:
				t.Fatalf("unexpected item kind %q", item.Kind)
			}
		}
	}
}

func TestGenerateLootIDsAreUnique(t *testing.T) {
	g := newTestGenerator(4)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		for _, item := range g.GenerateLoot(state.EnemyTypeElite, 8) {
			if seen[item.ID] {
				t.Fatalf("duplicate item id %q", item.ID)
			}
			seen[item.ID] = true
		}
	}
}

func TestCreateTestSwordIsAWeapon(t *testing.T) {
	sword := CreateTestSword()
	if sword.Kind != state.ItemKindWeapon {
		t.Fatalf("expected a weapon, got %q", sword.Kind)
	}
	if sword.TwoHanded {
		t.Fatalf("starter sword must leave the offhand free")
	}
	if sword.ID == CreateTestSword().ID {
		t.Fatalf("expected each starter sword to get its own id")
	}
}

func TestCreateEnemyScalesHealthWithLevel(t *testing.T) {
	g := newTestGenerator(5)

	low := g.CreateEnemy(100, 200, 1, state.EnemyTypeBasic)
	high := g.CreateEnemy(100, 200, 10, state.EnemyTypeBasic)

	if low.MaxHealth >= high.MaxHealth {
		t.Fatalf("expected level 10 health %d to exceed level 1 health %d", high.MaxHealth, low.MaxHealth)
	}
	if low.Health != low.MaxHealth {
		t.Fatalf("expected fresh enemy at full health")
	}
	if low.Name == "" || low.Colors.Body == "" {
		t.Fatalf("expected name and colors assigned at creation")
	}
	if low.X != 100 || low.Y != 200 {
		t.Fatalf("expected enemy spawned at requested position")
	}
}

func TestCreateEnemyFallsBackToBasicProfile(t *testing.T) {
	g := newTestGenerator(6)
	enemy := g.CreateEnemy(0, 0, 3, state.EnemyType("gibberish"))
	if enemy.Type != state.EnemyTypeBasic {
		t.Fatalf("expected unknown type to fall back to basic, got %q", enemy.Type)
	}
}
