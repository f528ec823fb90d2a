package state

import "testing"

func TestItemValueIsDeterministic(t *testing.T) {
	stats := map[string]int{"strength": 3, "endurance": 2}

	first := ItemValue(7, RarityRare, stats)
	for i := 0; i < 100; i++ {
		if got := ItemValue(7, RarityRare, stats); got != first {
			t.Fatalf("expected identical value on repeat call, got %d then %d", first, got)
		}
	}
}

func TestItemValueScalesWithRarity(t *testing.T) {
	stats := map[string]int{"coordination": 4}
	previous := 0
	for _, rarity := range []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary} {
		value := ItemValue(5, rarity, stats)
		if value <= previous {
			t.Fatalf("expected %s value to exceed previous tier, got %d after %d", rarity, value, previous)
		}
		previous = value
	}
}

func TestCurrencyValueIsFaceAmount(t *testing.T) {
	coins := &Item{ID: NewItemID(), Kind: ItemKindCurrency, Amount: 123}
	if got := coins.Value(); got != 123 {
		t.Fatalf("expected currency value 123, got %d", got)
	}
}

func TestItemCloneIsDeep(t *testing.T) {
	item := &Item{
		ID:    NewItemID(),
		Kind:  ItemKindArmor,
		Slot:  SlotChest,
		Stats: map[string]int{"armor": 5},
	}

	cloned := item.Clone()
	cloned.Stats["armor"] = 99

	if item.Stats["armor"] != 5 {
		t.Fatalf("expected original stats untouched, got %d", item.Stats["armor"])
	}
}

func TestStatSumIgnoresOrder(t *testing.T) {
	a := map[string]int{"strength": 1, "focus": 2, "self": 3}
	b := map[string]int{"self": 3, "strength": 1, "focus": 2}
	if StatSum(a) != StatSum(b) {
		t.Fatalf("expected stat sum to be order independent")
	}
}
