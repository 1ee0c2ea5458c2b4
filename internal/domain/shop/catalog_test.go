package shop

import (
	"errors"
	"testing"
)

type fixedPicker int

func (f fixedPicker) IntN(n int) int {
	return int(f) % n
}

func sampleCatalog() Catalog {
	return NewCatalog([]Item{
		{ID: HealthPotionID, Name: "Healing potion", Cost: 50},
		{ID: "cs", Name: "Claw Sharpening", Cost: 100},
		{ID: "gas", Name: "Gasoline", Cost: 100},
		{ID: "wax", Name: "Copper Plating", Cost: 100},
		{ID: "ch", Name: "Claw Honing", Cost: 300},
		{ID: "rf", Name: "Rocket Fuel", Cost: 300},
	})
}

func TestUpgrades_ExcludesHealthPotion(t *testing.T) {
	ups := sampleCatalog().Upgrades()
	if _, ok := ups[HealthPotionID]; ok {
		t.Fatalf("expected health potion to be excluded from upgrades")
	}
	if len(ups) != 5 {
		t.Fatalf("expected 5 upgrades, got %d", len(ups))
	}
}

func TestUpgradesByCost_ExactMatchOnly(t *testing.T) {
	c := sampleCatalog()
	if got := len(c.UpgradesByCost(100)); got != 3 {
		t.Fatalf("expected 3 items at 100, got %d", got)
	}
	if got := len(c.UpgradesByCost(50)); got != 0 {
		t.Fatalf("expected potion price to yield no upgrades, got %d", got)
	}
	if got := len(c.UpgradesByCost(299)); got != 0 {
		t.Fatalf("expected no items at 299, got %d", got)
	}
}

func TestRandomUpgradeByCost_PicksFromSortedCandidates(t *testing.T) {
	c := sampleCatalog()
	id, err := c.RandomUpgradeByCost(fixedPicker(1), 300)
	if err != nil {
		t.Fatalf("RandomUpgradeByCost error: %v", err)
	}
	if id != "rf" {
		t.Fatalf("expected rf, got %q", id)
	}
	id, err = c.RandomUpgradeByCost(fixedPicker(0), 100)
	if err != nil {
		t.Fatalf("RandomUpgradeByCost error: %v", err)
	}
	if id != "cs" {
		t.Fatalf("expected cs, got %q", id)
	}
}

func TestRandomUpgrade_NeverReturnsPotion(t *testing.T) {
	c := sampleCatalog()
	for i := 0; i < 10; i++ {
		id, err := c.RandomUpgrade(fixedPicker(i))
		if err != nil {
			t.Fatalf("RandomUpgrade error: %v", err)
		}
		if id == HealthPotionID {
			t.Fatalf("expected upgrade, got potion")
		}
	}
}

func TestRandomUpgradeByCost_EmptyCandidates(t *testing.T) {
	c := NewCatalog([]Item{{ID: HealthPotionID, Cost: 50}})
	if _, err := c.RandomUpgradeByCost(fixedPicker(0), 100); !errors.Is(err, ErrNoUpgradeAvailable) {
		t.Fatalf("expected ErrNoUpgradeAvailable, got %v", err)
	}
	if _, err := c.RandomUpgrade(fixedPicker(0)); !errors.Is(err, ErrNoUpgradeAvailable) {
		t.Fatalf("expected ErrNoUpgradeAvailable, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	c := sampleCatalog()
	it, err := c.Lookup("gas")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if it.Cost != 100 {
		t.Fatalf("expected cost 100, got %d", it.Cost)
	}
	if _, err := c.Lookup("nope"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestReplace_DropsPreviousItems(t *testing.T) {
	c := sampleCatalog()
	c.Replace([]Item{{ID: "new", Cost: 10}})
	if c.Len() != 1 {
		t.Fatalf("expected 1 item after replace, got %d", c.Len())
	}
	if _, err := c.Lookup("cs"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected old item to be gone, got %v", err)
	}
}
