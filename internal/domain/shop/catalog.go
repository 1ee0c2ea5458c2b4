package shop

import (
	"errors"
	"fmt"
	"sort"
)

const HealthPotionID = "hpot"

var (
	ErrItemNotFound       = errors.New("shop item not found")
	ErrNoUpgradeAvailable = errors.New("no upgrade available")
)

type Item struct {
	ID   string
	Name string
	Cost int
}

// Picker draws a uniform index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

type Catalog struct {
	items map[string]Item
}

func NewCatalog(items []Item) Catalog {
	c := Catalog{}
	c.Replace(items)
	return c
}

// Replace swaps the whole item set; nothing from the previous set survives.
func (c *Catalog) Replace(items []Item) {
	next := make(map[string]Item, len(items))
	for _, it := range items {
		next[it.ID] = it
	}
	c.items = next
}

func (c Catalog) Len() int {
	return len(c.items)
}

func (c Catalog) Upgrades() map[string]Item {
	out := make(map[string]Item, len(c.items))
	for id, it := range c.items {
		if id == HealthPotionID {
			continue
		}
		out[id] = it
	}
	return out
}

func (c Catalog) UpgradesByCost(cost int) map[string]Item {
	out := map[string]Item{}
	for id, it := range c.Upgrades() {
		if it.Cost == cost {
			out[id] = it
		}
	}
	return out
}

func (c Catalog) RandomUpgrade(p Picker) (string, error) {
	return pick(p, c.Upgrades())
}

func (c Catalog) RandomUpgradeByCost(p Picker, cost int) (string, error) {
	id, err := pick(p, c.UpgradesByCost(cost))
	if err != nil {
		return "", fmt.Errorf("cost %d: %w", cost, err)
	}
	return id, nil
}

func (c Catalog) Lookup(id string) (Item, error) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	return it, nil
}

func pick(p Picker, candidates map[string]Item) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoUpgradeAvailable
	}
	ids := make([]string, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	// map order is random; sort so a seeded picker is reproducible
	sort.Strings(ids)
	return ids[p.IntN(len(ids))], nil
}
