package strategy

import (
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"
)

type TierKind string

const (
	TierHealthPotion TierKind = "health_potion"
	TierUpgrade      TierKind = "upgrade"
)

// Tier is one stage of the purchasing loop. Tiers run in order and each one
// keeps buying until its condition no longer holds.
type Tier struct {
	Name        string
	Kind        TierKind
	UpgradeCost int
}

func (p Policy) Tiers() []Tier {
	return []Tier{
		{Name: "health potion", Kind: TierHealthPotion},
		{Name: "expensive upgrade", Kind: TierUpgrade, UpgradeCost: p.ExpensiveUpgradeCost},
		{Name: "cheap upgrade", Kind: TierUpgrade, UpgradeCost: p.CheapUpgradeCost},
	}
}

// Wants reports whether the tier should buy again given the current state.
// Upgrade tiers always keep a potion's worth of gold in reserve.
func (p Policy) Wants(t Tier, s session.State) bool {
	switch t.Kind {
	case TierHealthPotion:
		return s.CanAfford(p.HealthPotionCost) && s.Lives < p.LivesUpperLimit
	case TierUpgrade:
		return s.CanAfford(p.HealthPotionCost + t.UpgradeCost)
	default:
		return false
	}
}

// ItemFor resolves which item id the tier buys next.
func (p Policy) ItemFor(t Tier, catalog shop.Catalog, picker shop.Picker) (shop.Item, error) {
	id := shop.HealthPotionID
	if t.Kind == TierUpgrade {
		var err error
		id, err = catalog.RandomUpgradeByCost(picker, t.UpgradeCost)
		if err != nil {
			return shop.Item{}, err
		}
	}
	return catalog.Lookup(id)
}
