package purchase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/domain/shop"
	"mugloarbot/internal/domain/strategy"
)

var (
	ErrInvalidRequest   = errors.New("invalid purchase request")
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrPurchaseStalled  = errors.New("purchase did not spend gold")
)

type UseCase struct {
	API     ports.GameAPI
	Policy  strategy.Policy
	Picker  shop.Picker
	Journal ports.TurnJournal
	Metrics ports.BotMetrics
	RunID   string
	Now     func() time.Time
}

// Execute drains each tier in order before moving to the next. A tier that has
// nothing to buy, cannot afford the item, or sees gold not going down is
// skipped; only API failures abort.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.State.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}

	picker := u.Picker
	if picker == nil {
		picker = defaultPicker{}
	}

	state := req.State
	out := Response{}
	for _, tier := range u.Policy.Tiers() {
		for u.Policy.Wants(tier, state) {
			item, err := u.Policy.ItemFor(tier, req.Catalog, picker)
			if err != nil {
				if errors.Is(err, shop.ErrNoUpgradeAvailable) || errors.Is(err, shop.ErrItemNotFound) {
					out.Skipped = append(out.Skipped, Skip{Tier: tier.Name, Reason: err})
					break
				}
				out.State = state
				return out, err
			}
			if !state.CanAfford(item.Cost) {
				out.Skipped = append(out.Skipped, Skip{
					Tier:   tier.Name,
					Reason: fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, item.ID, item.Cost, state.Gold),
				})
				break
			}

			result, err := u.API.Buy(ctx, state.GameID, item.ID)
			if err != nil {
				out.State = state
				return out, fmt.Errorf("buy %s: %w", item.ID, err)
			}
			stalled := result.Gold >= state.Gold
			state = state.ApplyPurchase(result)
			out.Purchases = append(out.Purchases, Purchase{Tier: tier.Name, Item: item, Success: result.Success})

			if u.Metrics != nil && result.Success {
				u.Metrics.RecordPurchase(item.ID)
			}
			if u.Journal != nil {
				rec := ports.TurnRecord{
					RunID:      u.RunID,
					GameID:     state.GameID,
					Kind:       ports.TurnPurchase,
					Ref:        item.ID,
					Label:      tier.Name,
					Success:    result.Success,
					Lives:      state.Lives,
					Gold:       state.Gold,
					Turn:       state.Turn,
					Score:      state.Score,
					Level:      state.DragonLevel,
					OccurredAt: u.now(),
				}
				if err := u.Journal.Append(ctx, rec); err != nil {
					out.State = state
					return out, fmt.Errorf("journal purchase: %w", err)
				}
			}

			if stalled {
				out.Skipped = append(out.Skipped, Skip{Tier: tier.Name, Reason: ErrPurchaseStalled})
				break
			}
		}
	}
	out.State = state
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

type defaultPicker struct{}

func (defaultPicker) IntN(n int) int {
	return rand.IntN(n)
}
