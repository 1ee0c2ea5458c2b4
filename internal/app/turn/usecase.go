package turn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/app/purchase"
	"mugloarbot/internal/domain/quest"
	"mugloarbot/internal/domain/strategy"
)

var (
	ErrInvalidRequest = errors.New("invalid turn request")
	ErrGameOver       = errors.New("no lives left")
)

type UseCase struct {
	API      ports.GameAPI
	Policy   strategy.Policy
	Purchase purchase.UseCase
	Journal  ports.TurnJournal
	Metrics  ports.BotMetrics
	RunID    string
	Now      func() time.Time
}

// Execute plays one turn: shop, refresh the quest board, pick a quest and
// solve it. Each step sees the state produced by the previous one.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.State.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	if !req.State.Alive() {
		return Response{State: req.State}, ErrGameOver
	}

	bought, err := u.Purchase.Execute(ctx, purchase.Request{State: req.State, Catalog: req.Shop})
	if err != nil {
		return Response{State: bought.State, Purchases: bought}, err
	}
	state := bought.State
	out := Response{State: state, Purchases: bought}

	listed, err := u.API.Quests(ctx, state.GameID)
	if err != nil {
		return out, fmt.Errorf("list quests: %w", err)
	}
	out.Quests = quest.NewCatalog(listed)

	sel, err := u.Policy.SelectQuest(out.Quests)
	if err != nil {
		return out, fmt.Errorf("select quest: %w", err)
	}
	out.Selection = sel

	result, err := u.API.Solve(ctx, state.GameID, sel.Quest.ID)
	if err != nil {
		return out, fmt.Errorf("solve %s: %w", sel.Quest.ID, err)
	}
	out.Outcome = result
	out.State = state.ApplyQuest(result)

	if u.Metrics != nil {
		u.Metrics.RecordQuest(sel.Quest.Probability, result.Success)
	}
	if u.Journal != nil {
		s := out.State
		rec := ports.TurnRecord{
			RunID:      u.RunID,
			GameID:     s.GameID,
			Kind:       ports.TurnQuest,
			Ref:        sel.Quest.ID,
			Label:      sel.Quest.Probability,
			Success:    result.Success,
			Lives:      s.Lives,
			Gold:       s.Gold,
			Turn:       s.Turn,
			Score:      s.Score,
			Level:      s.DragonLevel,
			OccurredAt: u.now(),
		}
		if err := u.Journal.Append(ctx, rec); err != nil {
			return out, fmt.Errorf("journal quest: %w", err)
		}
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}
