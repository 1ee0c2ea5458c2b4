package ports

import (
	"context"

	"mugloarbot/internal/domain/quest"
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"
)

// GameAPI is the remote game. Responses are authoritative for session state.
type GameAPI interface {
	StartGame(ctx context.Context) (session.Start, error)
	Quests(ctx context.Context, gameID string) ([]quest.Quest, error)
	Solve(ctx context.Context, gameID, questID string) (session.QuestOutcome, error)
	ShopItems(ctx context.Context, gameID string) ([]shop.Item, error)
	Buy(ctx context.Context, gameID, itemID string) (session.PurchaseOutcome, error)
	InvestigateReputation(ctx context.Context, gameID string) (session.Reputation, error)
}
