package ports

import (
	"context"
	"time"
)

type TurnKind string

const (
	TurnPurchase TurnKind = "purchase"
	TurnQuest    TurnKind = "quest"
)

// TurnRecord is one applied API result together with the state it produced.
type TurnRecord struct {
	RunID      string
	GameID     string
	Kind       TurnKind
	Ref        string
	Label      string
	Success    bool
	Lives      int
	Gold       int
	Turn       int
	Score      int
	Level      int
	OccurredAt time.Time
}

// TurnJournal is write-mostly; nothing reads it back to resume a game.
type TurnJournal interface {
	Append(ctx context.Context, rec TurnRecord) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]TurnRecord, error)
}
