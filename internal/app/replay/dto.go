package replay

import (
	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/domain/session"
)

type Request struct {
	GameID string
	Limit  int
	Kind   ports.TurnKind
}

type Response struct {
	Records     []ports.TurnRecord
	LatestState session.State
}
