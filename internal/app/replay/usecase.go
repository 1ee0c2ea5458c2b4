package replay

import (
	"context"
	"errors"
	"strings"

	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/domain/session"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Journal ports.TurnJournal
}

// Execute reads back a game's journal, newest first, and rebuilds the state the
// last recorded response left behind.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	// filter before limit so the limit applies to matching records
	records, err := u.Journal.ListByGameID(ctx, req.GameID, 0)
	if err != nil {
		return Response{}, err
	}
	latest := reconstruct(req.GameID, records)
	records = filterByKind(records, req.Kind)
	if req.Limit > 0 && len(records) > req.Limit {
		records = records[:req.Limit]
	}
	return Response{Records: records, LatestState: latest}, nil
}

func filterByKind(records []ports.TurnRecord, kind ports.TurnKind) []ports.TurnRecord {
	if kind == "" {
		return records
	}
	out := make([]ports.TurnRecord, 0, len(records))
	for _, rec := range records {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out
}

func reconstruct(gameID string, records []ports.TurnRecord) session.State {
	state := session.State{GameID: gameID}
	if len(records) == 0 {
		return state
	}
	last := records[0]
	state.Lives = last.Lives
	state.Gold = last.Gold
	state.Turn = last.Turn
	state.Score = last.Score
	state.DragonLevel = last.Level
	return state
}
