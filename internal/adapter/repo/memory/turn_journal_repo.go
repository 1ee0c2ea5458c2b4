package memory

import (
	"context"

	"mugloarbot/internal/app/ports"
)

type TurnJournalRepo struct {
	store *Store
}

func NewTurnJournalRepo(store *Store) TurnJournalRepo {
	return TurnJournalRepo{store: store}
}

func (r TurnJournalRepo) Append(_ context.Context, rec ports.TurnRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records[rec.GameID] = append(r.store.records[rec.GameID], rec)
	return nil
}

// ListByGameID returns the newest records first.
func (r TurnJournalRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]ports.TurnRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	recs := r.store.records[gameID]
	if len(recs) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(recs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ports.TurnRecord, 0, n)
	for i := len(recs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, recs[i])
	}
	return out, nil
}

var _ ports.TurnJournal = TurnJournalRepo{}
