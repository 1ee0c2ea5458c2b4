package gormrepo

import (
	"context"

	"mugloarbot/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TurnJournalRepo struct {
	db *gorm.DB
}

func NewTurnJournalRepo(db *gorm.DB) TurnJournalRepo {
	return TurnJournalRepo{db: db}
}

func (r TurnJournalRepo) Append(ctx context.Context, rec ports.TurnRecord) error {
	row := turnRecordRow{
		RunID:      rec.RunID,
		GameID:     rec.GameID,
		Kind:       string(rec.Kind),
		Ref:        rec.Ref,
		Label:      rec.Label,
		Success:    rec.Success,
		Lives:      rec.Lives,
		Gold:       rec.Gold,
		Turn:       rec.Turn,
		Score:      rec.Score,
		Level:      rec.Level,
		OccurredAt: rec.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// ListByGameID returns the newest records first.
func (r TurnJournalRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]ports.TurnRecord, error) {
	rows := []turnRecordRow{}
	query := r.db.WithContext(ctx).
		Where(&turnRecordRow{GameID: gameID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.TurnRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.TurnRecord{
			RunID:      row.RunID,
			GameID:     row.GameID,
			Kind:       ports.TurnKind(row.Kind),
			Ref:        row.Ref,
			Label:      row.Label,
			Success:    row.Success,
			Lives:      row.Lives,
			Gold:       row.Gold,
			Turn:       row.Turn,
			Score:      row.Score,
			Level:      row.Level,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}

var _ ports.TurnJournal = TurnJournalRepo{}
