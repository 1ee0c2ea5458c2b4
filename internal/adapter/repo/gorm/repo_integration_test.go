package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"mugloarbot/internal/app/ports"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("MUGLOAR_JOURNAL_TEST_DSN")
	if dsn == "" {
		t.Skip("MUGLOAR_JOURNAL_TEST_DSN is required for integration test")
	}
	return dsn
}

func TestTurnJournalRepo_AppendAndList(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	if err := ApplyMigrations(ctx, db, Migrations()); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	gameID := "it-journal-roundtrip"
	if err := db.Exec("DELETE FROM turn_records WHERE game_id = ?", gameID).Error; err != nil {
		t.Fatalf("cleanup turn_records: %v", err)
	}

	repo := NewTurnJournalRepo(db)
	base := time.Unix(1700000000, 0).UTC()
	records := []ports.TurnRecord{
		{RunID: "run-1", GameID: gameID, Kind: ports.TurnPurchase, Ref: "hpot", Label: "health potion", Success: true, Lives: 4, Gold: 10, Turn: 1, OccurredAt: base},
		{RunID: "run-1", GameID: gameID, Kind: ports.TurnQuest, Ref: "ad-1", Label: "Sure thing", Success: true, Lives: 4, Gold: 40, Turn: 2, Score: 30, OccurredAt: base.Add(time.Second)},
	}
	for _, rec := range records {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.ListByGameID(ctx, gameID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Kind != ports.TurnQuest || got[0].Score != 30 {
		t.Fatalf("expected newest quest record first, got %+v", got[0])
	}

	limited, err := repo.ListByGameID(ctx, gameID, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 record with limit, got %d", len(limited))
	}

	if _, err := repo.ListByGameID(ctx, "it-journal-missing", 10); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(ctx, db, Migrations()); err != nil {
			t.Fatalf("apply migrations pass %d: %v", i, err)
		}
	}
}
