package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	metricsinmem "mugloarbot/internal/adapter/metrics/inmemory"
	"mugloarbot/internal/adapter/mugloar"
	gormrepo "mugloarbot/internal/adapter/repo/gorm"
	memrepo "mugloarbot/internal/adapter/repo/memory"
	"mugloarbot/internal/app/game"
	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/app/purchase"
	"mugloarbot/internal/app/replay"
	"mugloarbot/internal/app/turn"
	"mugloarbot/internal/domain/strategy"
	"mugloarbot/internal/platform/config"

	"github.com/google/uuid"
)

var errJournalMismatch = errors.New("journal does not match final state")

func main() {
	logger := log.New(os.Stderr, "[mugloarbot] ", log.LstdFlags)
	ctx := context.Background()

	cfg, err := config.LoadBot()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	gateway, err := mugloar.NewGateway(cfg.RequestTimeout)
	if err != nil {
		logger.Fatalf("build gateway: %v", err)
	}
	api := mugloar.NewClient(cfg.BaseURL, gateway)
	journal, err := buildJournal(ctx, cfg.JournalDSN)
	if err != nil {
		logger.Fatalf("build journal: %v", err)
	}
	metrics := metricsinmem.NewRecorder()

	runID := uuid.NewString()
	runner := buildRunner(api, journal, metrics, newPicker(cfg.RandomSeed), runID, cfg.MaxTurns, os.Stdout, logger)

	logger.Printf("run %s against %s", runID, cfg.BaseURL)
	summary, err := runner.Run(ctx)
	if err != nil {
		logger.Fatalf("run %s: %v", runID, err)
	}
	logSummary(logger, summary, metrics.Snapshot())
	if err := checkJournal(ctx, journal, summary); err != nil {
		logger.Printf("journal check: %v", err)
	}
}

func buildRunner(api ports.GameAPI, journal ports.TurnJournal, metrics ports.BotMetrics, picker *rand.Rand, runID string, maxTurns int, out io.Writer, logger *log.Logger) *game.Runner {
	policy := strategy.DefaultPolicy()
	return &game.Runner{
		API: api,
		Turn: turn.UseCase{
			API:    api,
			Policy: policy,
			Purchase: purchase.UseCase{
				API:     api,
				Policy:  policy,
				Picker:  picker,
				Journal: journal,
				Metrics: metrics,
				RunID:   runID,
			},
			Journal: journal,
			Metrics: metrics,
			RunID:   runID,
		},
		Out:      out,
		Logger:   logger,
		MaxTurns: maxTurns,
	}
}

// buildJournal keeps records in memory unless a DSN is configured.
func buildJournal(ctx context.Context, dsn string) (ports.TurnJournal, error) {
	if dsn == "" {
		return memrepo.NewTurnJournalRepo(memrepo.NewStore()), nil
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		return nil, err
	}
	if err := gormrepo.ApplyMigrations(ctx, db, gormrepo.Migrations()); err != nil {
		return nil, err
	}
	return gormrepo.NewTurnJournalRepo(db), nil
}

func newPicker(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// checkJournal replays the recorded turns and reports when the last record
// disagrees with the final state the runner printed.
func checkJournal(ctx context.Context, journal ports.TurnJournal, sum game.Summary) error {
	if sum.Turns == 0 {
		return nil
	}
	out, err := replay.UseCase{Journal: journal}.Execute(ctx, replay.Request{GameID: sum.GameID})
	if err != nil {
		return err
	}
	last := out.LatestState
	if last.Score != sum.Score || last.DragonLevel != sum.Level || last.Turn != sum.Turn {
		return fmt.Errorf("%w: journal score=%d level=%d turn=%d, final score=%d level=%d turn=%d",
			errJournalMismatch, last.Score, last.DragonLevel, last.Turn, sum.Score, sum.Level, sum.Turn)
	}
	return nil
}

func logSummary(logger *log.Logger, sum game.Summary, snap metricsinmem.Snapshot) {
	logger.Printf("game %s over (%s): score=%d level=%d turn=%d turns_played=%d",
		sum.GameID, sum.Reason, sum.Score, sum.Level, sum.Turn, sum.Turns)
	logger.Printf("reputation: people=%.1f state=%.1f underworld=%.1f",
		sum.Reputation.People, sum.Reputation.State, sum.Reputation.Underworld)
	logger.Printf("purchases=%d quests=%d success_rate=%.2f",
		snap.PurchaseTotal, snap.QuestTotal, snap.SuccessRate())
	for _, label := range snap.Labels() {
		st := snap.QuestByLabel[label]
		logger.Printf("  %-18s ok=%d failed=%d", label, st.Succeeded, st.Failed)
	}
}
