package game

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/enetx/fsm"

	"mugloarbot/internal/app/ports"
	"mugloarbot/internal/app/turn"
	"mugloarbot/internal/domain/quest"
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"
)

// Runner drives one session from the start handshake until lives run out.
// It is not safe for concurrent use.
type Runner struct {
	API      ports.GameAPI
	Turn     turn.UseCase
	Out      io.Writer
	Logger   *log.Logger
	MaxTurns int

	machine    *fsm.FSM
	tracker    session.Tracker
	shop       shop.Catalog
	reputation session.Reputation
	reason     EndReason
	turns      int
}

func (r *Runner) states() *fsm.FSM {
	if r.machine == nil {
		r.machine = r.newMachine()
	}
	return r.machine
}

// newMachine wires the session lifecycle. Every phase change goes through
// Trigger; guards read the tracked session so a transition the remote state
// does not justify is rejected by the machine itself.
func (r *Runner) newMachine() *fsm.FSM {
	return fsm.New(PhaseUninitialized).
		Transition(PhaseUninitialized, EventStart, PhaseStarting).
		TransitionWhen(PhaseStarting, EventReady, PhaseActive, r.started).
		Transition(PhaseStarting, EventAbort, PhaseUninitialized).
		TransitionWhen(PhaseActive, EventPlayTurn, PhaseActive, r.alive).
		TransitionWhen(PhaseActive, EventOutOfLives, PhaseGameOver, r.outOfLives).
		TransitionWhen(PhaseActive, EventTurnLimit, PhaseGameOver, r.turnLimitReached).
		OnEnter(PhaseGameOver, func(*fsm.Context) error {
			sum := r.summary()
			r.printf("Game over!\n")
			r.printf("Score: %d\n", sum.Score)
			r.printf("Level: %d\n", sum.Level)
			return nil
		})
}

func (r *Runner) started(*fsm.Context) bool {
	return r.tracker.Started()
}

func (r *Runner) alive(*fsm.Context) bool {
	s, err := r.tracker.Current()
	return err == nil && s.Alive()
}

func (r *Runner) outOfLives(*fsm.Context) bool {
	s, err := r.tracker.Current()
	return err == nil && s.Lives <= 0
}

func (r *Runner) turnLimitReached(*fsm.Context) bool {
	return r.MaxTurns > 0 && r.turns >= r.MaxTurns
}

func (r *Runner) Phase() fsm.State {
	return r.states().Current()
}

func (r *Runner) State() (session.State, error) {
	return r.tracker.Current()
}

// Start performs the handshake and loads the shop once. The quest board is
// fetched here too but only reported; every turn refetches it.
func (r *Runner) Start(ctx context.Context) error {
	if err := r.states().Trigger(EventStart); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	if err := r.handshake(ctx); err != nil {
		if abortErr := r.states().Trigger(EventAbort); abortErr != nil {
			return fmt.Errorf("%w (abort: %v)", err, abortErr)
		}
		return err
	}
	return r.states().Trigger(EventReady)
}

func (r *Runner) handshake(ctx context.Context) error {
	start, err := r.API.StartGame(ctx)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	state := r.tracker.Begin(start)

	rep, err := r.API.InvestigateReputation(ctx, state.GameID)
	if err != nil {
		return fmt.Errorf("investigate reputation: %w", err)
	}
	r.reputation = rep

	items, err := r.API.ShopItems(ctx, state.GameID)
	if err != nil {
		return fmt.Errorf("list shop: %w", err)
	}
	r.shop = shop.NewCatalog(items)

	listed, err := r.API.Quests(ctx, state.GameID)
	if err != nil {
		return fmt.Errorf("list quests: %w", err)
	}
	board := quest.NewCatalog(listed)

	r.logf("game %s started: lives=%d gold=%d level=%d shop_items=%d quests=%d",
		state.GameID, state.Lives, state.Gold, state.DragonLevel, r.shop.Len(), len(board.All()))
	return nil
}

// Step plays a single turn. The shop catalog is reused as loaded by Start.
func (r *Runner) Step(ctx context.Context) (turn.Response, error) {
	if err := r.states().Trigger(EventPlayTurn); err != nil {
		return turn.Response{}, fmt.Errorf("play turn: %w", err)
	}
	state, err := r.tracker.Current()
	if err != nil {
		return turn.Response{}, err
	}

	out, err := r.Turn.Execute(ctx, turn.Request{State: state, Shop: r.shop})
	if out.State.GameID != "" {
		if replaceErr := r.tracker.Replace(out.State); replaceErr != nil {
			return out, replaceErr
		}
	}
	r.printPurchases(out)
	if err != nil {
		return out, err
	}
	r.turns++
	r.printTurn(out)
	return out, nil
}

// Run starts the game when needed and loops until the session is over.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.Phase() == PhaseUninitialized {
		if err := r.Start(ctx); err != nil {
			return Summary{}, err
		}
	}

	for r.Phase() == PhaseActive {
		state, err := r.tracker.Current()
		if err != nil {
			return Summary{}, err
		}
		switch {
		case !state.Alive():
			r.reason = EndOutOfLives
			err = r.states().Trigger(EventOutOfLives)
		case r.turnLimitReached(nil):
			r.reason = EndTurnLimit
			err = r.states().Trigger(EventTurnLimit)
		default:
			if err = ctx.Err(); err == nil {
				_, err = r.Step(ctx)
			}
		}
		if err != nil {
			return r.summary(), err
		}
	}
	return r.summary(), nil
}

func (r *Runner) summary() Summary {
	state, _ := r.tracker.Current()
	reason := r.reason
	if reason == "" {
		reason = EndOutOfLives
	}
	return Summary{
		GameID:     state.GameID,
		Score:      state.Score,
		Level:      state.DragonLevel,
		Turn:       state.Turn,
		Lives:      state.Lives,
		Turns:      r.turns,
		Reason:     reason,
		Reputation: r.reputation,
	}
}

func (r *Runner) printPurchases(out turn.Response) {
	for _, p := range out.Purchases.Purchases {
		if p.Item.ID == shop.HealthPotionID {
			r.printf("Buying a health potion.\n")
			continue
		}
		r.printf("Buying a random $%d item: %s.\n", p.Item.Cost, p.Item.Name)
	}
	for _, s := range out.Purchases.Skipped {
		r.logf("skipped %s tier: %v", s.Tier, s.Reason)
	}
}

func (r *Runner) printTurn(out turn.Response) {
	q := out.Selection.Quest
	r.printf("Highest value message is: %s (reward=%d, %s, %s tier)\n", q.Description, q.Reward, q.Probability, out.Selection.Tier)
	r.printf("%s\n", out.Outcome.Message)
	r.printf("Lives: %d\n", out.State.Lives)
	r.printf("Current score: %d\n", out.State.Score)
	r.printf("\n")
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Printf(format, args...)
}
