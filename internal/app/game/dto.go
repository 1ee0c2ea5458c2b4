package game

import (
	"github.com/enetx/fsm"

	"mugloarbot/internal/domain/session"
)

const (
	PhaseUninitialized fsm.State = "uninitialized"
	PhaseStarting      fsm.State = "starting"
	PhaseActive        fsm.State = "active"
	PhaseGameOver      fsm.State = "game_over"
)

const (
	EventStart      fsm.Event = "start"
	EventReady      fsm.Event = "ready"
	EventAbort      fsm.Event = "abort"
	EventPlayTurn   fsm.Event = "play_turn"
	EventOutOfLives fsm.Event = "out_of_lives"
	EventTurnLimit  fsm.Event = "turn_limit"
)

type EndReason string

const (
	EndOutOfLives EndReason = "out_of_lives"
	EndTurnLimit  EndReason = "turn_limit"
)

type Summary struct {
	GameID     string
	Score      int
	Level      int
	Turn       int
	Lives      int
	Turns      int
	Reason     EndReason
	Reputation session.Reputation
}
