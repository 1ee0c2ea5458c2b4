package session

import "errors"

var ErrSessionNotInitialized = errors.New("session not initialized")

// State mirrors the remote game session. Every field is overwritten from the
// latest API response; nothing here is computed locally.
type State struct {
	GameID      string
	Lives       int
	Gold        int
	Turn        int
	Score       int
	DragonLevel int
}

type Start struct {
	GameID string
	Lives  int
	Gold   int
	Level  int
	Score  int
	Turn   int
}

type PurchaseOutcome struct {
	Success bool
	Gold    int
	Lives   int
	Level   int
	Turn    int
}

type QuestOutcome struct {
	Success bool
	Message string
	Lives   int
	Gold    int
	Turn    int
	Score   int
}

type Reputation struct {
	People     float64
	State      float64
	Underworld float64
}
