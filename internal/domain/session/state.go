package session

func New(start Start) State {
	return State{
		GameID:      start.GameID,
		Lives:       start.Lives,
		Gold:        start.Gold,
		Turn:        start.Turn,
		Score:       start.Score,
		DragonLevel: start.Level,
	}
}

func (s State) Alive() bool {
	return s.Lives > 0
}

func (s State) CanAfford(amount int) bool {
	return s.Gold >= amount
}

func (s State) ApplyPurchase(out PurchaseOutcome) State {
	s.Gold = out.Gold
	s.Lives = out.Lives
	s.DragonLevel = out.Level
	s.Turn = out.Turn
	return s
}

func (s State) ApplyQuest(out QuestOutcome) State {
	s.Lives = out.Lives
	s.Gold = out.Gold
	s.Turn = out.Turn
	s.Score = out.Score
	return s
}

// Tracker holds the state between the start handshake and the end of the
// run. Accessors fail until Begin has been called.
type Tracker struct {
	state *State
}

func (t *Tracker) Begin(start Start) State {
	s := New(start)
	t.state = &s
	return s
}

func (t *Tracker) Started() bool {
	return t.state != nil
}

func (t *Tracker) Current() (State, error) {
	if t.state == nil {
		return State{}, ErrSessionNotInitialized
	}
	return *t.state, nil
}

func (t *Tracker) Replace(s State) error {
	if t.state == nil {
		return ErrSessionNotInitialized
	}
	t.state = &s
	return nil
}
