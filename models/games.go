package models

// Card represents a single playing card
type Card struct {
	Rank string
	Suit string
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// BlackjackState is the explicit state of a blackjack session
type BlackjackState string

const (
	BlackjackStateDealing    BlackjackState = "dealing"
	BlackjackStatePlayerTurn BlackjackState = "player_turn"
	BlackjackStateDealerTurn BlackjackState = "dealer_turn"
	BlackjackStateTerminal   BlackjackState = "terminal"
)

// SlotResult is the outcome of a slot machine spin
type SlotResult struct {
	Reels      [3]string
	Stake      int64
	Payout     int64
	NetResult  int64
	NewBalance int64
}

// Won reports whether the spin paid anything out
func (r *SlotResult) Won() bool {
	return r.Payout > 0
}

// RouletteResult is the outcome of a roulette spin
type RouletteResult struct {
	Choice     string
	Result     string
	Stake      int64
	Payout     int64
	NetResult  int64
	NewBalance int64
}

// Won reports whether the spin paid anything out
func (r *RouletteResult) Won() bool {
	return r.Payout > 0
}

// BlackjackUpdate is the observable state of a blackjack session after a
// deal, hit or stand. DealerCards hides the hole card until the session
// finishes. Payout, NetResult and NewBalance are only meaningful once
// Finished is true.
type BlackjackUpdate struct {
	State       BlackjackState
	PlayerCards []string
	DealerCards []string
	PlayerValue int
	DealerValue int
	Stake       int64
	Finished    bool
	Outcome     string
	Payout      int64
	NetResult   int64
	NewBalance  int64
}
