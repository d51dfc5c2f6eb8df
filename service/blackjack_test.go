package service

import (
	"testing"

	"killfeed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(rank string) models.Card {
	return models.Card{Rank: rank, Suit: "♠️"}
}

// stackedDeck deals in order: player, player, dealer, dealer, then draws
func stackedDeck(ranks ...string) []models.Card {
	deck := make([]models.Card, 0, len(ranks))
	for _, rank := range ranks {
		deck = append(deck, card(rank))
	}
	return deck
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		ranks []string
		value int
	}{
		{"face cards", []string{"K", "Q"}, 20},
		{"number cards", []string{"2", "9"}, 11},
		{"soft ace", []string{"A", "6"}, 17},
		{"natural blackjack", []string{"A", "K"}, 21},
		{"ace drops to one", []string{"A", "K", "5"}, 16},
		{"two aces", []string{"A", "A"}, 12},
		{"two aces with ten", []string{"A", "A", "10"}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := make([]models.Card, 0, len(tt.ranks))
			for _, rank := range tt.ranks {
				cards = append(cards, card(rank))
			}
			assert.Equal(t, tt.value, handValue(cards))
		})
	}
}

func TestNewShuffledDeck(t *testing.T) {
	deck := newShuffledDeck()
	assert.Len(t, deck, 52)

	seen := make(map[models.Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
}

func TestBlackjackSession_NaturalBlackjack(t *testing.T) {
	session := newBlackjackSession(1, 2, 100, stackedDeck("A", "K", "9", "7"), func() {})
	session.deal()

	assert.True(t, session.finished())
	assert.Equal(t, int64(250), session.payout)

	upd := session.update()
	assert.True(t, upd.Finished)
	assert.Equal(t, 21, upd.PlayerValue)
	assert.Equal(t, int64(150), upd.NetResult)
}

func TestBlackjackSession_NaturalPush(t *testing.T) {
	session := newBlackjackSession(1, 2, 100, stackedDeck("A", "K", "A", "Q"), func() {})
	session.deal()

	assert.True(t, session.finished())
	assert.Equal(t, int64(100), session.payout)
	assert.Equal(t, int64(0), session.update().NetResult)
}

func TestBlackjackSession_HitToBust(t *testing.T) {
	session := newBlackjackSession(1, 2, 100, stackedDeck("10", "6", "10", "7", "K"), func() {})
	session.deal()
	require.Equal(t, models.BlackjackStatePlayerTurn, session.state)

	require.NoError(t, session.hit())
	assert.True(t, session.finished())
	assert.Equal(t, int64(0), session.payout)
	assert.Equal(t, int64(-100), session.update().NetResult)

	// Further actions on a finished game are rejected
	assert.ErrorIs(t, session.hit(), ErrBlackjackFinished)
	assert.ErrorIs(t, session.stand(), ErrBlackjackFinished)
}

func TestBlackjackSession_StandDealerBusts(t *testing.T) {
	// Dealer starts at 16 and must draw; the K busts them
	session := newBlackjackSession(1, 2, 100, stackedDeck("10", "9", "10", "6", "K"), func() {})
	session.deal()

	require.NoError(t, session.stand())
	assert.True(t, session.finished())
	assert.Equal(t, int64(200), session.payout)
	assert.Equal(t, int64(100), session.update().NetResult)
}

func TestBlackjackSession_StandDealerWins(t *testing.T) {
	// Dealer holds 20 against the player's 19
	session := newBlackjackSession(1, 2, 100, stackedDeck("10", "9", "K", "Q"), func() {})
	session.deal()

	require.NoError(t, session.stand())
	assert.Equal(t, int64(0), session.payout)
}

func TestBlackjackSession_StandPush(t *testing.T) {
	session := newBlackjackSession(1, 2, 100, stackedDeck("10", "9", "K", "9"), func() {})
	session.deal()

	require.NoError(t, session.stand())
	assert.Equal(t, int64(100), session.payout)
	assert.Equal(t, int64(0), session.update().NetResult)
}

func TestBlackjackSession_DealerDrawsToSeventeen(t *testing.T) {
	// Dealer starts at 12, draws a 5 to reach exactly 17 and stops
	session := newBlackjackSession(1, 2, 100, stackedDeck("10", "8", "10", "2", "5"), func() {})
	session.deal()

	require.NoError(t, session.stand())
	assert.Equal(t, 17, handValue(session.dealer))
	assert.Equal(t, int64(200), session.payout)
}

func TestBlackjackSession_HoleCardHiddenUntilFinished(t *testing.T) {
	session := newBlackjackSession(1, 2, 100, stackedDeck("10", "6", "9", "7", "2"), func() {})
	session.deal()

	upd := session.update()
	require.Len(t, upd.DealerCards, 2)
	assert.Equal(t, "🂠", upd.DealerCards[1])
	assert.Equal(t, 9, upd.DealerValue)

	require.NoError(t, session.stand())
	upd = session.update()
	assert.NotContains(t, upd.DealerCards, "🂠")
	assert.Equal(t, handValue(session.dealer), upd.DealerValue)
}
