package service

import (
	"math/rand"
	"sync"
	"time"

	"killfeed/models"
)

var (
	cardSuits = []string{"♠️", "♥️", "♦️", "♣️"}
	cardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// newShuffledDeck builds a shuffled standard 52-card deck. Each session owns
// its deck exclusively.
func newShuffledDeck() []models.Card {
	deck := make([]models.Card, 0, 52)
	for _, suit := range cardSuits {
		for _, rank := range cardRanks {
			deck = append(deck, models.Card{Rank: rank, Suit: suit})
		}
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// handValue computes a blackjack hand value. Each ace counts as 11 unless
// that would bust the hand, in which case it drops to 1, one ace at a time.
func handValue(cards []models.Card) int {
	value := 0
	aces := 0

	for _, card := range cards {
		switch card.Rank {
		case "J", "Q", "K":
			value += 10
		case "A":
			aces++
			value += 11
		case "10":
			value += 10
		default:
			value += int(card.Rank[0] - '0')
		}
	}

	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}

	return value
}

// blackjackSession is one in-flight blackjack game. It exclusively owns its
// draw pile and, through release, the account lock that keeps other bets
// from the same account waiting until the game settles.
type blackjackSession struct {
	mu         sync.Mutex
	guildID    int64
	discordID  int64
	stake      int64
	deck       []models.Card
	player     []models.Card
	dealer     []models.Card
	state      models.BlackjackState
	outcome    string
	payout     int64
	lastAction time.Time

	// balance right after the stake was debited; final balance is this plus
	// the payout, valid because the account lock is held for the whole game
	balanceAfterDebit int64

	// releases the account lock when the game settles
	release func()
}

func newBlackjackSession(guildID, discordID, stake int64, deck []models.Card, release func()) *blackjackSession {
	return &blackjackSession{
		guildID:    guildID,
		discordID:  discordID,
		stake:      stake,
		deck:       deck,
		state:      models.BlackjackStateDealing,
		lastAction: time.Now(),
		release:    release,
	}
}

func (s *blackjackSession) draw() models.Card {
	card := s.deck[0]
	s.deck = s.deck[1:]
	return card
}

// deal gives two cards each to player and dealer. A natural 21 resolves the
// game on the spot: push against a dealer 21, otherwise a blackjack paying
// 2.5x the stake. Any other deal hands control to the player.
func (s *blackjackSession) deal() {
	s.player = []models.Card{s.draw(), s.draw()}
	s.dealer = []models.Card{s.draw(), s.draw()}
	s.lastAction = time.Now()

	if handValue(s.player) != 21 {
		s.state = models.BlackjackStatePlayerTurn
		return
	}

	s.state = models.BlackjackStateTerminal
	if handValue(s.dealer) == 21 {
		s.outcome = "Push - both have blackjack"
		s.payout = s.stake
	} else {
		s.outcome = "Blackjack!"
		s.payout = s.stake * 5 / 2
	}
}

// hit draws one card for the player. Going over 21 loses the full stake and
// finishes the game.
func (s *blackjackSession) hit() error {
	if s.state != models.BlackjackStatePlayerTurn {
		return ErrBlackjackFinished
	}

	s.player = append(s.player, s.draw())
	s.lastAction = time.Now()

	if handValue(s.player) > 21 {
		s.state = models.BlackjackStateTerminal
		s.outcome = "Bust!"
		s.payout = 0
	}

	return nil
}

// stand plays out the dealer, who draws while under 17, then compares hands
// and finishes the game.
func (s *blackjackSession) stand() error {
	if s.state != models.BlackjackStatePlayerTurn {
		return ErrBlackjackFinished
	}

	s.state = models.BlackjackStateDealerTurn
	s.lastAction = time.Now()

	for handValue(s.dealer) < 17 {
		s.dealer = append(s.dealer, s.draw())
	}

	playerValue := handValue(s.player)
	dealerValue := handValue(s.dealer)

	s.state = models.BlackjackStateTerminal
	switch {
	case dealerValue > 21:
		s.outcome = "Dealer bust - you win!"
		s.payout = s.stake * 2
	case playerValue > dealerValue:
		s.outcome = "You win!"
		s.payout = s.stake * 2
	case dealerValue > playerValue:
		s.outcome = "Dealer wins"
		s.payout = 0
	default:
		s.outcome = "Push"
		s.payout = s.stake
	}

	return nil
}

func (s *blackjackSession) finished() bool {
	return s.state == models.BlackjackStateTerminal
}

// update builds the observable session state. The dealer's hole card stays
// hidden until the game finishes.
func (s *blackjackSession) update() *models.BlackjackUpdate {
	u := &models.BlackjackUpdate{
		State:       s.state,
		PlayerValue: handValue(s.player),
		Stake:       s.stake,
		Finished:    s.finished(),
		Outcome:     s.outcome,
	}

	for _, card := range s.player {
		u.PlayerCards = append(u.PlayerCards, card.String())
	}

	if s.finished() {
		for _, card := range s.dealer {
			u.DealerCards = append(u.DealerCards, card.String())
		}
		u.DealerValue = handValue(s.dealer)
		u.Payout = s.payout
		u.NetResult = s.payout - s.stake
	} else {
		u.DealerCards = []string{s.dealer[0].String(), "🂠"}
		u.DealerValue = handValue(s.dealer[:1])
	}

	return u
}
