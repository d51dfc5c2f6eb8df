package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"killfeed/events"
	"killfeed/models"

	log "github.com/sirupsen/logrus"
)

// Limits holds the per-game stake ceilings and the blackjack inactivity
// timeout
type Limits struct {
	MaxSlotsBet      int64
	MaxBlackjackBet  int64
	MaxRouletteBet   int64
	BlackjackTimeout time.Duration
}

// gamblingService implements the GamblingService interface. Each bet runs
// Validate -> Lock -> Debit -> Resolve -> Settle; the per-account lock is
// the sole admission-control point, so one account's bets are strictly
// serialized end to end.
type gamblingService struct {
	wallets  WalletRepository
	journal  WalletEventRepository
	eventBus EventPublisher
	limits   Limits
	locks    *lockRegistry

	sessions   map[accountKey]*blackjackSession
	sessionsMu sync.Mutex
}

// NewGamblingService creates a new gambling service
func NewGamblingService(wallets WalletRepository, journal WalletEventRepository, eventBus EventPublisher, limits Limits) GamblingService {
	return &gamblingService{
		wallets:  wallets,
		journal:  journal,
		eventBus: eventBus,
		limits:   limits,
		locks:    newLockRegistry(),
		sessions: make(map[accountKey]*blackjackSession),
	}
}

// GetBalance returns the account's wallet, creating it if absent
func (s *gamblingService) GetBalance(ctx context.Context, guildID, discordID int64) (*models.Wallet, error) {
	wallet, err := s.wallets.GetOrCreate(ctx, guildID, discordID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	return wallet, nil
}

// GetRecentEvents returns the newest journal entries for an account. The
// journal is best-effort, so this is a view of what was recorded, not a
// guaranteed replay of every settled bet.
func (s *gamblingService) GetRecentEvents(ctx context.Context, guildID, discordID int64, limit int) ([]*models.WalletEvent, error) {
	events, err := s.journal.GetRecent(ctx, guildID, discordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet events: %w", err)
	}
	return events, nil
}

func (s *gamblingService) PlaySlots(ctx context.Context, guildID, discordID int64, stake int64) (*models.SlotResult, error) {
	if stake <= 0 || stake > s.limits.MaxSlotsBet {
		return nil, fmt.Errorf("%w: stake must be between 1 and %d", ErrInvalidBet, s.limits.MaxSlotsBet)
	}

	release, err := s.locks.Acquire(ctx, guildID, discordID)
	if err != nil {
		return nil, err
	}
	defer release()

	balanceAfterDebit, err := s.debitStake(ctx, guildID, discordID, stake, models.EventTypeSlots)
	if err != nil {
		return nil, err
	}

	reels := spinReels()
	payout := slotPayout(reels, stake)

	newBalance, err := s.settle(ctx, guildID, discordID, stake, balanceAfterDebit, payout, models.EventTypeSlots,
		fmt.Sprintf("Slots: %s | Bet: %d", strings.Join(reels[:], " "), stake))
	if err != nil {
		return nil, err
	}

	return &models.SlotResult{
		Reels:      reels,
		Stake:      stake,
		Payout:     payout,
		NetResult:  payout - stake,
		NewBalance: newBalance,
	}, nil
}

func (s *gamblingService) PlayRoulette(ctx context.Context, guildID, discordID int64, stake int64, choice string) (*models.RouletteResult, error) {
	if stake <= 0 || stake > s.limits.MaxRouletteBet {
		return nil, fmt.Errorf("%w: stake must be between 1 and %d", ErrInvalidBet, s.limits.MaxRouletteBet)
	}
	choice = strings.ToLower(strings.TrimSpace(choice))
	if !validRouletteChoice(choice) {
		return nil, fmt.Errorf("%w: choice %q not recognized (red, black, odd, even, low, high, 0-36, 00)", ErrInvalidBet, choice)
	}

	release, err := s.locks.Acquire(ctx, guildID, discordID)
	if err != nil {
		return nil, err
	}
	defer release()

	balanceAfterDebit, err := s.debitStake(ctx, guildID, discordID, stake, models.EventTypeRoulette)
	if err != nil {
		return nil, err
	}

	result := spinWheel()
	payout := roulettePayout(choice, result, stake)

	newBalance, err := s.settle(ctx, guildID, discordID, stake, balanceAfterDebit, payout, models.EventTypeRoulette,
		fmt.Sprintf("Roulette: %s | Choice: %s | Bet: %d", result, choice, stake))
	if err != nil {
		return nil, err
	}

	return &models.RouletteResult{
		Choice:     choice,
		Result:     result,
		Stake:      stake,
		Payout:     payout,
		NetResult:  payout - stake,
		NewBalance: newBalance,
	}, nil
}

// StartBlackjack debits the stake and deals the opening hands. A natural 21
// settles immediately. Otherwise the session is parked awaiting Hit or
// Stand; it keeps holding the account lock so no other bet from this account
// can start until the game finishes or expires.
func (s *gamblingService) StartBlackjack(ctx context.Context, guildID, discordID int64, stake int64) (*models.BlackjackUpdate, error) {
	if stake <= 0 || stake > s.limits.MaxBlackjackBet {
		return nil, fmt.Errorf("%w: stake must be between 1 and %d", ErrInvalidBet, s.limits.MaxBlackjackBet)
	}

	release, err := s.locks.Acquire(ctx, guildID, discordID)
	if err != nil {
		return nil, err
	}

	balanceAfterDebit, err := s.debitStake(ctx, guildID, discordID, stake, models.EventTypeBlackjack)
	if err != nil {
		release()
		return nil, err
	}

	session := newBlackjackSession(guildID, discordID, stake, newShuffledDeck(), release)
	session.balanceAfterDebit = balanceAfterDebit
	session.deal()

	if session.finished() {
		return s.settleSession(ctx, session)
	}

	s.sessionsMu.Lock()
	s.sessions[accountKey{GuildID: guildID, DiscordID: discordID}] = session
	s.sessionsMu.Unlock()

	return session.update(), nil
}

func (s *gamblingService) BlackjackHit(ctx context.Context, guildID, discordID int64) (*models.BlackjackUpdate, error) {
	return s.sessionAction(ctx, guildID, discordID, (*blackjackSession).hit)
}

func (s *gamblingService) BlackjackStand(ctx context.Context, guildID, discordID int64) (*models.BlackjackUpdate, error) {
	return s.sessionAction(ctx, guildID, discordID, (*blackjackSession).stand)
}

func (s *gamblingService) sessionAction(ctx context.Context, guildID, discordID int64, action func(*blackjackSession) error) (*models.BlackjackUpdate, error) {
	s.sessionsMu.Lock()
	session := s.sessions[accountKey{GuildID: guildID, DiscordID: discordID}]
	s.sessionsMu.Unlock()

	if session == nil {
		return nil, ErrNoBlackjackSession
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := action(session); err != nil {
		return nil, err
	}

	if session.finished() {
		s.sessionsMu.Lock()
		delete(s.sessions, accountKey{GuildID: guildID, DiscordID: discordID})
		s.sessionsMu.Unlock()
		return s.settleSession(ctx, session)
	}

	return session.update(), nil
}

// ExpireSessions force-stands every session idle past the timeout, so
// abandoned stakes settle with a dealer play-out instead of staying debited
// in limbo, and the account lock always comes free again.
func (s *gamblingService) ExpireSessions(ctx context.Context) {
	cutoff := time.Now().Add(-s.limits.BlackjackTimeout)

	s.sessionsMu.Lock()
	var expired []*blackjackSession
	for key, session := range s.sessions {
		if session.lastAction.Before(cutoff) {
			expired = append(expired, session)
			delete(s.sessions, key)
		}
	}
	s.sessionsMu.Unlock()

	for _, session := range expired {
		session.mu.Lock()
		if !session.finished() {
			log.WithFields(log.Fields{
				"guildID":   session.guildID,
				"discordID": session.discordID,
				"stake":     session.stake,
			}).Info("Blackjack session expired, auto-standing")

			if err := session.stand(); err == nil {
				if _, err := s.settleSession(ctx, session); err != nil {
					log.WithError(err).Error("Failed to settle expired blackjack session")
				}
			}
		}
		session.mu.Unlock()
	}
}

// debitStake checks the balance and debits the stake. The check-then-debit
// pair is not atomic at the storage layer; the account lock held by the
// caller is what keeps it correct.
func (s *gamblingService) debitStake(ctx context.Context, guildID, discordID int64, stake int64, eventType models.EventType) (int64, error) {
	wallet, err := s.wallets.GetOrCreate(ctx, guildID, discordID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	if wallet.Balance < stake {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, wallet.Balance, stake)
	}

	if err := s.wallets.ApplyDelta(ctx, guildID, discordID, -stake, eventType); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	return wallet.Balance - stake, nil
}

// settle credits the payout, journals the net result and publishes the
// wallet change. The journal write is fire-and-forget: a failure there is
// logged and swallowed, never unwinding the ledger.
func (s *gamblingService) settle(ctx context.Context, guildID, discordID int64, stake, balanceAfterDebit, payout int64, eventType models.EventType, description string) (int64, error) {
	if payout > 0 {
		if err := s.wallets.ApplyDelta(ctx, guildID, discordID, payout, eventType); err != nil {
			// The stake stays debited; the caller sees a retryable failure.
			return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
	}

	newBalance := balanceAfterDebit + payout

	if err := s.journal.Record(ctx, &models.WalletEvent{
		GuildID:     guildID,
		DiscordID:   discordID,
		Amount:      payout - stake,
		EventType:   eventType,
		Description: description,
	}); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guildID":   guildID,
			"discordID": discordID,
			"eventType": eventType,
		}).Warn("Failed to record wallet event")
	}

	s.eventBus.Publish(events.WalletChangeEvent{
		GuildID:      guildID,
		DiscordID:    discordID,
		ChangeAmount: payout - stake,
		NewBalance:   newBalance,
		EventType:    eventType,
	})

	return newBalance, nil
}

// settleSession finishes a terminal blackjack session: credit, journal,
// publish, then release the account lock held since StartBlackjack.
func (s *gamblingService) settleSession(ctx context.Context, session *blackjackSession) (*models.BlackjackUpdate, error) {
	defer session.release()

	newBalance, err := s.settle(ctx, session.guildID, session.discordID,
		session.stake, session.balanceAfterDebit, session.payout, models.EventTypeBlackjack,
		fmt.Sprintf("Blackjack: %s | Bet: %d", session.outcome, session.stake))
	if err != nil {
		return nil, err
	}

	upd := session.update()
	upd.NewBalance = newBalance
	return upd, nil
}
