package service

import "errors"

var (
	// ErrInvalidBet is returned for stakes outside the game's range or
	// unrecognized game parameters. Rejected before any state change.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrInsufficientFunds is returned when the wallet balance cannot cover
	// the stake. Rejected before the debit.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLedgerUnavailable is returned on transient wallet storage failure.
	// The caller must not assume the delta applied and may retry.
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrNoBlackjackSession is returned for a hit or stand with no game in
	// progress for the account.
	ErrNoBlackjackSession = errors.New("no blackjack game in progress")

	// ErrBlackjackFinished is returned for an action on a finished session.
	ErrBlackjackFinished = errors.New("blackjack game already finished")
)
