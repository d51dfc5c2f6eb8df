package models

import (
	"time"
)

// Wallet represents a guild-scoped account balance. The balance is the
// running sum of every signed delta ever applied; total_earned and
// total_spent partition that sum into its positive and negative parts.
type Wallet struct {
	GuildID     int64     `db:"guild_id"`
	DiscordID   int64     `db:"discord_id"`
	Balance     int64     `db:"balance"`
	TotalEarned int64     `db:"total_earned"`
	TotalSpent  int64     `db:"total_spent"`
	CreatedAt   time.Time `db:"created_at"`
	LastUpdated time.Time `db:"last_updated"`
}

// EventType classifies a wallet change
type EventType string

const (
	EventTypeSlots     EventType = "gambling_slots"
	EventTypeBlackjack EventType = "gambling_blackjack"
	EventTypeRoulette  EventType = "gambling_roulette"
)

// WalletEvent is one append-only audit record of a wallet change.
// Immutable once written; never required for balance correctness.
type WalletEvent struct {
	ID          int64     `db:"id"`
	GuildID     int64     `db:"guild_id"`
	DiscordID   int64     `db:"discord_id"`
	Amount      int64     `db:"amount"`
	EventType   EventType `db:"event_type"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
