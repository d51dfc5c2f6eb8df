package service

import (
	"context"
	"time"

	"killfeed/events"
	"killfeed/models"
)

// WalletRepository defines the interface for the balance ledger
type WalletRepository interface {
	// GetOrCreate returns the wallet for an account, creating a zero-balance
	// record on first access. Safe under concurrent first access.
	GetOrCreate(ctx context.Context, guildID, discordID int64) (*models.Wallet, error)

	// ApplyDelta atomically adds a signed amount to the balance and the
	// matching lifetime counter. Never read-modify-write.
	ApplyDelta(ctx context.Context, guildID, discordID int64, amount int64, eventType models.EventType) error
}

// WalletEventRepository defines the interface for the audit journal
type WalletEventRepository interface {
	// Record appends one immutable journal entry
	Record(ctx context.Context, event *models.WalletEvent) error

	// GetRecent returns the newest journal entries for an account
	GetRecent(ctx context.Context, guildID, discordID int64, limit int) ([]*models.WalletEvent, error)
}

// PlayerRepository defines the interface for character linking data access
type PlayerRepository interface {
	// GetByDiscordID retrieves a player's link record, or nil if none exists
	GetByDiscordID(ctx context.Context, guildID, discordID int64) (*models.Player, error)

	// LinkCharacter adds a character to a player's linked set
	LinkCharacter(ctx context.Context, guildID, discordID int64, character string) (*models.Player, error)

	// UnlinkCharacter removes a character from a player's linked set
	UnlinkCharacter(ctx context.Context, guildID, discordID int64, character string) error
}

// PvPStatsRepository defines the interface for PvP statistics data access
type PvPStatsRepository interface {
	GetByPlayer(ctx context.Context, guildID int64, serverID, playerName string) (*models.PvPStats, error)
	GetByCharacters(ctx context.Context, guildID int64, characters []string) ([]*models.PvPStats, error)
	GetLeaderboard(ctx context.Context, guildID int64, serverID, stat string, limit int) ([]*models.PvPStats, error)
}

// KillEventRepository defines the interface for the kill feed
type KillEventRepository interface {
	// Ingest records a kill event and its stat updates atomically
	Ingest(ctx context.Context, event *models.KillEvent) error

	// GetRecent returns the newest kill events for a server
	GetRecent(ctx context.Context, guildID int64, serverID string, limit int) ([]*models.KillEvent, error)

	// FavoriteWeapon returns the characters' most used PvP weapon
	FavoriteWeapon(ctx context.Context, guildID int64, characters []string) (string, error)

	// TopVictim returns the player the characters have killed the most
	TopVictim(ctx context.Context, guildID int64, characters []string) (string, error)

	// TopKiller returns the player who has killed the characters the most
	TopKiller(ctx context.Context, guildID int64, characters []string) (string, error)
}

// PremiumRepository defines the interface for premium entitlement data access
type PremiumRepository interface {
	// SetStatus upserts premium status; nil expiry deactivates
	SetStatus(ctx context.Context, guildID int64, serverID string, expiresAt *time.Time) error

	// GetByGuild returns every premium record for a guild
	GetByGuild(ctx context.Context, guildID int64) ([]*models.PremiumServer, error)
}

// GuildSettingsRepository defines the interface for guild settings data access
type GuildSettingsRepository interface {
	GetOrCreate(ctx context.Context, guildID int64) (*models.GuildSettings, error)
	UpdateKillfeedChannel(ctx context.Context, guildID int64, channelID *int64) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// GamblingService defines the interface for gambling operations. Every
// operation serializes on the account's lock: a second bet from the same
// account waits until the first fully settles, including a multi-turn
// blackjack game.
type GamblingService interface {
	// PlaySlots debits the stake, spins three weighted reels, credits any
	// payout and journals the net result
	PlaySlots(ctx context.Context, guildID, discordID int64, stake int64) (*models.SlotResult, error)

	// PlayRoulette validates the choice, debits the stake, spins the wheel,
	// credits any payout and journals the net result
	PlayRoulette(ctx context.Context, guildID, discordID int64, stake int64, choice string) (*models.RouletteResult, error)

	// StartBlackjack debits the stake and deals. A natural 21 settles
	// immediately; otherwise the session stays open awaiting Hit or Stand
	// and keeps holding the account lock.
	StartBlackjack(ctx context.Context, guildID, discordID int64, stake int64) (*models.BlackjackUpdate, error)

	// BlackjackHit draws one card for the player; busting settles the game
	BlackjackHit(ctx context.Context, guildID, discordID int64) (*models.BlackjackUpdate, error)

	// BlackjackStand plays out the dealer and settles the game
	BlackjackStand(ctx context.Context, guildID, discordID int64) (*models.BlackjackUpdate, error)

	// GetBalance returns the account's wallet, creating it if absent
	GetBalance(ctx context.Context, guildID, discordID int64) (*models.Wallet, error)

	// GetRecentEvents returns the newest journal entries for an account
	GetRecentEvents(ctx context.Context, guildID, discordID int64, limit int) ([]*models.WalletEvent, error)

	// ExpireSessions force-stands every blackjack session idle past the
	// timeout so abandoned stakes always settle and locks always release
	ExpireSessions(ctx context.Context)
}

// PlayerService defines the interface for character linking operations
type PlayerService interface {
	LinkCharacter(ctx context.Context, guildID, discordID int64, character string) (*models.Player, error)
	UnlinkCharacter(ctx context.Context, guildID, discordID int64, character string) error
	GetLinkedPlayer(ctx context.Context, guildID, discordID int64) (*models.Player, error)
}

// PremiumService defines the interface for entitlement checks
type PremiumService interface {
	// IsPremiumGuild is true when any of the guild's servers holds active,
	// unexpired premium
	IsPremiumGuild(ctx context.Context, guildID int64) (bool, error)

	// SetServerPremium grants or revokes premium for one server
	SetServerPremium(ctx context.Context, guildID int64, serverID string, expiresAt *time.Time) error
}

// StatsService defines the interface for PvP statistics operations
type StatsService interface {
	// GetPlayerStats aggregates a linked player's record across servers
	GetPlayerStats(ctx context.Context, guildID, discordID int64) (*models.CombinedStats, error)

	// GetLeaderboard returns the top characters on a server for a stat
	GetLeaderboard(ctx context.Context, guildID int64, serverID, stat string, limit int) ([]*models.PvPStats, error)
}

// KillfeedService defines the interface for kill telemetry ingestion
type KillfeedService interface {
	// RecordKill ingests one kill event and publishes it to subscribers
	RecordKill(ctx context.Context, event *models.KillEvent) error
}

// GuildSettingsService defines the interface for guild settings operations
type GuildSettingsService interface {
	GetOrCreateSettings(ctx context.Context, guildID int64) (*models.GuildSettings, error)
	UpdateKillfeedChannel(ctx context.Context, guildID int64, channelID *int64) error
}
