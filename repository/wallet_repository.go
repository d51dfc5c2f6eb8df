package repository

import (
	"context"
	"fmt"

	"killfeed/database"
	"killfeed/models"
)

// WalletRepository implements the ledger store over Postgres
type WalletRepository struct {
	q queryable
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *database.DB) *WalletRepository {
	return &WalletRepository{q: db.Pool}
}

// GetOrCreate returns the wallet for (guild, account), creating an empty one
// on first access. The insert-if-absent is atomic, so two racing first reads
// produce exactly one zero-balance row.
func (r *WalletRepository) GetOrCreate(ctx context.Context, guildID, discordID int64) (*models.Wallet, error) {
	insert := `
		INSERT INTO wallets (guild_id, discord_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id, discord_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, insert, guildID, discordID); err != nil {
		return nil, fmt.Errorf("failed to ensure wallet for user %d in guild %d: %w", discordID, guildID, err)
	}

	query := `
		SELECT guild_id, discord_id, balance, total_earned, total_spent, created_at, last_updated
		FROM wallets
		WHERE guild_id = $1 AND discord_id = $2
	`

	var wallet models.Wallet
	err := r.q.QueryRow(ctx, query, guildID, discordID).Scan(
		&wallet.GuildID,
		&wallet.DiscordID,
		&wallet.Balance,
		&wallet.TotalEarned,
		&wallet.TotalSpent,
		&wallet.CreatedAt,
		&wallet.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet for user %d in guild %d: %w", discordID, guildID, err)
	}

	return &wallet, nil
}

// ApplyDelta atomically adds a signed amount to the wallet balance and the
// matching lifetime counter. A single increment statement, never
// read-modify-write, so concurrent deltas on the same wallet cannot lose
// updates. The row is created if it doesn't exist yet.
func (r *WalletRepository) ApplyDelta(ctx context.Context, guildID, discordID int64, amount int64, eventType models.EventType) error {
	query := `
		INSERT INTO wallets (guild_id, discord_id, balance, total_earned, total_spent, last_updated)
		VALUES ($1, $2, $3, GREATEST($3, 0), GREATEST(-$3, 0), NOW())
		ON CONFLICT (guild_id, discord_id) DO UPDATE
		SET balance = wallets.balance + $3,
		    total_earned = wallets.total_earned + GREATEST($3, 0),
		    total_spent = wallets.total_spent + GREATEST(-$3, 0),
		    last_updated = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, discordID, amount); err != nil {
		return fmt.Errorf("failed to apply %s delta of %d for user %d in guild %d: %w",
			eventType, amount, discordID, guildID, err)
	}

	return nil
}
